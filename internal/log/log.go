// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"fmt"
	"strings"
	"time"
)

// callDepth is the number of frames between runtime.Caller
// in callerString and the code calling the logger.
const callDepth = 3

func (l *Logger) log(logLevel Level, s string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if *l.settings.level > logLevel {
		return
	}

	line := time.Now().Format(time.RFC3339) + " " +
		logLevel.ColouredString() + " " + s

	if caller := callerString(*l.settings.caller, callDepth); caller != "" {
		line += "\t" + caller
	}

	if len(l.settings.context) > 0 {
		keyValues := make([]string, 0, len(l.settings.context))
		for _, kvs := range l.settings.context {
			valuesString := strings.Join(kvs.values, ",")
			keyValues = append(keyValues, kvs.key+"="+valuesString)
		}
		line += "\t" + strings.Join(keyValues, " ")
	}

	_, _ = l.settings.writer.Write([]byte(line + "\n"))
}

// Trace logs with the TRACE level.
func (l *Logger) Trace(s string) { l.log(LevelTrace, s) }

// Debug logs with the DEBUG level.
func (l *Logger) Debug(s string) { l.log(LevelDebug, s) }

// Info logs with the INFO level.
func (l *Logger) Info(s string) { l.log(LevelInfo, s) }

// Warn logs with the WARN level.
func (l *Logger) Warn(s string) { l.log(LevelWarn, s) }

// Error logs with the ERROR level.
func (l *Logger) Error(s string) { l.log(LevelError, s) }

// Critical logs with the CRIT level.
func (l *Logger) Critical(s string) { l.log(LevelCritical, s) }

// Tracef formats and logs at the TRACE level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.log(LevelTrace, fmt.Sprintf(format, args...))
}

// Debugf formats and logs at the DEBUG level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(LevelDebug, fmt.Sprintf(format, args...))
}

// Infof formats and logs at the INFO level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf formats and logs at the WARN level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(LevelWarn, fmt.Sprintf(format, args...))
}

// Errorf formats and logs at the ERROR level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(LevelError, fmt.Sprintf(format, args...))
}

// Criticalf formats and logs at the CRIT level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.log(LevelCritical, fmt.Sprintf(format, args...))
}
