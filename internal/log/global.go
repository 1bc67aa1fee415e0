// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

var globalLogger = New()

// NewFromGlobal creates a child logger from the global logger.
func NewFromGlobal(options ...Option) *Logger {
	return globalLogger.New(options...)
}

// Patch patches the global package logger and all the
// loggers created with NewFromGlobal.
func Patch(options ...Option) {
	globalLogger.Patch(options...)
}

// PatchLevel patches the global package logger level.
func PatchLevel(level Level) {
	globalLogger.PatchLevel(level)
}

// Trace using the global logger.
func Trace(s string) { globalLogger.log(LevelTrace, s) }

// Debug using the global logger.
func Debug(s string) { globalLogger.log(LevelDebug, s) }

// Info using the global logger.
func Info(s string) { globalLogger.log(LevelInfo, s) }

// Warn using the global logger.
func Warn(s string) { globalLogger.log(LevelWarn, s) }

// Error using the global logger.
func Error(s string) { globalLogger.log(LevelError, s) }

// Critical using the global logger.
func Critical(s string) { globalLogger.log(LevelCritical, s) }
