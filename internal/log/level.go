// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Level is the level of the logger.
type Level uint8

const (
	// LevelTrace is the trace level.
	LevelTrace Level = iota
	// LevelDebug is the debug level.
	LevelDebug
	// LevelInfo is the info level.
	LevelInfo
	// LevelWarn is the warn level.
	LevelWarn
	// LevelError is the error level.
	LevelError
	// LevelCritical is the critical level.
	LevelCritical
)

func (level Level) String() (s string) {
	switch level {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRIT"
	default:
		return "???"
	}
}

// ColouredString returns the corresponding coloured
// string for the level.
func (level Level) ColouredString() (s string) {
	attribute := color.Reset

	switch level {
	case LevelTrace:
		attribute = color.FgHiCyan
	case LevelDebug:
		attribute = color.FgHiBlue
	case LevelInfo:
		attribute = color.FgCyan
	case LevelWarn:
		attribute = color.FgYellow
	case LevelError:
		attribute = color.FgHiRed
	case LevelCritical:
		attribute = color.FgRed
	}

	c := color.New(attribute)
	return c.Sprint(level.String())
}

// ErrLevelNotRecognised is an error returned if the level string is
// not recognised by the ParseLevel function.
var ErrLevelNotRecognised = errors.New("level is not recognised")

// ParseLevel parses a string into a level, and returns an
// error if it fails. Both the full names and the short
// four letter names (trce, dbug, eror) are accepted.
func ParseLevel(s string) (level Level, err error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case LevelTrace.String(), "TRCE":
		return LevelTrace, nil
	case LevelDebug.String(), "DBUG":
		return LevelDebug, nil
	case LevelInfo.String():
		return LevelInfo, nil
	case LevelWarn.String():
		return LevelWarn, nil
	case LevelError.String(), "EROR":
		return LevelError, nil
	case LevelCritical.String(), "CRITICAL":
		return LevelCritical, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrLevelNotRecognised, s)
}
