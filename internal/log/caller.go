// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// CallerFields selects which details of the calling code are
// appended to each log line.
type CallerFields uint8

const (
	// CallerFile appends the base name of the calling file.
	CallerFile CallerFields = 1 << iota
	// CallerLine appends the calling line number, prefixed with L.
	CallerLine
	// CallerFunc appends the calling function name.
	CallerFunc
)

// CallerNone disables caller details.
const CallerNone CallerFields = 0

// CallerAll enables every caller detail.
const CallerAll = CallerFile | CallerLine | CallerFunc

func (f CallerFields) has(field CallerFields) bool {
	return f&field != 0
}

// callerString returns the caller details for the frame depth
// frames above the logging method.
func callerString(fields CallerFields, depth int) string {
	if fields == CallerNone {
		return ""
	}

	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "error"
	}

	parts := make([]string, 0, 3)
	if fields.has(CallerFile) {
		parts = append(parts, filepath.Base(file))
	}
	if fields.has(CallerLine) {
		parts = append(parts, "L"+strconv.Itoa(line))
	}
	if fields.has(CallerFunc) {
		if details := runtime.FuncForPC(pc); details != nil {
			parts = append(parts, strings.TrimLeft(filepath.Ext(details.Name()), "."))
		}
	}

	return strings.Join(parts, ":")
}
