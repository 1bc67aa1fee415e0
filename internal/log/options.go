// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
)

// Option modifies the settings of a logger.
type Option func(s *settings)

// SetLevel sets the minimum level logged. The default is LevelInfo.
func SetLevel(level Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// SetCaller sets the caller details appended to each line.
// The default is CallerNone.
func SetCaller(fields CallerFields) Option {
	return func(s *settings) {
		s.caller = &fields
	}
}

// SetWriter sets the writer lines are written to.
// The default is os.Stdout.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// AddContext appends a key value pair printed after each line.
// A value given for an existing key is appended to that key's values.
func AddContext(key, value string) Option {
	return func(s *settings) {
		for i := range s.context {
			if s.context[i].key == key {
				s.context[i].values = append(s.context[i].values, value)
				return
			}
		}
		s.context = append(s.context, contextKeyValues{key: key, values: []string{value}})
	}
}
