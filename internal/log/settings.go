// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	caller  *CallerFields
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets empty values of the receiving settings
// with values from the other settings.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		value := *other.level
		s.level = &value
	}

	if s.caller == nil && other.caller != nil {
		value := *other.caller
		s.caller = &value
	}

	// Context from the parent goes first, then our own.
	context := make([]contextKeyValues, 0, len(other.context)+len(s.context))
	for _, kv := range other.context {
		values := make([]string, len(kv.values))
		copy(values, kv.values)
		context = append(context, contextKeyValues{key: kv.key, values: values})
	}
	for _, kv := range s.context {
		merged := false
		for i := range context {
			if context[i].key == kv.key {
				context[i].values = append(context[i].values, kv.values...)
				merged = true
				break
			}
		}
		if !merged {
			context = append(context, kv)
		}
	}
	if len(context) > 0 {
		s.context = context
	}
}

// overrideWith sets the values of the receiving settings
// with the non empty values of the other settings.
func (s *settings) overrideWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		value := *other.level
		s.level = &value
	}

	if other.caller != nil {
		value := *other.caller
		s.caller = &value
	}

	for _, kv := range other.context {
		for _, value := range kv.values {
			AddContext(kv.key, value)(s)
		}
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		level := LevelInfo
		s.level = &level
	}

	if s.caller == nil {
		fields := CallerNone
		s.caller = &fields
	}
}
