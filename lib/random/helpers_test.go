// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package random

import (
	"encoding/binary"
	"errors"
)

var (
	errAbort = errors.New("aborted")
	errDummy = errors.New("dummy")
)

func panicOnFailure() {
	panic(errAbort)
}

// constantMechanism fills every byte with value.
type constantMechanism struct {
	value byte
}

func (constantMechanism) Name() string { return "constant" }

func (m constantMechanism) Fill(buf []byte) error {
	for i := range buf {
		buf[i] = m.value
	}
	return nil
}

// countingMechanism fills every byte with its call count.
type countingMechanism struct {
	calls int
}

func (*countingMechanism) Name() string { return "counting" }

func (m *countingMechanism) Fill(buf []byte) error {
	m.calls++
	for i := range buf {
		buf[i] = byte(m.calls)
	}
	return nil
}

// queueMechanism writes the next queued value little endian at the
// start of each fill.
type queueMechanism struct {
	values []uint64
	calls  int
}

func (*queueMechanism) Name() string { return "queue" }

func (m *queueMechanism) Fill(buf []byte) error {
	for i := range buf {
		buf[i] = 0
	}
	binary.LittleEndian.PutUint64(buf, m.values[m.calls])
	m.calls++
	return nil
}
