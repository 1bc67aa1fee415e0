// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package random

import (
	"encoding/binary"
	"sync"
	"sync/atomic"
)

// HardwareSource supplies entropy from a CPU instruction. It is only
// ever mixed in as an additional source.
type HardwareSource interface {
	// Available reports whether the CPU supports the source.
	Available() bool
	// Read fills ent32 and returns true, or returns false when the
	// source is unsupported or not ready for this call.
	Read(ent32 *[32]byte) bool
}

// RDRand reads the x86 RDRAND instruction. The CPU is probed once,
// on first use.
type RDRand struct {
	once      sync.Once
	supported atomic.Bool
}

// NewRDRand returns an RDRAND source.
func NewRDRand() *RDRand {
	return new(RDRand)
}

func (r *RDRand) probe() {
	r.once.Do(func() {
		if hasRDRAND() {
			logger.Info("Using RdRand as an additional entropy source")
			r.supported.Store(true)
		}
	})
}

// Available probes the CPU if needed and reports RDRAND support.
func (r *RDRand) Available() bool {
	r.probe()
	return r.supported.Load()
}

// Read draws four 64 bit values, stored little endian.
func (r *RDRand) Read(ent32 *[32]byte) bool {
	if !r.Available() {
		return false
	}

	var values [4]uint64
	for i := range values {
		value, ok := rdrand64()
		if !ok {
			return false
		}
		values[i] = value
	}

	for i, value := range values {
		binary.LittleEndian.PutUint64(ent32[8*i:], value)
	}
	return true
}
