// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package cleanse wipes key material, seeds and intermediate entropy
// from memory once it is no longer needed.
package cleanse

import (
	"runtime"
	"sync/atomic"
)

// zero is called through a function value so the compiler cannot
// inline it and prove the stores dead.
var zero = func(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// sink is read back after every wipe.
var sink atomic.Uint32

// Cleanse overwrites every byte of b with zero. It is a no-op for nil
// or empty slices.
func Cleanse(b []byte) {
	if len(b) == 0 {
		return
	}

	zero(b)

	// Publishing a byte of the wiped region through a sequentially
	// consistent store makes the writes observable.
	sink.Store(uint32(b[0]))
	runtime.KeepAlive(b)
}

// CleanseAll wipes every given slice.
func CleanseAll(bufs ...[]byte) {
	for _, b := range bufs {
		Cleanse(b)
	}
}
