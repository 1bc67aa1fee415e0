// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

//go:build amd64 && !purego

package random

import "golang.org/x/sys/cpu"

func hasRDRAND() bool {
	return cpu.X86.HasRDRAND
}

// rdrand64 executes RDRAND once. ok is false when the carry flag
// reports that no random value was ready.
//
//go:noescape
func rdrand64() (value uint64, ok bool)
