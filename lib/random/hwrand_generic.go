// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

//go:build !amd64 || purego

package random

func hasRDRAND() bool { return false }

func rdrand64() (value uint64, ok bool) { return 0, false }
