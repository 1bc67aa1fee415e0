// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package random

import (
	"github.com/edtubbs/dogecoin/lib/common"
)

var defaultService = NewService(Mechanisms(), NewRDRand())

// RandomInit probes the hardware generator and logs when it is used.
func RandomInit() {
	defaultService.Init()
}

// SetHardwareEnabled enables or disables the hardware generator for
// the package level functions.
func SetHardwareEnabled(enabled bool) {
	defaultService.SetHardwareEnabled(enabled)
}

// GetOSRand fills ent32 with OS entropy. See Service.GetOSRand.
func GetOSRand(ent32 *[NumOSRandomBytes]byte) {
	defaultService.GetOSRand(ent32)
}

// GetRandBytes fills buf with OS entropy.
func GetRandBytes(buf []byte) {
	defaultService.GetRandBytes(buf)
}

// GetStrongRandBytes fills out, at most 32 bytes, with mixed OS and
// hardware entropy.
func GetStrongRandBytes(out []byte) {
	defaultService.GetStrongRandBytes(out)
}

// GetRand returns a uniformly distributed integer in [0, max).
func GetRand(max uint64) uint64 {
	return defaultService.GetRand(max)
}

// GetRandInt returns a uniformly distributed integer in [0, max).
func GetRandInt(max int) int {
	return defaultService.GetRandInt(max)
}

// GetRandHash returns 32 bytes of OS entropy.
func GetRandHash() common.Hash {
	return defaultService.GetRandHash()
}

// SanityCheck runs the entropy sanity check on the default service.
func SanityCheck() bool {
	return defaultService.SanityCheck()
}
