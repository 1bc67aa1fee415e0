// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hashing

import (
	"math"

	"github.com/edtubbs/dogecoin/lib/common"
	"github.com/edtubbs/dogecoin/lib/random"
)

// SaltedHasher buckets hashes for in-memory tables. Its keys are drawn
// from strong randomness so peers cannot craft colliding inputs.
type SaltedHasher struct {
	k0, k1 uint64
}

// NewSaltedHasher returns a hasher with fresh random keys.
func NewSaltedHasher() SaltedHasher {
	return SaltedHasher{
		k0: random.GetRand(math.MaxUint64),
		k1: random.GetRand(math.MaxUint64),
	}
}

// NewSaltedHasherWithKeys returns a hasher with the given keys.
func NewSaltedHasherWithKeys(k0, k1 uint64) SaltedHasher {
	return SaltedHasher{k0: k0, k1: k1}
}

// Sum returns the bucket hash of h.
func (s SaltedHasher) Sum(h common.Hash) uint64 {
	return SipHashUint256(s.k0, s.k1, h)
}

// SumOutpoint returns the bucket hash of the outpoint (h, index).
func (s SaltedHasher) SumOutpoint(h common.Hash, index uint32) uint64 {
	return SipHashUint256Extra(s.k0, s.k1, h, index)
}
