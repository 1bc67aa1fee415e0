// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hashing

import (
	"math/bits"

	"github.com/edtubbs/dogecoin/lib/common"
)

const (
	sipInit0 = 0x736f6d6570736575
	sipInit1 = 0x646f72616e646f6d
	sipInit2 = 0x6c7967656e657261
	sipInit3 = 0x7465646279746573
)

func sipRound(v0, v1, v2, v3 uint64) (uint64, uint64, uint64, uint64) {
	v0 += v1
	v1 = bits.RotateLeft64(v1, 13)
	v1 ^= v0
	v0 = bits.RotateLeft64(v0, 32)
	v2 += v3
	v3 = bits.RotateLeft64(v3, 16)
	v3 ^= v2
	v0 += v3
	v3 = bits.RotateLeft64(v3, 21)
	v3 ^= v0
	v2 += v1
	v1 = bits.RotateLeft64(v1, 17)
	v1 ^= v2
	v2 = bits.RotateLeft64(v2, 32)
	return v0, v1, v2, v3
}

// SipHasher computes SipHash-2-4 over data written incrementally.
type SipHasher struct {
	v     [4]uint64
	tmp   uint64
	count uint64
}

// NewSipHasher returns a SipHash-2-4 hasher keyed with (k0, k1).
func NewSipHasher(k0, k1 uint64) *SipHasher {
	return &SipHasher{
		v: [4]uint64{
			sipInit0 ^ k0,
			sipInit1 ^ k1,
			sipInit2 ^ k0,
			sipInit3 ^ k1,
		},
	}
}

// WriteUint64 hashes a 64 bit word. Only valid when the number of
// bytes written so far is a multiple of 8.
func (s *SipHasher) WriteUint64(data uint64) *SipHasher {
	if s.count%8 != 0 {
		panic("hashing: WriteUint64 on unaligned SipHasher")
	}

	v0, v1, v2, v3 := s.v[0], s.v[1], s.v[2], s.v[3]
	v3 ^= data
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0 ^= data
	s.v = [4]uint64{v0, v1, v2, v3}

	s.count += 8
	return s
}

// Write hashes the bytes of data, buffering partial words.
func (s *SipHasher) Write(data []byte) (int, error) {
	v0, v1, v2, v3 := s.v[0], s.v[1], s.v[2], s.v[3]
	t := s.tmp
	c := s.count

	for _, b := range data {
		t |= uint64(b) << (8 * (c % 8))
		c++
		if c&7 == 0 {
			v3 ^= t
			v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
			v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
			v0 ^= t
			t = 0
		}
	}

	s.v = [4]uint64{v0, v1, v2, v3}
	s.count = c
	s.tmp = t
	return len(data), nil
}

// Sum64 returns the 64 bit SipHash of everything written. It does
// not modify the hasher.
func (s *SipHasher) Sum64() uint64 {
	v0, v1, v2, v3 := s.v[0], s.v[1], s.v[2], s.v[3]

	t := s.tmp | s.count<<56

	v3 ^= t
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0 ^= t
	v2 ^= 0xff
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	return v0 ^ v1 ^ v2 ^ v3
}

// SipHashUint256 is SipHash-2-4 of the 32 bytes of h, unrolled.
func SipHashUint256(k0, k1 uint64, h common.Hash) uint64 {
	v0 := sipInit0 ^ k0
	v1 := sipInit1 ^ k1
	v2 := sipInit2 ^ k0
	v3 := sipInit3 ^ k1

	for i := 0; i < 4; i++ {
		d := h.Uint64(i)
		v3 ^= d
		v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
		v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
		v0 ^= d
	}

	const lengthWord = uint64(32) << 56
	v3 ^= lengthWord
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0 ^= lengthWord
	v2 ^= 0xff
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	return v0 ^ v1 ^ v2 ^ v3
}

// SipHashUint256Extra is SipHash-2-4 of the 32 bytes of h followed by
// extra as 4 little endian bytes. It keys transaction outpoints.
func SipHashUint256Extra(k0, k1 uint64, h common.Hash, extra uint32) uint64 {
	v0 := sipInit0 ^ k0
	v1 := sipInit1 ^ k1
	v2 := sipInit2 ^ k0
	v3 := sipInit3 ^ k1

	for i := 0; i < 4; i++ {
		d := h.Uint64(i)
		v3 ^= d
		v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
		v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
		v0 ^= d
	}

	d := uint64(36)<<56 | uint64(extra)
	v3 ^= d
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0 ^= d
	v2 ^= 0xff
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	return v0 ^ v1 ^ v2 ^ v3
}
