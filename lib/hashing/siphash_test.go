// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hashing

import (
	"encoding/binary"
	"testing"

	"github.com/dchest/siphash"
	"github.com/edtubbs/dogecoin/lib/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testK0 = 0x0706050403020100
	testK1 = 0x0f0e0d0c0b0a0908
)

func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func Test_SipHasher_referenceVectors(t *testing.T) {
	t.Parallel()

	hasher := NewSipHasher(testK0, testK1)
	assert.Equal(t, uint64(0x726fdb47dd0e0e31), hasher.Sum64())

	_, err := hasher.Write([]byte{0})
	require.NoError(t, err)
	assert.Equal(t, uint64(0x74f839c593dc67fd), hasher.Sum64())

	_, err = hasher.Write([]byte{1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, uint64(0x93f5f5799a932462), hasher.Sum64())
}

func Test_SipHasher_matchesReference(t *testing.T) {
	t.Parallel()

	msg := sequence(64)
	for n := 0; n < len(msg); n++ {
		hasher := NewSipHasher(testK0, testK1)
		_, err := hasher.Write(msg[:n])
		require.NoError(t, err)

		expected := siphash.Hash(testK0, testK1, msg[:n])

		require.Equal(t, expected, hasher.Sum64(), "length %d", n)
	}
}

func Test_SipHasher_incremental(t *testing.T) {
	t.Parallel()

	msg := sequence(48)

	whole := NewSipHasher(testK0, testK1)
	_, _ = whole.Write(msg)

	split := NewSipHasher(testK0, testK1)
	_, _ = split.Write(msg[:8])
	split.WriteUint64(binary.LittleEndian.Uint64(msg[8:16]))
	_, _ = split.Write(msg[16:19])
	_, _ = split.Write(msg[19:])

	assert.Equal(t, whole.Sum64(), split.Sum64())
}

func Test_SipHasher_WriteUint64_unaligned(t *testing.T) {
	t.Parallel()

	hasher := NewSipHasher(testK0, testK1)
	_, _ = hasher.Write([]byte{1})

	assert.Panics(t, func() { hasher.WriteUint64(1) })
}

func Test_SipHashUint256(t *testing.T) {
	t.Parallel()

	h := common.NewHash(sequence(32))

	hasher := NewSipHasher(testK0, testK1)
	_, _ = hasher.Write(h[:])

	assert.Equal(t, hasher.Sum64(), SipHashUint256(testK0, testK1, h))
	assert.Equal(t, siphash.Hash(testK0, testK1, h[:]), SipHashUint256(testK0, testK1, h))
}

func Test_SipHashUint256Extra(t *testing.T) {
	t.Parallel()

	h := common.NewHash(sequence(32))
	const extra = 0xdeadbeef

	msg := append(h.ToBytes(), 0xef, 0xbe, 0xad, 0xde)
	expected := siphash.Hash(testK0, testK1, msg)

	assert.Equal(t, expected, SipHashUint256Extra(testK0, testK1, h, extra))
}
