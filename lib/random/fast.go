// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package random

import (
	"encoding/binary"
	"math/bits"

	"github.com/edtubbs/dogecoin/lib/common"
	"github.com/edtubbs/dogecoin/lib/crypto/cleanse"
	"golang.org/x/crypto/chacha20"
)

const fastBufferSize = 64

// FastContext is a fast pseudo random stream, the ChaCha20 keystream
// of a 256 bit seed. It is not suitable for key material and must not
// be used concurrently.
type FastContext struct {
	requiresSeed bool
	rng          *chacha20.Cipher

	bytebuf     [fastBufferSize]byte
	bytebufSize int

	bitbuf     uint64
	bitbufSize int
}

// NewFastContext returns a stream seeded lazily from strong randomness,
// or with the all zero seed if deterministic is true.
func NewFastContext(deterministic bool) *FastContext {
	c := &FastContext{requiresSeed: !deterministic}
	if deterministic {
		c.setKey(&common.Hash{})
	}
	return c
}

// NewFastContextWithSeed returns the stream of seed.
func NewFastContextWithSeed(seed common.Hash) *FastContext {
	c := new(FastContext)
	c.setKey(&seed)
	return c
}

func (c *FastContext) setKey(seed *common.Hash) {
	var nonce [chacha20.NonceSize]byte
	rng, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// key and nonce sizes are constant
		panic(err)
	}
	c.rng = rng
	c.requiresSeed = false
}

func (c *FastContext) randomSeed() {
	seed := GetRandHash()
	c.setKey(&seed)
	cleanse.Cleanse(seed[:])
}

// output writes the next len(out) keystream bytes to out.
func (c *FastContext) output(out []byte) {
	if c.requiresSeed {
		c.randomSeed()
	}
	for i := range out {
		out[i] = 0
	}
	c.rng.XORKeyStream(out, out)
}

func (c *FastContext) fillByteBuffer() {
	c.output(c.bytebuf[:])
	c.bytebufSize = fastBufferSize
}

func (c *FastContext) fillBitBuffer() {
	c.bitbuf = c.Rand64()
	c.bitbufSize = 64
}

// Rand256 returns the next 32 bytes of the stream.
func (c *FastContext) Rand256() (h common.Hash) {
	if c.bytebufSize < common.HashLength {
		c.fillByteBuffer()
	}
	copy(h[:], c.bytebuf[fastBufferSize-c.bytebufSize:])
	c.bytebufSize -= common.HashLength
	return h
}

// RandBytes returns n bytes taken directly from the keystream.
func (c *FastContext) RandBytes(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	out := make([]byte, n)
	c.output(out)
	return out
}

// Rand64 returns a random 64 bit integer.
func (c *FastContext) Rand64() uint64 {
	if c.bytebufSize < 8 {
		c.fillByteBuffer()
	}
	value := binary.LittleEndian.Uint64(c.bytebuf[fastBufferSize-c.bytebufSize:])
	c.bytebufSize -= 8
	return value
}

// RandBits returns a random integer of n bits, for n in [0, 64].
func (c *FastContext) RandBits(n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n >= 64:
		return c.Rand64()
	case n > 32:
		return c.Rand64() >> (64 - n)
	}

	if c.bitbufSize < n {
		c.fillBitBuffer()
	}
	value := c.bitbuf & (^uint64(0) >> (64 - n))
	c.bitbuf >>= n
	c.bitbufSize -= n
	return value
}

// Rand32 returns a random 32 bit integer.
func (c *FastContext) Rand32() uint32 {
	return uint32(c.RandBits(32))
}

// RandBool returns a random boolean.
func (c *FastContext) RandBool() bool {
	return c.RandBits(1) == 1
}

// RandRange returns a uniformly distributed integer in [0, max).
// It returns 0 if max is 0.
func (c *FastContext) RandRange(max uint64) uint64 {
	if max == 0 {
		return 0
	}
	max--
	n := bits.Len64(max)
	for {
		value := c.RandBits(n)
		if value <= max {
			return value
		}
	}
}
