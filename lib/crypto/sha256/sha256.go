// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package sha256 is a portable SHA-256 with the compression function
// exposed, so that callers driving several independent hashes at once
// can work on raw hash states and pre-padded blocks.
package sha256

import (
	"encoding/binary"
	"hash"
)

const (
	// Size is the size of a SHA-256 checksum in bytes.
	Size = 32
	// BlockSize is the block size of SHA-256 in bytes.
	BlockSize = 64
)

// State is the eight word SHA-256 chaining value.
type State [8]uint32

// IV is the SHA-256 initial hash value.
var IV = State{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Init resets the state to the initial hash value.
func Init(state *State) {
	*state = IV
}

// PutState serialises the state words big endian into out.
func PutState(out *[Size]byte, state *State) {
	for i, word := range state {
		binary.BigEndian.PutUint32(out[i*4:], word)
	}
}

// PadDigest lays a 32 byte message out as a single, fully padded
// block: the message, the 0x80 terminator, zero fill and the 256 bit
// big endian length suffix.
func PadDigest(block *[BlockSize]byte, msg *[Size]byte) {
	copy(block[:Size], msg[:])
	block[Size] = 0x80
	for i := Size + 1; i < BlockSize-8; i++ {
		block[i] = 0
	}
	binary.BigEndian.PutUint64(block[BlockSize-8:], Size*8)
}

var _ hash.Hash = (*Digest)(nil)

// Digest is a streaming SHA-256 hasher. The zero value is not
// usable, create one with New.
type Digest struct {
	h   State
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New returns a new SHA-256 hasher.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset resets the hasher to its initial state.
func (d *Digest) Reset() {
	Init(&d.h)
	d.nx = 0
	d.len = 0
}

// Size returns the number of bytes Sum will return.
func (d *Digest) Size() int { return Size }

// BlockSize returns the hash's underlying block size.
func (d *Digest) BlockSize() int { return BlockSize }

// Write adds more data to the running hash. It never returns an error.
func (d *Digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.len += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			Block(&d.h, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		Block(&d.h, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return nn, nil
}

// Sum appends the current hash to b and returns the resulting slice.
// It does not change the underlying hash state.
func (d *Digest) Sum(b []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(b, sum[:]...)
}

// Finalize writes the digest into out without changing the running state.
func (d *Digest) Finalize(out *[Size]byte) {
	d0 := *d
	*out = d0.checkSum()
}

func (d *Digest) checkSum() (out [Size]byte) {
	length := d.len
	var tmp [BlockSize + 8]byte
	tmp[0] = 0x80
	var t uint64
	if length%BlockSize < 56 {
		t = 56 - length%BlockSize
	} else {
		t = BlockSize + 56 - length%BlockSize
	}

	// Length in bits.
	length <<= 3
	padlen := tmp[:t+8]
	binary.BigEndian.PutUint64(padlen[t:], length)
	_, _ = d.Write(padlen)

	if d.nx != 0 {
		panic("sha256: d.nx != 0")
	}

	PutState(&out, &d.h)
	return out
}

// Sum256 returns the SHA-256 checksum of the data.
func Sum256(data []byte) (out [Size]byte) {
	var d Digest
	d.Reset()
	_, _ = d.Write(data)
	return d.checkSum()
}

// Hash256 returns SHA-256(SHA-256(data)), the block and Merkle
// node hash.
func Hash256(data []byte) (out [Size]byte) {
	first := Sum256(data)
	var block [BlockSize]byte
	PadDigest(&block, &first)
	state := IV
	Block(&state, block[:])
	PutState(&out, &state)
	return out
}

// Hash256Writer accumulates a message and finalises it as double
// SHA-256.
type Hash256Writer struct {
	d Digest
}

// NewHash256Writer returns an empty double SHA-256 writer.
func NewHash256Writer() *Hash256Writer {
	w := new(Hash256Writer)
	w.d.Reset()
	return w
}

// Write adds data to the message.
func (w *Hash256Writer) Write(p []byte) (int, error) {
	return w.d.Write(p)
}

// Finalize writes the double SHA-256 of everything written so far.
func (w *Hash256Writer) Finalize(out *[Size]byte) {
	var first [Size]byte
	w.d.Finalize(&first)
	var block [BlockSize]byte
	PadDigest(&block, &first)
	state := IV
	Block(&state, block[:])
	PutState(out, &state)
}

// Reset clears the accumulated message.
func (w *Hash256Writer) Reset() {
	w.d.Reset()
}
