// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	// HashLength is the expected length of the common.Hash type
	HashLength = 32
	// Hash512Length is the expected length of the common.Hash512 type
	Hash512Length = 64
)

// ErrNoPrefix is returned when a hex string is not 0x prefixed.
var ErrNoPrefix = errors.New("could not byteify non 0x prefixed string")

// EmptyHash is the all zero Hash.
var EmptyHash = Hash{}

// Hash is a 256 bit digest, as produced by SHA-256 and double SHA-256.
// Bytes are kept in the order the hash function emits them.
type Hash [HashLength]byte

// Hash512 is a 512 bit digest, as produced by SHA-512 and HMAC-SHA512.
type Hash512 [Hash512Length]byte

// NewHash casts a byte array to a Hash
// if the input is longer than 32 bytes, it takes the first 32 bytes
func NewHash(in []byte) (res Hash) {
	copy(res[:], in)
	return res
}

// ToBytes turns a hash to a byte array
func (h Hash) ToBytes() []byte {
	b := [HashLength]byte(h)
	return b[:]
}

// IsEmpty returns true if the hash is empty, false otherwise.
func (h Hash) IsEmpty() bool {
	return h == EmptyHash
}

// String returns the hex string for the hash
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// Short returns the first 4 bytes and the last 4 bytes of the hex string for the hash
func (h Hash) Short() string {
	const nBytes = 4
	return fmt.Sprintf("0x%x...%x", h[:nBytes], h[len(h)-nBytes:])
}

// Reverse returns the hash with its bytes in reverse order. Block
// explorers display double SHA-256 hashes reversed.
func (h Hash) Reverse() (reversed Hash) {
	for i := range h {
		reversed[HashLength-1-i] = h[i]
	}
	return reversed
}

// Uint64 returns the i-th little endian 64 bit word of the hash,
// for i in [0, 3].
func (h Hash) Uint64(i int) uint64 {
	b := h[8*i : 8*i+8]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// UnmarshalJSON converts hex data to hash
func (h *Hash) UnmarshalJSON(data []byte) error {
	trimmedData := strings.Trim(string(data), "\"")
	if len(trimmedData) < 2 {
		return errors.New("invalid hash format")
	}

	var err error
	if *h, err = HexToHash(trimmedData); err != nil {
		return err
	}
	return nil
}

// MarshalJSON converts hash to hex data
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// Left returns the first 32 bytes of the digest. In BIP32 derivation
// this is the child key tweak.
func (h Hash512) Left() Hash {
	return NewHash(h[:HashLength])
}

// Right returns the last 32 bytes of the digest. In BIP32 derivation
// this is the child chain code.
func (h Hash512) Right() Hash {
	return NewHash(h[HashLength:])
}

// String returns the hex string for the digest
func (h Hash512) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// HexToBytes turns a 0x prefixed hex string into a byte slice
func HexToBytes(in string) (b []byte, err error) {
	if !strings.HasPrefix(in, "0x") {
		return nil, fmt.Errorf("%w: %s", ErrNoPrefix, in)
	}

	return hex.DecodeString(in[2:])
}

// MustHexToBytes turns a 0x prefixed hex string into a byte slice
// it panic if it cannot decode the string
func MustHexToBytes(in string) []byte {
	b, err := HexToBytes(in)
	if err != nil {
		panic(err)
	}
	return b
}

// HexToHash turns a 0x prefixed hex string into type Hash
func HexToHash(in string) (Hash, error) {
	if !strings.HasPrefix(in, "0x") {
		return Hash{}, ErrNoPrefix
	}

	out, err := hex.DecodeString(in[2:])
	if err != nil {
		return Hash{}, err
	}
	return NewHash(out), nil
}

// MustHexToHash turns a 0x prefixed hex string into type Hash
// it panics if it cannot turn the string into a Hash
func MustHexToHash(in string) Hash {
	h, err := HexToHash(in)
	if err != nil {
		panic(err)
	}
	return h
}
