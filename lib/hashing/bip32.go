// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hashing

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"hash"

	"github.com/edtubbs/dogecoin/lib/common"
	"github.com/edtubbs/dogecoin/lib/crypto/cleanse"
)

// NewHMACSHA512 returns an HMAC-SHA512 keyed with key.
func NewHMACSHA512(key []byte) hash.Hash {
	return hmac.New(sha512.New, key)
}

// BIP32Hash computes HMAC-SHA512(chainCode, header || data || ser32(child)),
// the child key derivation step. header is 0x00 for hardened
// derivation from a private key, or the public key parity byte.
func BIP32Hash(chainCode common.Hash, child uint32, header byte, data *[32]byte) (out common.Hash512) {
	var msg [1 + 32 + 4]byte
	defer cleanse.Cleanse(msg[:])

	msg[0] = header
	copy(msg[1:33], data[:])
	binary.BigEndian.PutUint32(msg[33:], child)

	mac := NewHMACSHA512(chainCode[:])
	_, _ = mac.Write(msg[:])
	mac.Sum(out[:0])
	return out
}
