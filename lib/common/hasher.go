// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"crypto/sha512"

	"github.com/edtubbs/dogecoin/lib/crypto/sha256"
)

// Sha256 returns the single SHA-256 hash of the input data
func Sha256(in []byte) Hash {
	return sha256.Sum256(in)
}

// Hash256 returns the double SHA-256 hash of the input data, as used
// for block, transaction and Merkle node hashes.
func Hash256(in []byte) Hash {
	return sha256.Hash256(in)
}

// Sha512 returns the SHA-512 hash of the input data
func Sha512(in []byte) Hash512 {
	return sha512.Sum512(in)
}
