// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package hashing provides the keyed short-input hashes used for hash
// table bucketing and short transaction ids (SipHash-2-4), the bloom
// filter hash (MurmurHash3 x86_32) and BIP32 child key derivation
// (HMAC-SHA512).
//
// MurmurHash3 is not resistant to adversarial inputs. Use it only where
// the caller picks the seed and unpredictability is not required.
package hashing
