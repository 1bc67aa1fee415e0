// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package merkle computes block Merkle roots over transaction hashes.
package merkle

import (
	"github.com/edtubbs/dogecoin/lib/common"
	"github.com/edtubbs/dogecoin/lib/crypto/batch"
)

// ComputeRoot returns the Merkle root of leaves. A level with an odd
// number of nodes pairs its last node with itself.
//
// mutated reports whether two identical nodes were hashed together
// where the duplication was not forced by an odd level. Such a tree
// has the same root as a shorter leaf list (CVE-2012-2459), so a block
// whose tree is mutated must be rejected without marking its hash
// invalid. The root of no leaves is the zero hash.
func ComputeRoot(leaves []common.Hash) (root common.Hash, mutated bool) {
	if len(leaves) == 0 {
		return common.Hash{}, false
	}

	level := make([]common.Hash, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		for i := 0; i+1 < len(level); i += 2 {
			if level[i] == level[i+1] {
				mutated = true
			}
		}

		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}

		pairs := len(level) / 2
		left := make([]common.Hash, pairs)
		right := make([]common.Hash, pairs)
		for i := 0; i < pairs; i++ {
			left[i] = level[2*i]
			right[i] = level[2*i+1]
		}

		level = level[:pairs]
		batch.Hash256Pairs(left, right, level)
	}

	return level[0], mutated
}
