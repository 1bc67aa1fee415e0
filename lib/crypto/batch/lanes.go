// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package batch

import (
	"github.com/edtubbs/dogecoin/lib/crypto/sha256"
)

// Lanes is the number of independent hashes processed together.
const Lanes = 8

// LaneState holds the chaining values of Lanes SHA-256 computations
// transposed into a word by lane matrix: st[w][l] is word w of lane l.
// Each row is the vector one wide register would hold.
type LaneState [8][Lanes]uint32

// Init sets every lane to the SHA-256 initial hash value.
func (st *LaneState) Init() {
	for w := range st {
		for l := 0; l < Lanes; l++ {
			st[w][l] = sha256.IV[w]
		}
	}
}

// Lane returns the chaining value of lane l.
func (st *LaneState) Lane(l int) (state sha256.State) {
	for w := range state {
		state[w] = st[w][l]
	}
	return state
}

// SetLane overwrites the chaining value of lane l.
func (st *LaneState) SetLane(l int, state *sha256.State) {
	for w := range state {
		st[w][l] = state[w]
	}
}

// Transpose builds the word by lane matrix from per lane states.
func Transpose(states *[Lanes]sha256.State) (st LaneState) {
	for l := range states {
		st.SetLane(l, &states[l])
	}
	return st
}

// Untranspose splits the matrix back into per lane states.
func Untranspose(st *LaneState) (states [Lanes]sha256.State) {
	for l := range states {
		states[l] = st.Lane(l)
	}
	return states
}
