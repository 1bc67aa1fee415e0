// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package batch

import (
	"encoding/binary"

	"github.com/edtubbs/dogecoin/lib/crypto/sha256"
)

// Compressor runs the SHA-256 compression function over all lanes.
// Lane l consumes the first blocks 64 byte blocks of data[l]; every
// lane slice must hold at least that many bytes.
type Compressor interface {
	Name() string
	Compress(st *LaneState, data *[Lanes][]byte, blocks int)
}

// scalarCompressor compresses one lane at a time with sha256.Block.
type scalarCompressor struct{}

func (scalarCompressor) Name() string { return "generic" }

func (scalarCompressor) Compress(st *LaneState, data *[Lanes][]byte, blocks int) {
	n := blocks * sha256.BlockSize
	for l := 0; l < Lanes; l++ {
		state := st.Lane(l)
		sha256.Block(&state, data[l][:n])
		st.SetLane(l, &state)
	}
}

// interleavedCompressor runs every round across all lanes before
// moving on, operating on the matrix rows in place. The inner lane
// loops are the shape a vector unit executes as one instruction.
type interleavedCompressor struct{}

func (interleavedCompressor) Name() string { return "interleaved" }

func (interleavedCompressor) Compress(st *LaneState, data *[Lanes][]byte, blocks int) {
	var w [64][Lanes]uint32

	for block := 0; block < blocks; block++ {
		offset := block * sha256.BlockSize

		for i := 0; i < 16; i++ {
			for l := 0; l < Lanes; l++ {
				w[i][l] = binary.BigEndian.Uint32(data[l][offset+i*4:])
			}
		}
		for i := 16; i < 64; i++ {
			for l := 0; l < Lanes; l++ {
				w[i][l] = sha256.SmallSigma1(w[i-2][l]) + w[i-7][l] +
					sha256.SmallSigma0(w[i-15][l]) + w[i-16][l]
			}
		}

		a, b, c, d := st[0], st[1], st[2], st[3]
		e, f, g, h := st[4], st[5], st[6], st[7]

		for i := 0; i < 64; i++ {
			k := sha256.K[i]
			for l := 0; l < Lanes; l++ {
				t1 := h[l] + sha256.BigSigma1(e[l]) + sha256.Ch(e[l], f[l], g[l]) + k + w[i][l]
				t2 := sha256.BigSigma0(a[l]) + sha256.Maj(a[l], b[l], c[l])

				h[l] = g[l]
				g[l] = f[l]
				f[l] = e[l]
				e[l] = d[l] + t1
				d[l] = c[l]
				c[l] = b[l]
				b[l] = a[l]
				a[l] = t1 + t2
			}
		}

		for l := 0; l < Lanes; l++ {
			st[0][l] += a[l]
			st[1][l] += b[l]
			st[2][l] += c[l]
			st[3][l] += d[l]
			st[4][l] += e[l]
			st[5][l] += f[l]
			st[6][l] += g[l]
			st[7][l] += h[l]
		}
	}
}
