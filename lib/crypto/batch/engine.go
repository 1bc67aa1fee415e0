// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package batch computes up to eight double SHA-256 hashes of 64 byte
// messages at once, the shape of a Merkle tree level. Inputs of any
// other length take the scalar path.
package batch

import (
	"github.com/edtubbs/dogecoin/internal/log"
	"github.com/edtubbs/dogecoin/internal/metrics"
	"github.com/edtubbs/dogecoin/lib/common"
	"github.com/edtubbs/dogecoin/lib/crypto/sha256"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "batch"))

// InputSize is the message length served by the lane path.
const InputSize = 64

// paddingBlock is the final block of every 64 byte message.
var paddingBlock = func() (block [sha256.BlockSize]byte) {
	block[0] = 0x80
	block[sha256.BlockSize-2] = 0x02 // 512 bit length
	return block
}()

// Engine computes batches of double SHA-256 with a compressor.
type Engine struct {
	compressor Compressor
}

// NewEngine returns an engine using compressor, or the active
// compressor at each call if compressor is nil.
func NewEngine(compressor Compressor) *Engine {
	return &Engine{compressor: compressor}
}

func (e *Engine) getCompressor() Compressor {
	if e.compressor != nil {
		return e.compressor
	}
	return Active()
}

// Hash256Batch writes the double SHA-256 of inputs[i] to outputs[i]
// and returns the number of hashes written. A batch of zero or more
// than Lanes inputs, or with fewer outputs than inputs, writes nothing.
func (e *Engine) Hash256Batch(inputs [][]byte, outputs []common.Hash) int {
	count := len(inputs)
	if count == 0 || count > Lanes || len(outputs) < count {
		return 0
	}

	for _, input := range inputs {
		if len(input) != InputSize {
			hashScalar(inputs, outputs)
			return count
		}
	}

	e.hashLanes(inputs, outputs)
	return count
}

func hashScalar(inputs [][]byte, outputs []common.Hash) {
	metrics.BatchHashes.WithLabelValues(metrics.PathScalar).Inc()
	for i, input := range inputs {
		outputs[i] = sha256.Hash256(input)
	}
}

func (e *Engine) hashLanes(inputs [][]byte, outputs []common.Hash) {
	metrics.BatchHashes.WithLabelValues(metrics.PathLanes).Inc()
	compressor := e.getCompressor()

	// unused lanes repeat lane 0 so every lane reads valid data
	var data [Lanes][]byte
	for l := range data {
		if l < len(inputs) {
			data[l] = inputs[l]
		} else {
			data[l] = inputs[0]
		}
	}

	var st LaneState
	st.Init()
	compressor.Compress(&st, &data, 1)

	var padding [Lanes][]byte
	for l := range padding {
		padding[l] = paddingBlock[:]
	}
	compressor.Compress(&st, &padding, 1)

	// second pass hashes each 32 byte digest as one padded block
	var blocks [Lanes][sha256.BlockSize]byte
	for l := range blocks {
		var digest [sha256.Size]byte
		state := st.Lane(l)
		sha256.PutState(&digest, &state)
		sha256.PadDigest(&blocks[l], &digest)
		data[l] = blocks[l][:]
	}

	st.Init()
	compressor.Compress(&st, &data, 1)

	for i := range inputs {
		state := st.Lane(i)
		out := (*[sha256.Size]byte)(&outputs[i])
		sha256.PutState(out, &state)
	}
}

// Hash256Pairs writes the double SHA-256 of left[i]||right[i] to
// out[i] for every i, eight pairs at a time. It returns the number of
// hashes written, the shortest of the three lengths.
func (e *Engine) Hash256Pairs(left, right, out []common.Hash) int {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	if len(out) < n {
		n = len(out)
	}

	var buffers [Lanes][InputSize]byte
	inputs := make([][]byte, 0, Lanes)
	for start := 0; start < n; start += Lanes {
		end := start + Lanes
		if end > n {
			end = n
		}

		inputs = inputs[:0]
		for i := start; i < end; i++ {
			buffer := &buffers[i-start]
			copy(buffer[:common.HashLength], left[i][:])
			copy(buffer[common.HashLength:], right[i][:])
			inputs = append(inputs, buffer[:])
		}

		e.Hash256Batch(inputs, out[start:end])
	}
	return n
}

var defaultEngine = NewEngine(nil)

// Hash256Batch hashes inputs with the active compressor.
// See Engine.Hash256Batch.
func Hash256Batch(inputs [][]byte, outputs []common.Hash) int {
	return defaultEngine.Hash256Batch(inputs, outputs)
}

// Hash256Pairs hashes pairs with the active compressor.
// See Engine.Hash256Pairs.
func Hash256Pairs(left, right, out []common.Hash) int {
	return defaultEngine.Hash256Pairs(left, right, out)
}
