// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package batch

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// EnvAccelerator overrides the compressor chosen at start up.
const EnvAccelerator = "DOGECRYPT_SHA256"

// Accelerator names.
const (
	AcceleratorAuto        = "auto"
	AcceleratorGeneric     = "generic"
	AcceleratorInterleaved = "interleaved"
)

// ErrUnknownAccelerator is returned for an unrecognised accelerator name.
var ErrUnknownAccelerator = errors.New("unknown accelerator")

var active atomic.Pointer[compressorHolder]

type compressorHolder struct {
	Compressor
}

func init() {
	compressor := detect()
	if name := os.Getenv(EnvAccelerator); name != "" {
		if c, err := Lookup(name); err == nil {
			compressor = c
		} else {
			logger.Warnf("ignoring %s: %s", EnvAccelerator, err)
		}
	}
	SetCompressor(compressor)
}

// detect picks the interleaved kernel when the CPU has wide integer
// vectors the compiler can schedule the lane loops onto.
func detect() Compressor {
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		return interleavedCompressor{}
	}
	return scalarCompressor{}
}

// Lookup returns the compressor registered under name.
// "auto" selects by CPU capability.
func Lookup(name string) (Compressor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case AcceleratorAuto:
		return detect(), nil
	case AcceleratorGeneric:
		return scalarCompressor{}, nil
	case AcceleratorInterleaved:
		return interleavedCompressor{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccelerator, name)
	}
}

// Active returns the compressor used for 8 lane batches.
func Active() Compressor {
	return active.Load().Compressor
}

// SetCompressor replaces the compressor used for 8 lane batches.
func SetCompressor(c Compressor) {
	active.Store(&compressorHolder{Compressor: c})
	logger.Debugf("using %s SHA-256 compressor", c.Name())
}
