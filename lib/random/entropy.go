// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package random

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// NumOSRandomBytes is the number of bytes every OS entropy fill returns.
const NumOSRandomBytes = 32

var (
	// ErrNotImplemented is returned by a mechanism the running system
	// does not provide. The next mechanism in the chain is tried.
	ErrNotImplemented = errors.New("entropy mechanism not implemented")
	// ErrNoMechanism is reported when every mechanism fell through.
	ErrNoMechanism = errors.New("no entropy mechanism available")
)

// Mechanism obtains entropy from the operating system.
// Fill must fill buf completely or return an error.
type Mechanism interface {
	Name() string
	Fill(buf []byte) error
}

// Mechanisms returns the entropy mechanisms of the running platform,
// most preferred first.
func Mechanisms() []Mechanism {
	return platformMechanisms()
}

// DevURandom reads entropy from a random device file.
type DevURandom struct {
	Path string
}

// Name returns the device path.
func (d DevURandom) Name() string { return d.Path }

// Fill reads len(buf) bytes from the device, accumulating partial reads.
func (d DevURandom) Fill(buf []byte) error {
	file, err := os.Open(d.Path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", d.Path, err)
	}
	defer file.Close()

	have := 0
	for have < len(buf) {
		n, err := file.Read(buf[have:])
		if n <= 0 {
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			return fmt.Errorf("reading %s: %w", d.Path, err)
		}
		have += n
	}
	return nil
}
