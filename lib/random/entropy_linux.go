// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

//go:build linux

package random

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// getrandom never returns a short read for requests up to 256 bytes
// once the urandom pool is initialised.
type getrandom struct{}

func (getrandom) Name() string { return "getrandom" }

func (getrandom) Fill(buf []byte) error {
	n, err := unix.Getrandom(buf, 0)
	switch {
	case errors.Is(err, unix.ENOSYS):
		return ErrNotImplemented
	case err != nil:
		return fmt.Errorf("getrandom: %w", err)
	case n != len(buf):
		return fmt.Errorf("getrandom: short read of %d out of %d bytes", n, len(buf))
	}
	return nil
}

func platformMechanisms() []Mechanism {
	return []Mechanism{
		getrandom{},
		DevURandom{Path: "/dev/urandom"},
	}
}
