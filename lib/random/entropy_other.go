// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

//go:build !linux && !windows

package random

import (
	"crypto/rand"
	"fmt"
	"io"
)

// system uses the operating system secure RNG call, getentropy or
// arc4random depending on the platform.
type system struct{}

func (system) Name() string { return "system" }

func (system) Fill(buf []byte) error {
	_, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		return fmt.Errorf("system random: %w", err)
	}
	return nil
}

func platformMechanisms() []Mechanism {
	return []Mechanism{
		system{},
		DevURandom{Path: "/dev/urandom"},
	}
}
