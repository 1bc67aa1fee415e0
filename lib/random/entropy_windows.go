// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

//go:build windows

package random

import (
	"fmt"

	"golang.org/x/sys/windows"
)

type cryptGenRandom struct{}

func (cryptGenRandom) Name() string { return "CryptGenRandom" }

func (cryptGenRandom) Fill(buf []byte) (err error) {
	if len(buf) == 0 {
		return nil
	}

	var provider windows.Handle
	err = windows.CryptAcquireContext(&provider, nil, nil,
		windows.PROV_RSA_FULL, windows.CRYPT_VERIFYCONTEXT)
	if err != nil {
		return fmt.Errorf("acquiring crypt context: %w", err)
	}
	defer func() {
		_ = windows.CryptReleaseContext(provider, 0)
	}()

	err = windows.CryptGenRandom(provider, uint32(len(buf)), &buf[0])
	if err != nil {
		return fmt.Errorf("generating random bytes: %w", err)
	}
	return nil
}

func platformMechanisms() []Mechanism {
	return []Mechanism{
		cryptGenRandom{},
	}
}
