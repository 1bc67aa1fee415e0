// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package random

//go:generate mockgen -destination=mocks_test.go -package $GOPACKAGE . Mechanism,HardwareSource
