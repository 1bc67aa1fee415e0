// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Global flags
var (
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// LogFlag overrides the configured log level
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Log level. Supports levels crit, eror, warn, info, dbug and trce",
	}
	// MetricsAddressFlag enables the metrics server on the given address
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Serve prometheus metrics at this address, eg. localhost:9876",
	}
	// PprofAddressFlag enables the pprof server on the given address
	PprofAddressFlag = cli.StringFlag{
		Name:  "pprof-address",
		Usage: "Serve runtime profiles at this address, eg. localhost:6060",
	}
	// AcceleratorFlag overrides the configured batch SHA-256 compressor
	AcceleratorFlag = cli.StringFlag{
		Name:  "accelerator",
		Usage: "Batch SHA-256 compressor: auto, generic or interleaved",
	}
)

// Command flags
var (
	// AlgorithmFlag selects the hash function
	AlgorithmFlag = cli.StringFlag{
		Name:  "algo",
		Usage: "Hash function: hash256, sha256, siphash or murmur3",
		Value: "hash256",
	}
	// HexFlag decodes arguments as 0x prefixed hex
	HexFlag = cli.BoolFlag{
		Name:  "hex",
		Usage: "Decode the input as 0x prefixed hex instead of text",
	}
	// SeedFlag murmur3 seed or fast random stream seed
	SeedFlag = cli.StringFlag{
		Name:  "seed",
		Usage: "Murmur3 seed as an integer, or the 0x prefixed 32 byte seed of the fast stream",
	}
	// KeyFlag SipHash key pair
	KeyFlag = cli.StringFlag{
		Name:  "key",
		Usage: "SipHash keys as k0,k1 integers",
		Value: "0,0",
	}
	// BytesFlag number of random bytes
	BytesFlag = cli.IntFlag{
		Name:  "bytes",
		Usage: "Number of random bytes to print",
		Value: 32,
	}
	// StrongFlag mixes hardware entropy
	StrongFlag = cli.BoolFlag{
		Name:  "strong",
		Usage: "Mix OS and hardware entropy through SHA-512, at most 32 bytes",
	}
	// FastFlag uses the fast ChaCha20 stream
	FastFlag = cli.BoolFlag{
		Name:  "fast",
		Usage: "Draw from the fast ChaCha20 stream, deterministic with --seed",
	}
	// IterationsFlag benchmark iterations
	IterationsFlag = cli.IntFlag{
		Name:  "iterations",
		Usage: "Number of 8 lane batches hashed per compressor",
		Value: 100000,
	}
)

var globalFlags = []cli.Flag{
	ConfigFlag,
	LogFlag,
	MetricsAddressFlag,
	PprofAddressFlag,
	AcceleratorFlag,
}
