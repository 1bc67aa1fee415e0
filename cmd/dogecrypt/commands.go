// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/edtubbs/dogecoin/lib/common"
	"github.com/edtubbs/dogecoin/lib/crypto/batch"
	"github.com/edtubbs/dogecoin/lib/hashing"
	"github.com/edtubbs/dogecoin/lib/merkle"
	"github.com/edtubbs/dogecoin/lib/random"
	"github.com/urfave/cli"
)

var (
	errNoInput           = errors.New("no input given")
	errUnknownAlgorithm  = errors.New("unknown hash algorithm")
	errMalformedKey      = errors.New("malformed siphash key")
	errInvalidByteCount  = errors.New("invalid byte count")
	errSelfTestMismatch  = errors.New("batch and scalar hashes differ")
	errInvalidIterations = errors.New("iterations must be positive")
)

var hashCommand = cli.Command{
	Name:      "hash",
	Usage:     "Hash the input",
	ArgsUsage: "<input>",
	Flags:     []cli.Flag{AlgorithmFlag, HexFlag, SeedFlag, KeyFlag},
	Action:    hashAction,
}

var merkleCommand = cli.Command{
	Name:      "merkle",
	Usage:     "Compute the Merkle root of 0x prefixed leaf hashes",
	ArgsUsage: "<leaf> [leaf...]",
	Action:    merkleAction,
}

var randCommand = cli.Command{
	Name:   "rand",
	Usage:  "Print random bytes as hex",
	Flags:  []cli.Flag{BytesFlag, StrongFlag, FastFlag, SeedFlag},
	Action: randAction,
}

var selftestCommand = cli.Command{
	Name:   "selftest",
	Usage:  "Check the entropy sources and the batch hashing engine",
	Action: selftestAction,
}

var benchCommand = cli.Command{
	Name:   "bench",
	Usage:  "Compare the batch SHA-256 compressors",
	Flags:  []cli.Flag{IterationsFlag},
	Action: benchAction,
}

func readInput(ctx *cli.Context) (data []byte, err error) {
	if !ctx.Args().Present() {
		return nil, errNoInput
	}

	input := ctx.Args().First()
	if !ctx.Bool(HexFlag.Name) {
		return []byte(input), nil
	}

	data, err = common.HexToBytes(input)
	if err != nil {
		return nil, fmt.Errorf("cannot decode input: %w", err)
	}
	return data, nil
}

func parseSipHashKey(s string) (k0, k1 uint64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", errMalformedKey, s)
	}

	k0, err = strconv.ParseUint(strings.TrimSpace(parts[0]), 0, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", errMalformedKey, err)
	}

	k1, err = strconv.ParseUint(strings.TrimSpace(parts[1]), 0, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", errMalformedKey, err)
	}

	return k0, k1, nil
}

func hashAction(ctx *cli.Context) error {
	data, err := readInput(ctx)
	if err != nil {
		return err
	}

	var output string
	switch algorithm := ctx.String(AlgorithmFlag.Name); algorithm {
	case "hash256":
		output = common.Hash256(data).String()
	case "sha256":
		output = common.Sha256(data).String()
	case "siphash":
		k0, k1, err := parseSipHashKey(ctx.String(KeyFlag.Name))
		if err != nil {
			return err
		}
		hasher := hashing.NewSipHasher(k0, k1)
		_, _ = hasher.Write(data)
		output = fmt.Sprintf("0x%016x", hasher.Sum64())
	case "murmur3":
		var seed uint64
		if s := ctx.String(SeedFlag.Name); s != "" {
			seed, err = strconv.ParseUint(s, 0, 32)
			if err != nil {
				return fmt.Errorf("cannot parse murmur3 seed: %w", err)
			}
		}
		output = fmt.Sprintf("0x%08x", hashing.MurmurHash3(uint32(seed), data))
	default:
		return fmt.Errorf("%w: %s", errUnknownAlgorithm, algorithm)
	}

	_, err = fmt.Fprintln(ctx.App.Writer, output)
	return err
}

func merkleAction(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return errNoInput
	}

	leaves := make([]common.Hash, len(ctx.Args()))
	for i, arg := range ctx.Args() {
		leaf, err := common.HexToHash(arg)
		if err != nil {
			return fmt.Errorf("cannot decode leaf %d: %w", i, err)
		}
		leaves[i] = leaf
	}

	root, mutated := merkle.ComputeRoot(leaves)
	if mutated {
		logger.Warn("merkle tree contains duplicated subtrees")
	}

	_, err := fmt.Fprintln(ctx.App.Writer, root)
	return err
}

func randAction(ctx *cli.Context) error {
	n := ctx.Int(BytesFlag.Name)
	if n < 0 {
		return fmt.Errorf("%w: %d", errInvalidByteCount, n)
	}

	var out []byte
	switch {
	case ctx.Bool(FastFlag.Name):
		stream := random.NewFastContext(false)
		if s := ctx.String(SeedFlag.Name); s != "" {
			seed, err := common.HexToHash(s)
			if err != nil {
				return fmt.Errorf("cannot decode seed: %w", err)
			}
			stream = random.NewFastContextWithSeed(seed)
		}
		out = stream.RandBytes(n)
	case ctx.Bool(StrongFlag.Name):
		if n > random.NumOSRandomBytes {
			return fmt.Errorf("%w: strong randomness is limited to %d bytes",
				errInvalidByteCount, random.NumOSRandomBytes)
		}
		out = make([]byte, n)
		random.GetStrongRandBytes(out)
	default:
		out = make([]byte, n)
		random.GetRandBytes(out)
	}

	_, err := fmt.Fprintln(ctx.App.Writer, "0x"+hex.EncodeToString(out))
	return err
}

func selftestAction(ctx *cli.Context) error {
	if !random.SanityCheck() {
		return ErrSanityCheckFailed
	}

	stream := random.NewFastContext(false)
	inputs := make([][]byte, batch.Lanes)
	for i := range inputs {
		inputs[i] = stream.RandBytes(batch.InputSize)
	}

	outputs := make([]common.Hash, batch.Lanes)
	batch.Hash256Batch(inputs, outputs)
	for i, input := range inputs {
		if outputs[i] != common.Hash256(input) {
			return fmt.Errorf("%w: lane %d with %s compressor",
				errSelfTestMismatch, i, batch.Active().Name())
		}
	}

	_, err := fmt.Fprintf(ctx.App.Writer, "ok: entropy sanity check passed, %s compressor matches scalar hashing\n",
		batch.Active().Name())
	return err
}

func benchAction(ctx *cli.Context) error {
	iterations := ctx.Int(IterationsFlag.Name)
	if iterations <= 0 {
		return fmt.Errorf("%w: %d", errInvalidIterations, iterations)
	}

	stream := random.NewFastContext(false)
	inputs := make([][]byte, batch.Lanes)
	for i := range inputs {
		inputs[i] = stream.RandBytes(batch.InputSize)
	}
	outputs := make([]common.Hash, batch.Lanes)

	for _, name := range []string{batch.AcceleratorGeneric, batch.AcceleratorInterleaved} {
		compressor, err := batch.Lookup(name)
		if err != nil {
			return err
		}
		engine := batch.NewEngine(compressor)

		start := time.Now()
		for i := 0; i < iterations; i++ {
			engine.Hash256Batch(inputs, outputs)
		}
		elapsed := time.Since(start)

		perHash := elapsed / time.Duration(iterations*batch.Lanes)
		_, err = fmt.Fprintf(ctx.App.Writer, "%-12s %10d hashes in %s (%s/hash)\n",
			name, iterations*batch.Lanes, elapsed, perHash)
		if err != nil {
			return err
		}
	}

	return nil
}
