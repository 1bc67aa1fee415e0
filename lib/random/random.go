// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package random provides cryptographically strong randomness from the
// operating system, optionally mixed with the CPU hardware generator,
// and a fast seeded stream for non-critical uses.
//
// Failing to obtain OS entropy is never reported to callers: it is
// logged and the process is terminated.
package random

import (
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/edtubbs/dogecoin/internal/log"
	"github.com/edtubbs/dogecoin/internal/metrics"
	"github.com/edtubbs/dogecoin/lib/common"
	"github.com/edtubbs/dogecoin/lib/crypto/cleanse"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "random"))

const maxSanityTries = 1024

// Service gathers entropy from a ranked chain of OS mechanisms and an
// optional hardware source. It holds no entropy between calls and is
// safe for concurrent use.
type Service struct {
	mechanisms []Mechanism
	hardware   HardwareSource
	abort      func()
	counter    func() int64

	hardwareEnabled atomic.Bool
}

// NewService creates a service trying mechanisms in order. The
// hardware source may be nil.
func NewService(mechanisms []Mechanism, hardware HardwareSource, options ...Option) *Service {
	s := &Service{
		mechanisms: mechanisms,
		hardware:   hardware,
		abort:      exitProcess,
		counter:    monotonicNanoseconds,
	}
	for _, option := range options {
		option(s)
	}
	s.hardwareEnabled.Store(hardware != nil)
	return s
}

// Init probes the hardware source eagerly.
func (s *Service) Init() {
	if s.hardware != nil {
		s.hardware.Available()
	}
}

// SetHardwareEnabled enables or disables mixing in the hardware source.
func (s *Service) SetHardwareEnabled(enabled bool) {
	s.hardwareEnabled.Store(enabled && s.hardware != nil)
}

// GetOSRand fills ent32 from the first mechanism that is implemented
// on this system. Any other mechanism failure aborts the process.
func (s *Service) GetOSRand(ent32 *[NumOSRandomBytes]byte) {
	for _, mechanism := range s.mechanisms {
		err := mechanism.Fill(ent32[:])
		if err == nil {
			metrics.EntropyFills.WithLabelValues(mechanism.Name()).Inc()
			return
		}

		if errors.Is(err, ErrNotImplemented) {
			logger.Debugf("entropy mechanism %s is not implemented", mechanism.Name())
			continue
		}

		s.fail(fmt.Errorf("%s: %w", mechanism.Name(), err))
		return
	}

	s.fail(ErrNoMechanism)
}

func (s *Service) fail(err error) {
	logger.Criticalf("Failed to read randomness, aborting: %s", err)
	s.abort()
	panic(err)
}

// GetRandBytes fills buf with OS entropy, 32 bytes at a time.
func (s *Service) GetRandBytes(buf []byte) {
	var ent32 [NumOSRandomBytes]byte
	for offset := 0; offset < len(buf); offset += NumOSRandomBytes {
		s.GetOSRand(&ent32)
		copy(buf[offset:], ent32[:])
		cleanse.Cleanse(ent32[:])
	}
}

// GetStrongRandBytes fills out, at most 32 bytes, with the SHA-512 of
// OS entropy followed by hardware entropy when available. It panics if
// out is longer than 32 bytes.
func (s *Service) GetStrongRandBytes(out []byte) {
	if len(out) > NumOSRandomBytes {
		panic(fmt.Sprintf("random: %d strong random bytes requested, at most %d supported",
			len(out), NumOSRandomBytes))
	}

	scratch := cleanse.NewSecureBuffer(sha512.Size)
	defer scratch.Close()
	buf := scratch.Bytes()
	ent32 := (*[NumOSRandomBytes]byte)(buf[:NumOSRandomBytes])

	hasher := sha512.New()

	s.GetOSRand(ent32)
	_, _ = hasher.Write(ent32[:])

	if s.readHardware(ent32) {
		_, _ = hasher.Write(ent32[:])
	}

	hasher.Sum(buf[:0])
	copy(out, buf)
	hasher.Reset()
}

func (s *Service) readHardware(ent32 *[NumOSRandomBytes]byte) bool {
	if !s.hardwareEnabled.Load() {
		return false
	}

	if !s.hardware.Read(ent32) {
		metrics.HardwareUnavailable.Inc()
		return false
	}

	metrics.HardwareReads.Inc()
	return true
}

// GetRand returns a uniformly distributed integer in [0, max).
// It returns 0 if max is 0.
func (s *Service) GetRand(max uint64) uint64 {
	if max == 0 {
		return 0
	}

	// values at or above the largest multiple of max are redrawn
	limit := (math.MaxUint64 / max) * max

	var b [8]byte
	for {
		s.GetRandBytes(b[:])
		value := binary.LittleEndian.Uint64(b[:])
		if value < limit {
			return value % max
		}
	}
}

// GetRandInt returns a uniformly distributed integer in [0, max).
// It returns 0 if max is 0 or negative.
func (s *Service) GetRandInt(max int) int {
	if max <= 0 {
		return 0
	}
	return int(s.GetRand(uint64(max)))
}

// GetRandHash returns 32 bytes of OS entropy.
func (s *Service) GetRandHash() (hash common.Hash) {
	s.GetRandBytes(hash[:])
	return hash
}

// SanityCheck verifies that OS entropy overwrites all 32 output bytes
// within a bounded number of tries, and that the performance counter
// advances across a millisecond sleep. It does not measure the
// quality of the randomness.
func (s *Service) SanityCheck() bool {
	start := s.counter()

	var data [NumOSRandomBytes]byte
	var overwritten [NumOSRandomBytes]bool
	numOverwritten := 0

	for tries := 0; numOverwritten < NumOSRandomBytes && tries < maxSanityTries; tries++ {
		data = [NumOSRandomBytes]byte{}
		s.GetOSRand(&data)

		numOverwritten = 0
		for i, b := range data {
			overwritten[i] = overwritten[i] || b != 0
			if overwritten[i] {
				numOverwritten++
			}
		}
	}
	cleanse.Cleanse(data[:])

	if numOverwritten != NumOSRandomBytes {
		logger.Errorf("OS entropy overwrote only %d of %d bytes in %d tries",
			numOverwritten, NumOSRandomBytes, maxSanityTries)
		return false
	}

	time.Sleep(time.Millisecond)
	if s.counter() == start {
		logger.Error("performance counter did not advance")
		return false
	}

	return true
}
