// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package random

import (
	"os"
	"time"
)

// Option is a functional option for the Service.
type Option func(s *Service)

// OnFailure sets the function called after an unrecoverable entropy
// failure has been logged. It defaults to exiting the process.
// If it returns, the calling goroutine panics.
func OnFailure(abort func()) Option {
	return func(s *Service) {
		s.abort = abort
	}
}

// PerformanceCounter sets the monotonic counter used by the sanity
// check. It defaults to nanoseconds elapsed on the monotonic clock.
func PerformanceCounter(counter func() int64) Option {
	return func(s *Service) {
		s.counter = counter
	}
}

func exitProcess() {
	os.Exit(1)
}

var processStart = time.Now()

func monotonicNanoseconds() int64 {
	return int64(time.Since(processStart))
}
