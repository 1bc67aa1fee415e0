// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package metrics holds the prometheus collectors of the hashing and
// randomness subsystems and the HTTP server exposing them.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dogecrypt"

// Batch hash paths.
const (
	PathLanes  = "lanes"
	PathScalar = "scalar"
)

var (
	// EntropyFills counts successful 32 byte OS entropy fills, by mechanism.
	EntropyFills = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "random",
		Name:      "entropy_fills_total",
		Help:      "Number of successful OS entropy fills by mechanism.",
	}, []string{"mechanism"})

	// HardwareReads counts successful hardware RNG reads.
	HardwareReads = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "random",
		Name:      "hardware_reads_total",
		Help:      "Number of successful hardware RNG reads.",
	})

	// HardwareUnavailable counts hardware RNG reads that produced no data.
	HardwareUnavailable = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "random",
		Name:      "hardware_unavailable_total",
		Help:      "Number of hardware RNG reads that were unavailable.",
	})

	// BatchHashes counts double SHA-256 batches, by the path that served them.
	BatchHashes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "batch",
		Name:      "hash256_batches_total",
		Help:      "Number of double SHA-256 batches by execution path.",
	}, []string{"path"})
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		EntropyFills,
		HardwareReads,
		HardwareUnavailable,
		BatchHashes,
	}
}

// Register registers every collector with the registerer.
// Collectors already registered with it are left in place.
func Register(registerer prometheus.Registerer) error {
	for _, collector := range collectors() {
		err := registerer.Register(collector)
		if err == nil {
			continue
		}

		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			continue
		}
		return fmt.Errorf("registering collector: %w", err)
	}
	return nil
}
