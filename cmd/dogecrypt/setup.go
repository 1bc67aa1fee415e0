// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"

	"github.com/edtubbs/dogecoin/config"
	"github.com/edtubbs/dogecoin/internal/log"
	"github.com/edtubbs/dogecoin/internal/metrics"
	"github.com/edtubbs/dogecoin/internal/pprof"
	"github.com/edtubbs/dogecoin/lib/crypto/batch"
	"github.com/edtubbs/dogecoin/lib/random"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
)

// ErrSanityCheckFailed is returned when the entropy sanity check fails.
var ErrSanityCheckFailed = errors.New("randomness sanity check failed")

// loadConfig loads the configuration file if --config is set, or the
// default configuration otherwise, then applies the global flags.
func loadConfig(ctx *cli.Context) (cfg *config.Config, err error) {
	cfg = config.Default()

	if path := ctx.GlobalString(ConfigFlag.Name); path != "" {
		logger.Debug("loading toml configuration from " + path)
		cfg, err = config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot load configuration: %w", err)
		}
	}

	if level := ctx.GlobalString(LogFlag.Name); level != "" {
		cfg.Log.Level = level
	}

	if accelerator := ctx.GlobalString(AcceleratorFlag.Name); accelerator != "" {
		cfg.Hashing.Accelerator = accelerator
	}

	if address := ctx.GlobalString(MetricsAddressFlag.Name); address != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Address = address
	}

	if address := ctx.GlobalString(PprofAddressFlag.Name); address != "" {
		cfg.Pprof.Enabled = true
		cfg.Pprof.ListeningAddress = address
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// services are the optional HTTP servers started by setup.
type services struct {
	metrics *metrics.Server
	pprof   *pprof.Service
}

func (s *services) stop() (err error) {
	if s.pprof != nil {
		if stopErr := s.pprof.Stop(); stopErr != nil {
			err = fmt.Errorf("stopping pprof server: %w", stopErr)
		}
	}

	if s.metrics != nil {
		if stopErr := s.metrics.Stop(); stopErr != nil && err == nil {
			err = fmt.Errorf("stopping metrics server: %w", stopErr)
		}
	}

	return err
}

// setup applies the configuration to the process wide subsystems
// and starts the metrics and pprof servers if enabled.
func setup(cfg *config.Config) (started *services, err error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	log.PatchLevel(level)

	if cfg.Hashing.Accelerator != batch.AcceleratorAuto {
		compressor, err := cfg.Compressor()
		if err != nil {
			return nil, err
		}
		batch.SetCompressor(compressor)
	}
	logger.Debugf("batch SHA-256 compressor: %s", batch.Active().Name())

	random.SetHardwareEnabled(cfg.Random.HardwareRNG)
	random.RandomInit()

	if cfg.Random.SanityCheck && !random.SanityCheck() {
		return nil, ErrSanityCheckFailed
	}

	started = new(services)

	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		err = metrics.Register(registry)
		if err != nil {
			return nil, fmt.Errorf("cannot register metrics: %w", err)
		}

		started.metrics = metrics.NewServer(cfg.Metrics.Address, registry)
		err = started.metrics.Start()
		if err != nil {
			return nil, fmt.Errorf("cannot start metrics server: %w", err)
		}
	}

	if cfg.Pprof.Enabled {
		pprofLogger := log.NewFromGlobal(log.AddContext("pkg", "pprof"))
		started.pprof = pprof.NewService(cfg.PprofSettings(), pprofLogger)
		err = started.pprof.Start()
		if err != nil {
			if started.metrics != nil {
				_ = started.metrics.Stop()
			}
			return nil, fmt.Errorf("cannot start pprof server: %w", err)
		}
	}

	return started, nil
}
