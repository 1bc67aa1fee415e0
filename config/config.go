// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package config holds the TOML configuration of the hashing and
// randomness subsystems.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edtubbs/dogecoin/internal/log"
	"github.com/edtubbs/dogecoin/internal/pprof"
	"github.com/edtubbs/dogecoin/lib/crypto/batch"
	"github.com/naoina/toml"
)

var (
	// ErrInvalidAccelerator is returned for an unknown hashing accelerator.
	ErrInvalidAccelerator = errors.New("invalid hashing accelerator")
	// ErrInvalidLogLevel is returned for an unknown log level.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrMetricsAddressEmpty is returned when metrics are enabled
	// without a listening address.
	ErrMetricsAddressEmpty = errors.New("metrics address is empty")
	// ErrNegativeProfileRate is returned for a negative pprof rate.
	ErrNegativeProfileRate = errors.New("profile rate cannot be negative")
)

const (
	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
	// DefaultMetricsAddress is the default metrics listening address.
	DefaultMetricsAddress = "localhost:9876"
)

// Config is the top level configuration.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Hashing HashingConfig `toml:"hashing"`
	Random  RandomConfig  `toml:"random"`
	Metrics MetricsConfig `toml:"metrics"`
	Pprof   PprofConfig   `toml:"pprof"`
}

// LogConfig is the logging configuration.
type LogConfig struct {
	Level string `toml:"level,omitempty"`
}

// HashingConfig selects the batch SHA-256 compressor.
// Accelerator is one of auto, generic or interleaved.
type HashingConfig struct {
	Accelerator string `toml:"accelerator,omitempty"`
}

// RandomConfig is the randomness configuration.
type RandomConfig struct {
	HardwareRNG bool `toml:"hardware-rng"`
	SanityCheck bool `toml:"sanity-check"`
}

// MetricsConfig is the prometheus metrics configuration.
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address,omitempty"`
}

// PprofConfig is the profiling server configuration.
type PprofConfig struct {
	Enabled          bool   `toml:"enabled"`
	ListeningAddress string `toml:"listening-address,omitempty"`
	BlockRate        int    `toml:"block-rate,omitempty"`
	MutexRate        int    `toml:"mutex-rate,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Hashing: HashingConfig{
			Accelerator: batch.AcceleratorAuto,
		},
		Random: RandomConfig{
			HardwareRNG: true,
			SanityCheck: true,
		},
		Metrics: MetricsConfig{
			Address: DefaultMetricsAddress,
		},
		Pprof: PprofConfig{
			ListeningAddress: pprof.DefaultListeningAddress,
		},
	}
}

// LoadFile decodes the TOML file at path over the default
// configuration and validates the result.
func LoadFile(path string) (cfg *Config, err error) {
	cfg = Default()

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening configuration file: %w", err)
	}
	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing configuration file: %w", closeErr)
		}
	}()

	err = toml.NewDecoder(file).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding configuration file %s: %w", path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Export writes the configuration as TOML to path.
func Export(cfg *Config, path string) error {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}
	return nil
}

// Validate checks every configuration value.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	if _, err := c.Compressor(); err != nil {
		return err
	}

	if c.Metrics.Enabled && c.Metrics.Address == "" {
		return ErrMetricsAddressEmpty
	}

	if c.Pprof.BlockRate < 0 || c.Pprof.MutexRate < 0 {
		return fmt.Errorf("%w: block rate %d, mutex rate %d",
			ErrNegativeProfileRate, c.Pprof.BlockRate, c.Pprof.MutexRate)
	}

	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidLogLevel, err)
	}
	return level, nil
}

// PprofSettings returns the settings of the profiling service.
func (c *Config) PprofSettings() pprof.Settings {
	return pprof.Settings{
		ListeningAddress: c.Pprof.ListeningAddress,
		BlockProfileRate: c.Pprof.BlockRate,
		MutexProfileRate: c.Pprof.MutexRate,
	}
}

// Compressor returns the configured batch compressor.
func (c *Config) Compressor() (batch.Compressor, error) {
	compressor, err := batch.Lookup(c.Hashing.Accelerator)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAccelerator, err)
	}
	return compressor, nil
}
