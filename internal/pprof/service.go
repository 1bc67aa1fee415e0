// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package pprof serves runtime profiles over HTTP, used to profile
// the hashing and randomness code paths under load.
package pprof

import (
	"context"
	"errors"
	"runtime"

	"github.com/edtubbs/dogecoin/internal/httpserver"
)

// Runner runs an HTTP server until its context is canceled.
type Runner interface {
	Run(ctx context.Context, ready chan<- struct{}, done chan<- error)
}

// Service runs the pprof HTTP server in the background.
type Service struct {
	settings Settings
	server   Runner
	cancel   context.CancelFunc
	done     chan error
}

// NewService creates a pprof server service.
func NewService(settings Settings, logger httpserver.Logger) *Service {
	settings.setDefaults()

	return &Service{
		settings: settings,
		server:   NewServer(settings.ListeningAddress, logger),
		done:     make(chan error),
	}
}

// ErrServerDoneBeforeReady is returned when the server exits before
// listening.
var ErrServerDoneBeforeReady = errors.New("server terminated before being ready")

// Start sets the block and mutex profile rates and starts the
// pprof server.
func (s *Service) Start() (err error) {
	runtime.SetBlockProfileRate(s.settings.BlockProfileRate)
	runtime.SetMutexProfileFraction(s.settings.MutexProfileRate)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		return nil
	case err := <-s.done:
		cancel()
		if err != nil {
			return err
		}
		return ErrServerDoneBeforeReady
	}
}

// Stop stops the pprof server.
func (s *Service) Stop() (err error) {
	s.cancel()
	return <-s.done
}
