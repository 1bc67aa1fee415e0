// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"

	"github.com/edtubbs/dogecoin/internal/log"
	"github.com/urfave/cli"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

func newApp() *cli.App {
	var started *services

	app := cli.NewApp()
	app.Name = "dogecrypt"
	app.Usage = "Node hashing and randomness toolkit"
	app.Flags = globalFlags
	app.Commands = []cli.Command{
		hashCommand,
		merkleCommand,
		randCommand,
		selftestCommand,
		benchCommand,
	}

	app.Before = func(ctx *cli.Context) (err error) {
		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		started, err = setup(cfg)
		return err
	}

	app.After = func(ctx *cli.Context) error {
		if started == nil {
			return nil
		}
		return started.stop()
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Errorf("failed to run dogecrypt: %s", err)
		os.Exit(1)
	}
}
