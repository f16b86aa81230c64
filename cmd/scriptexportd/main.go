// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/daoforge/scriptexport/lib/config"
	"github.com/daoforge/scriptexport/lib/export"
	"github.com/daoforge/scriptexport/lib/govern"
	"github.com/daoforge/scriptexport/lib/service"
	"github.com/daoforge/scriptexport/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flagSet := pflag.NewFlagSet("scriptexportd", pflag.ContinueOnError)
	configPath := flagSet.String("config", "", "path to scriptexport.yaml (overrides "+config.EnvVar+")")
	listenAddress := flagSet.String("listen", "", "listen address override (e.g., \":9080\")")
	showVersion := flagSet.Bool("version", false, "print version information and exit")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if *showVersion {
		version.Print("scriptexportd")
		return nil
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *listenAddress != "" {
		cfg.ListenAddress = *listenAddress
	}

	logger := service.NewLogger(service.ParseLevel(cfg.LogLevel))

	// The registration chain runs exactly once, before the listener
	// binds. Any failure here — including a duplicate key, which
	// would be a defect in the chain itself — aborts startup; after
	// this point the registry is immutable.
	registry := export.NewRegistry()
	err = govern.RegisterAll(registry, govern.ChainParams{
		Network:         cfg.Chain.Network,
		AuthorityPolicy: cfg.Chain.AuthorityPolicy,
		AuthorityName:   cfg.Chain.AuthorityName,
	})
	if err != nil {
		return fmt.Errorf("startup registration: %w", err)
	}
	logger.Info("builder registry ready",
		"builders", registry.Len(),
		"network", cfg.Chain.Network,
		"revision", version.Revision())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := service.NewHTTPServer(service.HTTPServerConfig{
		Address:         cfg.ListenAddress,
		Handler:         newHandler(registry, logger).routes(),
		ShutdownTimeout: cfg.ShutdownDuration(),
		Logger:          logger,
	})
	return server.Serve(ctx)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
