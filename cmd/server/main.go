// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/recsys-engine/docs" // Import generated swagger docs
	"github.com/tomtom215/recsys-engine/internal/config"
	"github.com/tomtom215/recsys-engine/internal/logging"
	"github.com/tomtom215/recsys-engine/internal/supervisor"
	"github.com/tomtom215/recsys-engine/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("artifact_source", cfg.Artifacts.Source).
		Str("artifact_path", cfg.Artifacts.Path).
		Str("translation_language", cfg.Translation.Language).
		Str("environment", cfg.Server.Environment).
		Msg("Starting RecSys Engine")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bundle, err := loadBundle(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load artifacts")
	}

	handler, err := newHTTPHandler(cfg, bundle)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize HTTP handler")
	}
	server := newHTTPServer(cfg, handler)

	// Bridges zerolog to slog for sutureslog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, services.HTTPServerConfig{
		Addr:            server.Addr,
		ShutdownTimeout: supervisor.DefaultTreeConfig().ShutdownTimeout,
	}))

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}
