// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

// Package logging provides centralized zerolog-based structured logging for the
// recommendation service.
//
// JSON output is the default; console output is available for development.
// Request and correlation IDs travel through context and are attached by Ctx:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("source", "json").Msg("Artifacts loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Recommendation failed")
//
// Environment variables (read through internal/config):
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// NewSlogLogger bridges the global logger into log/slog for the suture
// supervisor's event hook.
package logging
