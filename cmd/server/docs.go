// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

// Package main is the RecSys Engine HTTP server.
//
// RecSys Engine serves product recommendations for an online retailer from
// precomputed models: user-based collaborative filtering over a user
// similarity matrix, and association rules mined from shopping baskets. A
// read-only dashboard API exposes the same artifacts for inspection.
//
// Startup order:
//
//  1. Configuration: koanf v2 (defaults, config.yaml, environment)
//  2. Logging: zerolog
//  3. Artifacts: loaded once from the json, duckdb, or snapshot source
//  4. Services: name resolver, recommenders, dashboard queries
//  5. HTTP server under a suture supervisor tree
//
// Missing artifacts are not fatal unless ARTIFACTS_REQUIRE_ALL is set; the
// endpoints that need them answer 503.
//
// The server shuts down gracefully on SIGINT and SIGTERM.
//
// @title RecSys Engine API
// @version 1.0
// @description Product recommendations from precomputed collaborative-filtering and association-rule models, plus read-only dashboard views over the same artifacts.
// @description
// @description ## Error Responses
// @description
// @description Successful responses are the bare payload. Errors use this envelope:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {"code": "NOT_FOUND", "message": "User not found", "request_id": "..."},
// @description   "meta": {"request_id": "...", "timestamp": "2026-01-01T00:00:00Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/recsys-engine/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Recommendations
// @tag.description Collaborative-filtering and association-rule recommendations
//
// @tag.name Dashboard
// @tag.description Read-only views over the loaded model artifacts
//
// @tag.name Health
// @tag.description Service banner and probes
package main
