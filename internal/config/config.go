// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Artifact sources understood by the artifacts package.
const (
	SourceJSON     = "json"
	SourceSnapshot = "snapshot"
	SourceDuckDB   = "duckdb"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Artifacts   ArtifactsConfig   `koanf:"artifacts"`
	Recommend   RecommendConfig   `koanf:"recommend"`
	Translation TranslationConfig `koanf:"translation"`
	API         APIConfig         `koanf:"api"`
	Dashboard   DashboardConfig   `koanf:"dashboard"`
	Security    SecurityConfig    `koanf:"security"`
	Logging     LoggingConfig     `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// ArtifactsConfig tells the loader where the precomputed model artifacts live.
//
// Environment Variables:
//   - ARTIFACTS_SOURCE: json, snapshot, or duckdb (default: json)
//   - ARTIFACTS_PATH: artifact directory (default: ./models)
//   - ARTIFACTS_SNAPSHOT_VERSION: snapshot version to load, 0 for latest
//   - ARTIFACTS_REQUIRE_ALL: refuse to start when any artifact is missing
type ArtifactsConfig struct {
	Source          string `koanf:"source"`
	Path            string `koanf:"path"`
	SnapshotVersion int    `koanf:"snapshot_version"`
	RequireAll      bool   `koanf:"require_all"`
}

// RecommendConfig holds ranking parameters for both recommenders.
type RecommendConfig struct {
	// Neighbors is the number of most similar users consulted per request.
	Neighbors int `koanf:"neighbors"`

	// DefaultUserTopN applies when /recommend/user is called without top_n.
	DefaultUserTopN int `koanf:"default_user_top_n"`

	// DefaultCartTopN applies when the association request omits top_n.
	DefaultCartTopN int `koanf:"default_cart_top_n"`

	// MaxTopN bounds top_n on both endpoints.
	MaxTopN int `koanf:"max_top_n"`
}

// TranslationConfig selects the localized language served from the translation map.
type TranslationConfig struct {
	Language string `koanf:"language"`
}

// APIConfig holds API pagination settings.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
	UserPageSize    int `koanf:"user_page_size"`
}

// DashboardConfig holds the baseline recommendation distribution reported
// before any recommendation has been served.
type DashboardConfig struct {
	BaselineCollaborative float64 `koanf:"baseline_collaborative"`
	BaselineAssociation   float64 `koanf:"baseline_association"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
