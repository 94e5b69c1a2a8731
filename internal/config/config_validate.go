// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package config

import (
	"fmt"
	"math"
	"time"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validSources = map[string]bool{
	SourceJSON:     true,
	SourceSnapshot: true,
	SourceDuckDB:   true,
}

// Validate checks that configuration values are present and within range.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateArtifacts(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateDashboard(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative")
	}
	return nil
}

func (c *Config) validateArtifacts() error {
	if !validSources[c.Artifacts.Source] {
		return fmt.Errorf("ARTIFACTS_SOURCE must be one of: json, snapshot, duckdb (got %q)", c.Artifacts.Source)
	}
	if c.Artifacts.Path == "" {
		return fmt.Errorf("ARTIFACTS_PATH is required")
	}
	if c.Artifacts.SnapshotVersion < 0 {
		return fmt.Errorf("ARTIFACTS_SNAPSHOT_VERSION must not be negative")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.Neighbors < 1 {
		return fmt.Errorf("RECOMMEND_NEIGHBORS must be at least 1")
	}
	if r.MaxTopN < 1 {
		return fmt.Errorf("RECOMMEND_MAX_TOP_N must be at least 1")
	}
	if r.DefaultUserTopN < 1 || r.DefaultUserTopN > r.MaxTopN {
		return fmt.Errorf("RECOMMEND_DEFAULT_USER_TOP_N must be between 1 and %d", r.MaxTopN)
	}
	if r.DefaultCartTopN < 1 || r.DefaultCartTopN > r.MaxTopN {
		return fmt.Errorf("RECOMMEND_DEFAULT_CART_TOP_N must be between 1 and %d", r.MaxTopN)
	}
	return nil
}

func (c *Config) validateAPI() error {
	a := c.API
	if a.MaxPageSize < 1 {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be at least 1")
	}
	if a.DefaultPageSize < 1 || a.DefaultPageSize > a.MaxPageSize {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be between 1 and %d", a.MaxPageSize)
	}
	if a.UserPageSize < 1 || a.UserPageSize > a.MaxPageSize {
		return fmt.Errorf("API_USER_PAGE_SIZE must be between 1 and %d", a.MaxPageSize)
	}
	return nil
}

func (c *Config) validateDashboard() error {
	d := c.Dashboard
	if d.BaselineCollaborative < 0 || d.BaselineAssociation < 0 {
		return fmt.Errorf("dashboard baseline percentages must not be negative")
	}
	if math.Abs(d.BaselineCollaborative+d.BaselineAssociation-100) > 0.01 {
		return fmt.Errorf("dashboard baseline percentages must sum to 100 (got %.2f)",
			d.BaselineCollaborative+d.BaselineAssociation)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between 1 and 100000")
	}
	if c.Security.RateLimitWindow < time.Second || c.Security.RateLimitWindow > time.Hour {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between 1s and 1h")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
