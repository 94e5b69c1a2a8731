// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package dashboard

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
	"github.com/tomtom215/recsys-engine/internal/catalog"
	"github.com/tomtom215/recsys-engine/internal/metrics"
)

var (
	// ErrUnavailable is returned when a view's artifact was not loaded.
	ErrUnavailable = fmt.Errorf("dashboard data unavailable: %w", artifacts.ErrMissing)

	// ErrUserNotFound is returned for a user id that is not in the interaction matrix.
	ErrUserNotFound = errors.New("user not found")
)

// Model descriptions reported by ModelInfo.
const (
	collaborativeType = "User-Based Collaborative Filtering"
	similarityMethod  = "Cosine"
	associationType   = "Association Rules (Apriori)"
)

// profileProducts is the number of products listed in a user profile.
const profileProducts = 20

// Config holds the dashboard settings.
type Config struct {
	// BaselineCollaborative and BaselineAssociation are reported as the
	// recommendation distribution until any recommendation has been served.
	BaselineCollaborative float64
	BaselineAssociation   float64

	// ServedCount returns the number of requests a recommender has answered.
	// Defaults to metrics.ServedCount.
	ServedCount func(recommender string) float64
}

// DefaultConfig returns the 62/38 baseline backed by the Prometheus counters.
func DefaultConfig() Config {
	return Config{
		BaselineCollaborative: 62,
		BaselineAssociation:   38,
		ServedCount:           metrics.ServedCount,
	}
}

// Service computes the dashboard views. Every view is a reduction over the
// immutable bundle, so the service is safe for concurrent use.
type Service struct {
	bundle *artifacts.Bundle
	names  *catalog.Resolver
	config Config
}

// NewService binds the views to b, resolving product names with names.
func NewService(b *artifacts.Bundle, names *catalog.Resolver, cfg Config) *Service {
	if b == nil {
		b = &artifacts.Bundle{}
	}
	if cfg.ServedCount == nil {
		cfg.ServedCount = metrics.ServedCount
	}
	return &Service{bundle: b, names: names, config: cfg}
}

// unavailable wraps ErrUnavailable with the missing artifact's name.
func unavailable(name artifacts.Name) error {
	return fmt.Errorf("%w: %s", ErrUnavailable, name)
}

// paginate returns the page-th slice of pageSize items. page is 1-based;
// out-of-range pages are empty.
func paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// round rounds v to the given number of decimal places.
func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
