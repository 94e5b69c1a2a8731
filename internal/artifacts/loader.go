// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package artifacts

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/recsys-engine/internal/logging"
	"github.com/tomtom215/recsys-engine/internal/metrics"
)

// Artifact sources.
const (
	SourceJSON     = "json"
	SourceSnapshot = "snapshot"
	SourceDuckDB   = "duckdb"
)

// Loader reads a bundle from some location. Missing artifacts come back as
// nil bundle fields, never as errors. Malformed artifacts are errors.
type Loader interface {
	Load(ctx context.Context) (*Bundle, error)
}

// Options selects and configures a Loader.
type Options struct {
	Source          string
	Path            string
	SnapshotVersion int
	RequireAll      bool
}

// NewLoader returns the loader for opts.Source.
func NewLoader(opts Options) (Loader, error) {
	switch opts.Source {
	case SourceJSON, "":
		return NewJSONLoader(opts.Path), nil
	case SourceDuckDB:
		return NewDuckDBLoader(opts.Path), nil
	case SourceSnapshot:
		store, err := OpenSnapshotStore(opts.Path)
		if err != nil {
			return nil, err
		}
		return store.Loader(opts.SnapshotVersion), nil
	default:
		return nil, fmt.Errorf("unknown artifact source %q", opts.Source)
	}
}

// Load reads, validates, and reports a bundle. Each missing artifact is logged
// with the endpoints that will answer 503 until it is provided.
func Load(ctx context.Context, opts Options) (*Bundle, error) {
	loader, err := NewLoader(opts)
	if err != nil {
		return nil, err
	}

	log := logging.WithComponent("artifacts")
	start := time.Now()

	bundle, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s artifacts from %s: %w", opts.Source, opts.Path, err)
	}
	if err := bundle.Validate(); err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(AllNames))
	for _, name := range AllNames {
		present[string(name)] = bundle.Has(name)
	}
	metrics.RecordArtifactLoad(opts.Source, time.Since(start), present)

	missing := bundle.Missing()
	for _, name := range missing {
		if name == Translations {
			log.Info().Msg("Product translations not found, localized names disabled")
			continue
		}
		log.Warn().
			Str("artifact", string(name)).
			Strs("degraded_endpoints", degradedEndpoints[name]).
			Msg("Artifact not found")
	}
	if opts.RequireAll && len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissing, missing)
	}

	s := bundle.Summarize()
	log.Info().
		Str("source", opts.Source).
		Str("path", opts.Path).
		Int("users", s.Users).
		Int("products", s.Products).
		Int("rules", s.Rules).
		Int("catalog_entries", s.CatalogEntries).
		Int("translations", s.Translations).
		Dur("duration", time.Since(start)).
		Msg("Artifacts loaded")

	return bundle, nil
}

// degradedEndpoints lists the routes that answer 503 when an artifact is absent.
var degradedEndpoints = map[Name][]string{
	Interactions: {
		"/recommend/user/{user_id}", "/dashboard/top-products", "/dashboard/user/{user_id}",
		"/dashboard/users", "/dashboard/user-search",
	},
	Similarity: {"/recommend/user/{user_id}"},
	Rules:      {"/recommend/association", "/dashboard/rules", "/dashboard/cart-items"},
	Catalog:    {"/dashboard/products", "/dashboard/product-search"},
}
