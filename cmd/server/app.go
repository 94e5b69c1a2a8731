// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tomtom215/recsys-engine/internal/api"
	"github.com/tomtom215/recsys-engine/internal/artifacts"
	"github.com/tomtom215/recsys-engine/internal/catalog"
	"github.com/tomtom215/recsys-engine/internal/config"
	"github.com/tomtom215/recsys-engine/internal/dashboard"
	"github.com/tomtom215/recsys-engine/internal/recommend"
)

// recommendConfig maps the recommend section onto the service parameters.
func recommendConfig(cfg *config.Config) recommend.Config {
	return recommend.Config{
		Neighbors:       cfg.Recommend.Neighbors,
		DefaultUserTopN: cfg.Recommend.DefaultUserTopN,
		DefaultCartTopN: cfg.Recommend.DefaultCartTopN,
		MaxTopN:         cfg.Recommend.MaxTopN,
	}
}

// dashboardConfig maps the dashboard section onto the query service.
func dashboardConfig(cfg *config.Config) dashboard.Config {
	dc := dashboard.DefaultConfig()
	dc.BaselineCollaborative = cfg.Dashboard.BaselineCollaborative
	dc.BaselineAssociation = cfg.Dashboard.BaselineAssociation
	return dc
}

// loadBundle reads the artifacts named by the artifacts section.
func loadBundle(ctx context.Context, cfg *config.Config) (*artifacts.Bundle, error) {
	return artifacts.Load(ctx, artifacts.Options{
		Source:          cfg.Artifacts.Source,
		Path:            cfg.Artifacts.Path,
		SnapshotVersion: cfg.Artifacts.SnapshotVersion,
		RequireAll:      cfg.Artifacts.RequireAll,
	})
}

// newHTTPHandler wires the services over bundle and returns the router.
func newHTTPHandler(cfg *config.Config, bundle *artifacts.Bundle) (http.Handler, error) {
	names, err := catalog.NewResolver(bundle, cfg.Translation.Language)
	if err != nil {
		return nil, fmt.Errorf("build name resolver: %w", err)
	}

	handler := api.NewHandler(api.HandlerDeps{
		Recommender: recommend.NewService(bundle, recommendConfig(cfg)),
		Dashboard:   dashboard.NewService(bundle, names, dashboardConfig(cfg)),
		Names:       names,
		Bundle:      bundle,
		API:         cfg.API,
	})

	router, err := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}
	return router.SetupChi(), nil
}

// newHTTPServer returns the server for the server section.
func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}
}
