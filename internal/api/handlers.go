// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package api

import (
	"time"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
	"github.com/tomtom215/recsys-engine/internal/catalog"
	"github.com/tomtom215/recsys-engine/internal/config"
	"github.com/tomtom215/recsys-engine/internal/dashboard"
	"github.com/tomtom215/recsys-engine/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: query and path parameter parsing
//   - handlers_health.go: root, liveness and readiness probes
//   - handlers_recommend.go: user and cart recommendations
//   - handlers_dashboard.go: dashboard views
type Handler struct {
	recommender *recommend.Service
	dashboard   *dashboard.Service
	names       *catalog.Resolver
	bundle      *artifacts.Bundle
	api         config.APIConfig
	startTime   time.Time
}

// HandlerDeps groups the services a Handler serves.
type HandlerDeps struct {
	Recommender *recommend.Service
	Dashboard   *dashboard.Service
	Names       *catalog.Resolver
	Bundle      *artifacts.Bundle
	API         config.APIConfig
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(api.HandlerDeps{
//	    Recommender: recommend.NewService(bundle, recCfg),
//	    Dashboard:   dashboard.NewService(bundle, names, dashCfg),
//	    Names:       names,
//	    Bundle:      bundle,
//	    API:         cfg.API,
//	})
//	router, err := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
//
//nolint:gocritic // hugeParam: deps is built once at startup
func NewHandler(deps HandlerDeps) *Handler {
	if deps.Bundle == nil {
		deps.Bundle = &artifacts.Bundle{}
	}
	return &Handler{
		recommender: deps.Recommender,
		dashboard:   deps.Dashboard,
		names:       deps.Names,
		bundle:      deps.Bundle,
		api:         deps.API,
		startTime:   time.Now(),
	}
}
