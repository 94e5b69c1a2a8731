// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

// Package api provides HTTP routing using Chi router.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/recsys-engine/internal/middleware"
)

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)                                             // X-Request-ID and logging context
	r.Use(chimiddleware.RealIP)                                             // Extract real IP from X-Forwarded-For
	r.Use(middleware.RequestLogger(middleware.DefaultSlowRequestThreshold)) // Access log
	r.Use(chimiddleware.Recoverer)                                          // Recover from panics
	r.Use(router.chiMiddleware.CORS())                                      // CORS must be global to handle OPTIONS preflight

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// ========================
	// Health Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/", router.handler.Root)
		r.Get("/health/live", router.handler.HealthLive)
		r.Get("/health/ready", router.handler.HealthReady)
	})

	// ========================
	// Recommendation Endpoints
	// ========================
	r.Route("/recommend", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/user/{user_id}", router.handler.RecommendUser)
		r.Post("/association", router.handler.RecommendCart)
	})

	// ========================
	// Dashboard Endpoints
	// ========================
	// Read-only views over the loaded artifacts; listings can be large.
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitDashboard())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(router.compression)

		r.Get("/stats", router.handler.DashboardStats)
		r.Get("/top-products", router.handler.DashboardTopProducts)
		r.Get("/products", router.handler.DashboardProducts)
		r.Get("/rules", router.handler.DashboardRules)
		r.Get("/user/{user_id}", router.handler.DashboardUserProfile)
		r.Get("/users", router.handler.DashboardUsers)
		r.Get("/model-info", router.handler.DashboardModelInfo)
		r.Get("/recommendation-distribution", router.handler.DashboardDistribution)
		r.Get("/product-search", router.handler.DashboardProductSearch)
		r.Get("/user-search", router.handler.DashboardUserSearch)
		r.Get("/cart-items", router.handler.DashboardCartItems)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
