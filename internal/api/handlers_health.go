// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
	"github.com/tomtom215/recsys-engine/internal/metrics"
)

// RootStatus is the body of GET /.
type RootStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// LiveStatus is the body of GET /health/live.
type LiveStatus struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadyStatus is the body of GET /health/ready.
type ReadyStatus struct {
	Status       string           `json:"status"`
	Recommenders map[string]bool  `json:"recommenders"`
	Missing      []artifacts.Name `json:"missing,omitempty"`
}

// Root handles GET /
//
// @Summary Service banner
// @Tags Health
// @Produce json
// @Success 200 {object} RootStatus
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, RootStatus{
		Status:  "ok",
		Message: "Recommender Engine is running",
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of artifacts.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} LiveStatus
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, LiveStatus{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 once at least one recommender has its artifacts, 503 otherwise.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} ReadyStatus "At least one recommender can serve"
// @Failure 503 {object} ReadyStatus "No recommender can serve"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := ReadyStatus{
		Status: "ready",
		Recommenders: map[string]bool{
			metrics.RecommenderCollaborative: h.recommender.UserAvailable(),
			metrics.RecommenderAssociation:   h.recommender.CartAvailable(),
		},
		Missing: h.bundle.Missing(),
	}

	code := http.StatusOK
	if !status.Recommenders[metrics.RecommenderCollaborative] && !status.Recommenders[metrics.RecommenderAssociation] {
		code = http.StatusServiceUnavailable
		status.Status = "not_ready"
	}
	respondJSON(w, code, status)
}
