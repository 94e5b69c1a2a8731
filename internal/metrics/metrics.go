// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Recommender label values.
const (
	RecommenderCollaborative = "collaborative_filtering"
	RecommenderAssociation   = "association_rules"
)

// Outcome label values for RecommendationsServed.
const (
	OutcomeServed      = "served"
	OutcomeEmpty       = "empty"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
	OutcomeInvalid     = "invalid"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommendation requests by recommender and outcome",
		},
		[]string{"recommender", "outcome"},
	)

	RecommendationResultSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_result_size",
			Help:    "Number of items returned per recommendation request",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20, 50, 100},
		},
		[]string{"recommender"},
	)

	// Artifact Metrics
	ArtifactsLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "artifacts_loaded",
			Help: "Whether each model artifact is loaded (1) or missing (0)",
		},
		[]string{"artifact"},
	)

	ArtifactLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "artifact_load_duration_seconds",
			Help:    "Duration of artifact bundle loading in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"source"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records the outcome of one recommendation request.
// Result size is only observed for requests that produced a list.
func RecordRecommendation(recommender, outcome string, size int) {
	RecommendationsServed.WithLabelValues(recommender, outcome).Inc()
	if outcome == OutcomeServed || outcome == OutcomeEmpty {
		RecommendationResultSize.WithLabelValues(recommender).Observe(float64(size))
	}
}

// RecordArtifactLoad records bundle load duration and per-artifact presence.
func RecordArtifactLoad(source string, duration time.Duration, present map[string]bool) {
	ArtifactLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
	for name, ok := range present {
		v := 0.0
		if ok {
			v = 1
		}
		ArtifactsLoaded.WithLabelValues(name).Set(v)
	}
}

// ServedCount returns how many requests a recommender has answered with a
// list (empty lists included) since process start.
func ServedCount(recommender string) float64 {
	var total float64
	for _, outcome := range []string{OutcomeServed, OutcomeEmpty} {
		c, err := RecommendationsServed.GetMetricWithLabelValues(recommender, outcome)
		if err != nil {
			continue
		}
		var m dto.Metric
		if err := c.Write(&m); err != nil {
			continue
		}
		total += m.GetCounter().GetValue()
	}
	return total
}
