// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

/*
Package metrics provides Prometheus metrics collection and export for observability.

Metrics are registered on the default registry with promauto and exposed at
/metrics in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

HTTP:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommendations:
  - recommendations_served_total{recommender, outcome}
  - recommendation_result_size{recommender}

Artifacts:
  - artifacts_loaded{artifact}
  - artifact_load_duration_seconds{source}

ServedCount reads the served counters back so the dashboard can report the
observed split between collaborative filtering and association rules.
*/
package metrics
