// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

/*
Package middleware provides chi-compatible HTTP middleware for the API.

Key Components:

  - RequestID: reuses or generates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge per route pattern
  - RequestLogger: one zerolog access-log line per request, warn on slow requests
  - Compression: gzip for responses over 1KB (klauspost/compress gzhttp)

Every middleware has the func(http.Handler) http.Handler shape used by chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(time.Second))
	r.Use(middleware.PrometheusMetrics)

	gz, err := middleware.Compression()
	if err != nil {
	    return err
	}
	r.Use(gz)

Metric labels use the matched route pattern rather than the raw path, so
"/recommend/user/12347" and "/recommend/user/12350" share the series
endpoint="/recommend/user/{user_id}". Requests that match no route are
labelled "unmatched".

Handlers read the request ID with GetRequestID(r.Context()); it is the same
value logging.Ctx attaches to every log line for the request.

See Also:

  - internal/api: router that composes these middleware
  - internal/metrics: Prometheus metric definitions
  - internal/logging: request-scoped logger
*/
package middleware
