// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

/*
Package api provides the HTTP layer of the recommendation engine.

Routes are registered on a chi router in SetupChi and grouped by rate limit tier:

  - Health: GET /, /health/live, /health/ready
  - Recommendations: GET /recommend/user/{user_id}, POST /recommend/association
  - Dashboard: read-only views under /dashboard (stats, listings, search, model info)
  - Observability: /metrics (Prometheus) and /swagger/* (OpenAPI UI)

Successful responses are the bare JSON payload. Failures use a shared envelope:

	{
	  "success": false,
	  "error": {"code": "NOT_FOUND", "message": "User not found", "request_id": "..."},
	  "meta": {"request_id": "...", "timestamp": "..."}
	}

Domain errors from the recommend and dashboard packages are mapped to status
codes in writeDomainError: unavailable models answer 503, unknown users 404,
and invalid parameters 400 with the VALIDATION_ERROR code.

Handlers hold no mutable state beyond the services they wrap, so a Handler is
safe for concurrent use once constructed.
*/
package api
