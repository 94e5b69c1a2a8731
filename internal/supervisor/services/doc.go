// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

/*
Package services adapts long-running components to suture's Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTPServerService translates the blocking ListenAndServe/Shutdown pair of
*http.Server into a context-aware Serve. A graceful stop returns the context
error so the supervisor treats it as a deliberate exit rather than a crash.
*/
package services
