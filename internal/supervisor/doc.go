// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

/*
Package supervisor runs the engine's long-lived services under suture v4.

The tree has a root supervisor and an API layer holding the HTTP server.
Crashed services are restarted with backoff once FailureThreshold is
exceeded, and supervisor events are logged through sutureslog using the
slog adapter from the logging package.

Usage in main:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, services.HTTPServerConfig{Addr: server.Addr}))
	return tree.Serve(ctx)
*/
package supervisor
