// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/recsys-engine/internal/logging"
)

// DefaultShutdownTimeout bounds connection draining when none is configured.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer matches the lifecycle methods of *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerConfig names and tunes a supervised HTTP server.
type HTTPServerConfig struct {
	// Name identifies the service in supervisor events. Default: "http-server".
	Name string

	// Addr is the listen address, used only for logging.
	Addr string

	// ShutdownTimeout bounds graceful shutdown. Default: 10s.
	ShutdownTimeout time.Duration
}

// HTTPServerService runs an HTTP server as a suture service.
//
// ListenAndServe runs in a goroutine. When the supervisor cancels the
// context the server is shut down with a fresh timeout context, since the
// supervisor's context is already done by then.
//
//	server := &http.Server{Addr: ":8000", Handler: router}
//	tree.AddAPIService(services.NewHTTPServerService(server, services.HTTPServerConfig{Addr: server.Addr}))
type HTTPServerService struct {
	server HTTPServer
	config HTTPServerConfig
}

// NewHTTPServerService wraps server for supervision.
func NewHTTPServerService(server HTTPServer, config HTTPServerConfig) *HTTPServerService {
	if config.Name == "" {
		config.Name = "http-server"
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = DefaultShutdownTimeout
	}
	return &HTTPServerService{server: server, config: config}
}

// Serve implements suture.Service.
//
// http.ErrServerClosed is not an error. A graceful stop returns ctx.Err()
// so the supervisor does not restart the service.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	log := logging.WithComponent(h.config.Name)

	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	log.Info().Str("addr", h.config.Addr).Msg("HTTP server listening")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%s failed: %w", h.config.Name, err)
		}
		return nil

	case <-ctx.Done():
		log.Info().Dur("timeout", h.config.ShutdownTimeout).Msg("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.config.ShutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s shutdown failed: %w", h.config.Name, err)
		}

		<-errCh
		log.Info().Msg("HTTP server stopped")
		return ctx.Err()
	}
}

// String implements fmt.Stringer; suture uses it in event logs.
func (h *HTTPServerService) String() string {
	return h.config.Name
}
