// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
	"github.com/tomtom215/recsys-engine/internal/catalog"
	"github.com/tomtom215/recsys-engine/internal/config"
	"github.com/tomtom215/recsys-engine/internal/dashboard"
	"github.com/tomtom215/recsys-engine/internal/recommend"
)

// testAPIConfig mirrors the configuration defaults.
var testAPIConfig = config.APIConfig{DefaultPageSize: 20, MaxPageSize: 500, UserPageSize: 50}

// newTestHandler builds a Handler over b. The recommendation distribution
// reads a zero counter so the baseline is reported.
func newTestHandler(t *testing.T, b *artifacts.Bundle) *Handler {
	t.Helper()

	names, err := catalog.NewResolver(b, catalog.DefaultLanguage)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	dashCfg := dashboard.DefaultConfig()
	dashCfg.ServedCount = func(string) float64 { return 0 }

	return NewHandler(HandlerDeps{
		Recommender: recommend.NewService(b, recommend.DefaultConfig()),
		Dashboard:   dashboard.NewService(b, names, dashCfg),
		Names:       names,
		Bundle:      b,
		API:         testAPIConfig,
	})
}

// newTestServer returns the full route tree over b with rate limiting off.
func newTestServer(t *testing.T, b *artifacts.Bundle) http.Handler {
	t.Helper()

	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.RateLimitDisabled = true
	router, err := NewRouter(newTestHandler(t, b), mwCfg)
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}
	return router.SetupChi()
}

// doRequest sends one request through h. A non-empty body is sent as JSON.
func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the response body into v.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to unmarshal response %q: %v", rec.Body.String(), err)
	}
}

// assertError checks status and envelope code of an error response.
func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("Expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	var resp APIResponse
	decode(t, rec, &resp)
	if resp.Success {
		t.Error("Expected success to be false")
	}
	if resp.Error == nil || resp.Error.Code != code {
		t.Errorf("Expected error code %s, got %+v", code, resp.Error)
	}
}
