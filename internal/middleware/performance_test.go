// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/recsys-engine/internal/logging"
)

// captureLogs swaps the global logger for one writing to a buffer.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous, level := logging.Logger(), zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() {
		logging.SetLogger(previous)
		zerolog.SetGlobalLevel(level)
	})
	return &buf
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]interface{}
	if err := json.Unmarshal(lines[len(lines)-1], &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	return entry
}

func TestRequestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		sleep     time.Duration
		slow      time.Duration
		wantLevel string
	}{
		{"fast success", http.StatusOK, 0, time.Second, "debug"},
		{"client error", http.StatusNotFound, 0, time.Second, "debug"},
		{"server error", http.StatusServiceUnavailable, 0, time.Second, "error"},
		{"slow request", http.StatusOK, 20 * time.Millisecond, time.Millisecond, "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			r := chi.NewRouter()
			r.Use(RequestID)
			r.Use(RequestLogger(tt.slow))
			r.Get("/recommend/user/{user_id}", func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(tt.sleep)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("[]"))
			})

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommend/user/12347", nil))

			entry := lastLogLine(t, buf)
			if entry["level"] != tt.wantLevel {
				t.Errorf("Expected level %s, got %v", tt.wantLevel, entry["level"])
			}
			if entry["route"] != "/recommend/user/{user_id}" {
				t.Errorf("Expected route pattern, got %v", entry["route"])
			}
			if int(entry["status"].(float64)) != tt.status {
				t.Errorf("Expected status %d, got %v", tt.status, entry["status"])
			}
			if entry["request_id"] != rec.Header().Get(RequestIDHeader) {
				t.Errorf("Expected request_id %q, got %v", rec.Header().Get(RequestIDHeader), entry["request_id"])
			}
		})
	}
}

func TestRequestLogger_DefaultThreshold(t *testing.T) {
	buf := captureLogs(t)

	handler := RequestLogger(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entry := lastLogLine(t, buf)
	if entry["level"] != "debug" {
		t.Errorf("Expected debug level, got %v", entry["level"])
	}
	if int(entry["bytes"].(float64)) != 2 {
		t.Errorf("Expected 2 bytes written, got %v", entry["bytes"])
	}
}
