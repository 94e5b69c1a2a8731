// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package artifacts

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func writeGzip(t *testing.T, dir, name, content string) {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(content)); err != nil {
		t.Fatalf("gzip %s: %v", name, err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

const interactionsJSON = `{
  "users": [100, 200, 300],
  "products": ["85123A", "22423", "47566"],
  "rows": [[6, 0, 0], [2, 1, 0], [0, 0, 4]]
}`

func TestJSONLoaderFullBundle(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	writeFile(t, dir, "user_item_matrix.json", interactionsJSON)
	writeGzip(t, dir, "user_similarity.json.gz", `{"users": [300, 200, 100], "matrix": [[1, 0.2, 0.1], [0.2, 1, 0.8], [0.1, 0.8, 1]]}`)
	writeFile(t, dir, "association_rules.json", `[
	  {"antecedents": ["85123A"], "consequents": ["22423"], "support": 0.02, "confidence": 0.6, "lift": 3.1},
	  {"id": 42, "antecedents": ["22423"], "consequents": ["47566", "85123A"], "support": 0.01, "confidence": 0.4, "lift": 1.9}
	]`)
	writeFile(t, dir, "product_catalog.json", `[
	  {"StockCode": "85123A", "Description": "WHITE HANGING HEART T-LIGHT HOLDER", "UnitPrice": 2.55},
	  {"stock_code": 22423, "description": "REGENCY CAKESTAND 3 TIER"}
	]`)
	writeFile(t, dir, "product_translations.json", `{"REGENCY CAKESTAND 3 TIER": "Soporte para pasteles de 3 pisos"}`)

	b, err := NewJSONLoader(dir).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if missing := b.Missing(); len(missing) != 0 {
		t.Fatalf("unexpected missing artifacts: %v", missing)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if b.Interactions.NumUsers() != 3 || b.Interactions.NumProducts() != 3 {
		t.Errorf("interactions shape = %dx%d", b.Interactions.NumUsers(), b.Interactions.NumProducts())
	}
	row, _ := b.Similarity.Row(100)
	if row[1] != 0.8 {
		t.Errorf("similarity(100, 200) = %v, want 0.8", row[1])
	}
	if b.Rules.Rules[0].ID != 0 || b.Rules.Rules[1].ID != 42 {
		t.Errorf("rule ids = %d, %d; want 0, 42", b.Rules.Rules[0].ID, b.Rules.Rules[1].ID)
	}
	if desc, ok := b.Catalog.Description("22423"); !ok || desc != "REGENCY CAKESTAND 3 TIER" {
		t.Errorf("numeric stock code not normalized: %q, %v", desc, ok)
	}
	if got := b.Catalog.Entries[0].Attributes["UnitPrice"]; got != "2.55" {
		t.Errorf("UnitPrice attribute = %q, want 2.55", got)
	}
	if b.Translations["REGENCY CAKESTAND 3 TIER"] == "" {
		t.Error("translation not loaded")
	}
}

func TestJSONLoaderMissingArtifacts(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "user_item_matrix.json", interactionsJSON)

	b, err := NewJSONLoader(dir).Load(context.Background())
	if err != nil {
		t.Fatalf("missing files must not be errors, got %v", err)
	}
	if b.Interactions == nil {
		t.Error("interactions should be loaded")
	}
	if b.Similarity != nil || b.Rules != nil || b.Catalog != nil || b.Translations != nil {
		t.Errorf("absent artifacts should be nil, missing = %v", b.Missing())
	}
}

func TestJSONLoaderLegacyBareMatrix(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "user_item_matrix.json", interactionsJSON)
	writeFile(t, dir, "user_correlation_matrix.json", `[[1, 0.5, 0], [0.5, 1, 0.3], [0, 0.3, 1]]`)

	b, err := NewJSONLoader(dir).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b.Similarity == nil {
		t.Fatal("legacy similarity matrix should load")
	}
	// Row order follows the interaction matrix and is recorded as ids.
	row, ok := b.Similarity.Row(200)
	if !ok || row[2] != 0.3 {
		t.Errorf("Row(200) = %v, %v", row, ok)
	}
}

func TestJSONLoaderBareMatrixWithoutInteractions(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "user_similarity.json", `[[1]]`)

	_, err := NewJSONLoader(dir).Load(context.Background())
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestJSONLoaderMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"truncated json", "association_rules.json", `[{"antecedents": [`},
		{"ragged interactions", "user_item_matrix.json", `{"users": [1], "products": ["A", "B"], "rows": [[1]]}`},
		{"catalog without code", "product_catalog.json", `[{"Description": "NO CODE"}]`},
		{"confidence out of range", "association_rules.json", `[{"antecedents": ["A"], "consequents": ["B"], "confidence": 2}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.content)
			if _, err := NewJSONLoader(dir).Load(context.Background()); !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestJSONLoaderCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewJSONLoader(t.TempDir()).Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
