// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package artifacts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
)

// legacySimilarityFile is the file name older training runs wrote the
// similarity matrix under.
const legacySimilarityFile = "user_correlation_matrix"

// JSONLoader reads artifacts from a directory of JSON files. Each file may be
// plain (name.json) or gzip-compressed (name.json.gz).
type JSONLoader struct {
	dir string
}

// NewJSONLoader creates a loader for dir.
func NewJSONLoader(dir string) *JSONLoader {
	return &JSONLoader{dir: dir}
}

type interactionsFile struct {
	Users    []int64     `json:"users"`
	Products []string    `json:"products"`
	Rows     [][]float64 `json:"rows"`
}

type similarityFile struct {
	Users  []int64     `json:"users"`
	Matrix [][]float64 `json:"matrix"`
}

type ruleRecord struct {
	ID          *int     `json:"id"`
	Antecedents []string `json:"antecedents"`
	Consequents []string `json:"consequents"`
	Support     float64  `json:"support"`
	Confidence  float64  `json:"confidence"`
	Lift        float64  `json:"lift"`
}

// Load reads every artifact present in the directory.
func (l *JSONLoader) Load(ctx context.Context) (*Bundle, error) {
	b := &Bundle{}

	steps := []func() error{
		func() error { return l.loadInteractions(b) },
		func() error { return l.loadSimilarity(b) },
		func() error { return l.loadRules(b) },
		func() error { return l.loadCatalog(b) },
		func() error { return l.loadTranslations(b) },
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := step(); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (l *JSONLoader) loadInteractions(b *Bundle) error {
	var f interactionsFile
	found, err := l.decode(string(Interactions), &f)
	if err != nil || !found {
		return err
	}
	m, err := DenseInteractionMatrix(f.Users, f.Products, f.Rows)
	if err != nil {
		return err
	}
	b.Interactions = m
	return nil
}

func (l *JSONLoader) loadSimilarity(b *Bundle) error {
	var raw json.RawMessage
	found, err := l.decode(string(Similarity), &raw)
	if err != nil {
		return err
	}
	if !found {
		if found, err = l.decode(legacySimilarityFile, &raw); err != nil || !found {
			return err
		}
	}

	var f similarityFile
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &f.Matrix)
	} else {
		err = json.Unmarshal(trimmed, &f)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, Similarity, err)
	}

	// A bare matrix follows the interaction matrix row order; record it
	// explicitly so lookups stay id-based from here on.
	if f.Users == nil {
		if b.Interactions == nil || b.Interactions.NumUsers() != len(f.Matrix) {
			return fmt.Errorf("%w: %s has no user ids and cannot be aligned with %s",
				ErrMalformed, Similarity, Interactions)
		}
		f.Users = append([]int64(nil), b.Interactions.Users...)
	}

	s, err := NewSimilarityModel(f.Users, f.Matrix)
	if err != nil {
		return err
	}
	b.Similarity = s
	return nil
}

func (l *JSONLoader) loadRules(b *Bundle) error {
	var records []ruleRecord
	found, err := l.decode(string(Rules), &records)
	if err != nil || !found {
		return err
	}
	rules := make([]Rule, len(records))
	for i, r := range records {
		id := i
		if r.ID != nil {
			id = *r.ID
		}
		rules[i] = Rule{
			ID:          id,
			Antecedents: r.Antecedents,
			Consequents: r.Consequents,
			Support:     r.Support,
			Confidence:  r.Confidence,
			Lift:        r.Lift,
		}
	}
	t, err := NewRuleTable(rules)
	if err != nil {
		return err
	}
	b.Rules = t
	return nil
}

func (l *JSONLoader) loadCatalog(b *Bundle) error {
	var records []map[string]any
	found, err := l.decode(string(Catalog), &records)
	if err != nil || !found {
		return err
	}
	entries := make([]CatalogEntry, 0, len(records))
	for i, rec := range records {
		fields := make(map[string]string, len(rec))
		for k, v := range rec {
			fields[k] = stringify(v)
		}
		e, ok := catalogEntryFromFields(fields)
		if !ok {
			return fmt.Errorf("%w: %s entry %d has no stock code", ErrMalformed, Catalog, i)
		}
		entries = append(entries, e)
	}
	b.Catalog = NewProductCatalog(entries)
	return nil
}

func (l *JSONLoader) loadTranslations(b *Bundle) error {
	var m map[string]string
	found, err := l.decode(string(Translations), &m)
	if err != nil || !found {
		return err
	}
	if m == nil {
		m = map[string]string{}
	}
	b.Translations = TranslationMap(m)
	return nil
}

// decode reads name.json or name.json.gz into v. It reports found=false when
// neither file exists.
func (l *JSONLoader) decode(name string, v any) (bool, error) {
	for _, candidate := range []string{name + ".json", name + ".json.gz"} {
		path := filepath.Join(l.dir, candidate)
		f, err := os.Open(path) //nolint:gosec // path is built from the configured artifact directory
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("open %s: %w", path, err)
		}
		err = decodeJSON(f, strings.HasSuffix(candidate, ".gz"), v)
		_ = f.Close() //nolint:errcheck // read-only file
		if err != nil {
			return false, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
		}
		return true, nil
	}
	return false, nil
}

func decodeJSON(r io.Reader, gzipped bool, v any) error {
	if gzipped {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return err
		}
		defer func() { _ = gz.Close() }() //nolint:errcheck // read-only stream
		r = gz
	}
	return json.NewDecoder(r).Decode(v)
}

// catalogEntryFromFields maps a flat record onto a CatalogEntry. Stock code and
// description columns are matched case-insensitively with or without an
// underscore; every other column becomes an attribute.
func catalogEntryFromFields(fields map[string]string) (CatalogEntry, bool) {
	var e CatalogEntry
	found := false
	for k, v := range fields {
		switch strings.ReplaceAll(strings.ToLower(k), "_", "") {
		case "stockcode":
			e.StockCode, found = v, true
		case "description":
			e.Description = v
		default:
			if e.Attributes == nil {
				e.Attributes = make(map[string]string)
			}
			e.Attributes[k] = v
		}
	}
	return e, found
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprint(x)
	}
}
