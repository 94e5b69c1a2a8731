// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package artifacts

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewInteractionMatrix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		users    []int64
		products []string
		rows     [][]Cell
		wantErr  bool
	}{
		{
			name:     "valid sparse rows",
			users:    []int64{1, 2},
			products: []string{"A", "B"},
			rows:     [][]Cell{{{Col: 0, Value: 1}}, {{Col: 0, Value: 2}, {Col: 1, Value: 1}}},
		},
		{
			name:     "row count mismatch",
			users:    []int64{1, 2},
			products: []string{"A"},
			rows:     [][]Cell{{}},
			wantErr:  true,
		},
		{
			name:     "duplicate user",
			users:    []int64{1, 1},
			products: []string{"A"},
			rows:     [][]Cell{{}, {}},
			wantErr:  true,
		},
		{
			name:     "duplicate product",
			users:    []int64{1},
			products: []string{"A", "A"},
			rows:     [][]Cell{{}},
			wantErr:  true,
		},
		{
			name:     "column out of range",
			users:    []int64{1},
			products: []string{"A"},
			rows:     [][]Cell{{{Col: 3, Value: 1}}},
			wantErr:  true,
		},
		{
			name:     "columns out of order",
			users:    []int64{1},
			products: []string{"A", "B"},
			rows:     [][]Cell{{{Col: 1, Value: 1}, {Col: 0, Value: 1}}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewInteractionMatrix(tt.users, tt.products, tt.rows)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("expected ErrMalformed, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDenseInteractionMatrix(t *testing.T) {
	t.Parallel()

	m, err := DenseInteractionMatrix(
		[]int64{10, 20},
		[]string{"A", "B", "C"},
		[][]float64{{0, 2, 0}, {1, 0, 3}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row, ok := m.UserRow(20)
	if !ok {
		t.Fatal("expected user 20 to exist")
	}
	want := []Cell{{Col: 0, Value: 1}, {Col: 2, Value: 3}}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("UserRow(20) = %v, want %v", row, want)
	}
	if m.HasUser(30) {
		t.Error("user 30 should not exist")
	}
	if got := m.ColumnTotals(); !reflect.DeepEqual(got, []float64{1, 2, 3}) {
		t.Errorf("ColumnTotals() = %v", got)
	}
	if got := m.Total(); got != 6 {
		t.Errorf("Total() = %v, want 6", got)
	}
	if got := m.Positive(); got != 3 {
		t.Errorf("Positive() = %d, want 3", got)
	}
	if got := m.PurchasedSet(10); len(got) != 1 {
		t.Errorf("PurchasedSet(10) = %v, want one column", got)
	}

	if _, err := DenseInteractionMatrix([]int64{1}, []string{"A", "B"}, [][]float64{{1}}); !errors.Is(err, ErrMalformed) {
		t.Errorf("short row: expected ErrMalformed, got %v", err)
	}
}

func TestNewSimilarityModel(t *testing.T) {
	t.Parallel()

	s, err := NewSimilarityModel([]int64{5, 7}, [][]float64{{1, 0.3}, {0.3, 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row, ok := s.Row(7)
	if !ok || row[0] != 0.3 {
		t.Errorf("Row(7) = %v, %v", row, ok)
	}
	if _, ok := s.Row(9); ok {
		t.Error("Row(9) should not exist")
	}

	if _, err := NewSimilarityModel([]int64{1, 2}, [][]float64{{1, 0}, {0}}); !errors.Is(err, ErrMalformed) {
		t.Errorf("non-square: expected ErrMalformed, got %v", err)
	}
	if _, err := NewSimilarityModel([]int64{1}, [][]float64{{1}, {1}}); !errors.Is(err, ErrMalformed) {
		t.Errorf("row count: expected ErrMalformed, got %v", err)
	}
}

func TestNewRuleTable(t *testing.T) {
	t.Parallel()

	valid := Rule{Antecedents: []string{"A"}, Consequents: []string{"B"}, Support: 0.1, Confidence: 0.5, Lift: 2}
	if _, err := NewRuleTable([]Rule{valid}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := []Rule{
		{Antecedents: nil, Consequents: []string{"B"}, Confidence: 0.5},
		{Antecedents: []string{"A"}, Consequents: []string{"B"}, Confidence: 1.5},
		{Antecedents: []string{"A"}, Consequents: []string{"B"}, Support: -0.1},
		{Antecedents: []string{"A"}, Consequents: []string{"B"}, Lift: -1},
	}
	for i, r := range bad {
		if _, err := NewRuleTable([]Rule{r}); !errors.Is(err, ErrMalformed) {
			t.Errorf("bad rule %d: expected ErrMalformed, got %v", i, err)
		}
	}
}

func TestRuleTableAntecedentItems(t *testing.T) {
	t.Parallel()

	table, err := NewRuleTable([]Rule{
		{Antecedents: []string{"C", "A"}, Consequents: []string{"X"}},
		{Antecedents: []string{"B", "A"}, Consequents: []string{"Y"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := table.AntecedentItems(); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("AntecedentItems() = %v", got)
	}
}

func TestProductCatalogFirstEntryWins(t *testing.T) {
	t.Parallel()

	c := NewProductCatalog([]CatalogEntry{
		{StockCode: "A", Description: "first"},
		{StockCode: "A", Description: "second"},
	})
	if got, _ := c.Description("A"); got != "first" {
		t.Errorf("Description(A) = %q, want first", got)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if _, ok := c.Description("Z"); ok {
		t.Error("Description(Z) should be absent")
	}
}

func TestBundleValidate(t *testing.T) {
	t.Parallel()

	m, _ := DenseInteractionMatrix([]int64{1, 2}, []string{"A"}, [][]float64{{1}, {1}})

	aligned, _ := NewSimilarityModel([]int64{2, 1}, [][]float64{{1, 0.5}, {0.5, 1}})
	if err := (&Bundle{Interactions: m, Similarity: aligned}).Validate(); err != nil {
		t.Errorf("reordered ids should validate, got %v", err)
	}

	foreign, _ := NewSimilarityModel([]int64{1, 3}, [][]float64{{1, 0}, {0, 1}})
	if err := (&Bundle{Interactions: m, Similarity: foreign}).Validate(); !errors.Is(err, ErrMalformed) {
		t.Errorf("unknown id: expected ErrMalformed, got %v", err)
	}

	smaller, _ := NewSimilarityModel([]int64{1}, [][]float64{{1}})
	if err := (&Bundle{Interactions: m, Similarity: smaller}).Validate(); !errors.Is(err, ErrMalformed) {
		t.Errorf("size mismatch: expected ErrMalformed, got %v", err)
	}

	if err := (&Bundle{Similarity: foreign}).Validate(); err != nil {
		t.Errorf("lone similarity model should validate, got %v", err)
	}
}

func TestBundleMissing(t *testing.T) {
	t.Parallel()

	b := &Bundle{Translations: TranslationMap{}}
	want := []Name{Interactions, Similarity, Rules, Catalog}
	if got := b.Missing(); !reflect.DeepEqual(got, want) {
		t.Errorf("Missing() = %v, want %v", got, want)
	}
	if !b.Has(Translations) {
		t.Error("empty translation map should count as present")
	}

	s := b.Summarize()
	if s.Users != 0 || len(s.Missing) != 4 {
		t.Errorf("Summarize() = %+v", s)
	}
}
