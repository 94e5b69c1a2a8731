// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package recommend_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
	"github.com/tomtom215/recsys-engine/internal/artifacts/artifactstest"
	"github.com/tomtom215/recsys-engine/internal/recommend"
)

func TestRecommendForCart(t *testing.T) {
	t.Parallel()

	r := recommend.NewRuleRecommender(artifactstest.Fixture())

	tests := []struct {
		name   string
		cart   []string
		topN   int
		want   []string
		scores []float64
	}{
		{
			name:   "confidence then lift",
			cart:   []string{"A"},
			topN:   3,
			want:   []string{"C", "B", "D"},
			scores: []float64{0.9, 0.5, 0.5},
		},
		{
			name:   "truncated to top_n",
			cart:   []string{"A"},
			topN:   1,
			want:   []string{"C"},
			scores: []float64{0.9},
		},
		{
			name:   "cart items are never recommended",
			cart:   []string{"A", "B"},
			topN:   5,
			want:   []string{"D", "C"},
			scores: []float64{0.9, 0.9},
		},
		{
			name:   "partial antecedent match",
			cart:   []string{"E"},
			topN:   5,
			want:   []string{"F", "B", "D"},
			scores: []float64{0.7, 0.5, 0.5},
		},
		{
			name: "no matching rules",
			cart: []string{"Z"},
			topN: 3,
			want: []string{},
		},
		{
			name: "empty cart",
			cart: nil,
			topN: 3,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			recs, err := r.RecommendForCart(context.Background(), tt.cart, tt.topN)
			if err != nil {
				t.Fatalf("RecommendForCart() error = %v", err)
			}
			if recs == nil {
				t.Fatal("result must be an empty list, not nil")
			}
			if got := productIDs(recs); !equalStrings(got, tt.want) {
				t.Fatalf("products = %v, want %v", got, tt.want)
			}
			for i, s := range tt.scores {
				if recs[i].Score != s {
					t.Errorf("recs[%d].Score = %v, want %v", i, recs[i].Score, s)
				}
				if recs[i].Rank != i+1 {
					t.Errorf("recs[%d].Rank = %d", i, recs[i].Rank)
				}
			}
		})
	}
}

func TestRecommendForCartHigherConfidenceFirst(t *testing.T) {
	t.Parallel()

	table, err := artifacts.NewRuleTable([]artifacts.Rule{
		{ID: 0, Antecedents: []string{"X"}, Consequents: []string{"LOW"}, Confidence: 0.5, Lift: 9},
		{ID: 1, Antecedents: []string{"Y"}, Consequents: []string{"HIGH"}, Confidence: 0.9, Lift: 1},
	})
	if err != nil {
		t.Fatalf("NewRuleTable() error = %v", err)
	}
	r := recommend.NewRuleRecommender(&artifacts.Bundle{Rules: table})

	recs, err := r.RecommendForCart(context.Background(), []string{"X", "Y"}, 2)
	if err != nil {
		t.Fatalf("RecommendForCart() error = %v", err)
	}
	if got := productIDs(recs); !equalStrings(got, []string{"HIGH", "LOW"}) {
		t.Errorf("products = %v, want [HIGH LOW]", got)
	}
}

func TestRecommendForCartNoDuplicates(t *testing.T) {
	t.Parallel()

	r := recommend.NewRuleRecommender(artifactstest.Fixture())
	carts := [][]string{{"A"}, {"B"}, {"E"}, {"A", "E"}, {"A", "B", "E"}}

	for _, cart := range carts {
		recs, err := r.RecommendForCart(context.Background(), cart, 10)
		if err != nil {
			t.Fatalf("cart %v: %v", cart, err)
		}
		inCart := map[string]bool{}
		for _, item := range cart {
			inCart[item] = true
		}
		seen := map[string]bool{}
		for _, rec := range recs {
			if inCart[rec.ProductID] {
				t.Errorf("cart %v: recommended cart item %s", cart, rec.ProductID)
			}
			if seen[rec.ProductID] {
				t.Errorf("cart %v: duplicate %s", cart, rec.ProductID)
			}
			seen[rec.ProductID] = true
		}
	}
}

func TestRecommendForCartErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	missing := recommend.NewRuleRecommender(artifactstest.Without(artifacts.Rules))
	if missing.Available() {
		t.Error("Available() = true without rules")
	}
	if _, err := missing.RecommendForCart(ctx, []string{"A"}, 3); !errors.Is(err, recommend.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	// An empty cart still reports the missing artifact.
	if _, err := missing.RecommendForCart(ctx, nil, 3); !errors.Is(err, recommend.ErrUnavailable) {
		t.Errorf("empty cart: expected ErrUnavailable, got %v", err)
	}

	r := recommend.NewRuleRecommender(artifactstest.Fixture())
	if _, err := r.RecommendForCart(ctx, []string{"A"}, -1); !errors.Is(err, recommend.ErrInvalidTopN) {
		t.Errorf("expected ErrInvalidTopN, got %v", err)
	}
}
