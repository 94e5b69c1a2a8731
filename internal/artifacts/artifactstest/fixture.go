// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

// Package artifactstest provides small in-memory bundles for tests.
package artifactstest

import (
	"github.com/tomtom215/recsys-engine/internal/artifacts"
)

// Fixture returns a four-user bundle with every artifact present.
//
// Purchases (quantity):
//
//	user 1: A=2
//	user 2: A=1 B=3
//	user 3: C=5
//	user 4: B=1 D=4
//
// User 1's neighbors by similarity are 2 (0.9), 4 (0.5), 3 (0.1), so its
// recommendations are B (count 2), D (1), C (1).
//
// For a cart of [A] the matching rules rank C (0.9) ahead of B and D (0.5).
func Fixture() *artifacts.Bundle {
	interactions, err := artifacts.DenseInteractionMatrix(
		[]int64{1, 2, 3, 4},
		[]string{"A", "B", "C", "D"},
		[][]float64{
			{2, 0, 0, 0},
			{1, 3, 0, 0},
			{0, 0, 5, 0},
			{0, 1, 0, 4},
		},
	)
	must(err)

	similarity, err := artifacts.NewSimilarityModel(
		[]int64{1, 2, 3, 4},
		[][]float64{
			{1.0, 0.9, 0.1, 0.5},
			{0.9, 1.0, 0.2, 0.3},
			{0.1, 0.2, 1.0, 0.4},
			{0.5, 0.3, 0.4, 1.0},
		},
	)
	must(err)

	rules, err := artifacts.NewRuleTable([]artifacts.Rule{
		{ID: 0, Antecedents: []string{"A"}, Consequents: []string{"B"}, Support: 0.1, Confidence: 0.5, Lift: 1.2},
		{ID: 1, Antecedents: []string{"A"}, Consequents: []string{"C"}, Support: 0.05, Confidence: 0.9, Lift: 2.0},
		{ID: 2, Antecedents: []string{"B"}, Consequents: []string{"D"}, Support: 0.08, Confidence: 0.9, Lift: 3.0},
		{ID: 3, Antecedents: []string{"E"}, Consequents: []string{"F"}, Support: 0.02, Confidence: 0.7, Lift: 1.1},
		{ID: 4, Antecedents: []string{"A", "E"}, Consequents: []string{"B", "D"}, Support: 0.03, Confidence: 0.5, Lift: 1.5},
	})
	must(err)

	catalog := artifacts.NewProductCatalog([]artifacts.CatalogEntry{
		{StockCode: "A", Description: "WHITE HANGING HEART T-LIGHT HOLDER", Attributes: map[string]string{"UnitPrice": "2.55"}},
		{StockCode: "B", Description: "MUG"},
		{StockCode: "C", Description: "Party Bunting"},
		{StockCode: "A", Description: "DUPLICATE HEART HOLDER"},
		{StockCode: "E", Description: "JUMBO BAG RED RETROSPOT"},
	})

	return &artifacts.Bundle{
		Interactions: interactions,
		Similarity:   similarity,
		Rules:        rules,
		Catalog:      catalog,
		Translations: artifacts.TranslationMap{
			"MUG":                                "Taza",
			"WHITE HANGING HEART T-LIGHT HOLDER": "Portavelas corazón blanco",
			"PARTY BUNTING":                      "Banderines de fiesta",
		},
	}
}

// Without returns Fixture with the named artifacts removed.
func Without(names ...artifacts.Name) *artifacts.Bundle {
	b := Fixture()
	for _, n := range names {
		switch n {
		case artifacts.Interactions:
			b.Interactions = nil
		case artifacts.Similarity:
			b.Similarity = nil
		case artifacts.Rules:
			b.Rules = nil
		case artifacts.Catalog:
			b.Catalog = nil
		case artifacts.Translations:
			b.Translations = nil
		}
	}
	return b
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
