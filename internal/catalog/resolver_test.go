// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package catalog_test

import (
	"testing"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
	"github.com/tomtom215/recsys-engine/internal/artifacts/artifactstest"
	"github.com/tomtom215/recsys-engine/internal/catalog"
)

func newResolver(t *testing.T, b *artifacts.Bundle) *catalog.Resolver {
	t.Helper()
	r, err := catalog.NewResolver(b, catalog.DefaultLanguage)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	return r
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	r := newResolver(t, &artifacts.Bundle{Translations: artifacts.TranslationMap{"MUG": "Taza"}})

	tests := []struct {
		name string
		in   string
		lang string
		want string
	}{
		{"spanish translates", "MUG", "es", "Taza"},
		{"english unchanged", "MUG", "en", "MUG"},
		{"untranslated product unchanged", "TEAPOT", "es", "TEAPOT"},
		{"regional tag uses base language", "MUG", "es-MX", "Taza"},
		{"upper-case fallback", "mug", "es", "Taza"},
		{"empty language", "MUG", "", "MUG"},
		{"garbage language", "MUG", "not a tag!", "MUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := r.Translate(tt.in, tt.lang); got != tt.want {
				t.Errorf("Translate(%q, %q) = %q, want %q", tt.in, tt.lang, got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	r := newResolver(t, artifactstest.Fixture())

	tests := []struct {
		code string
		lang string
		want string
	}{
		{"B", "es", "Taza"},
		{"B", "en", "MUG"},
		{"A", "es", "Portavelas corazón blanco"},
		// catalog has "Party Bunting", translations are keyed upper case
		{"C", "es", "Banderines de fiesta"},
		{"C", "en", "Party Bunting"},
		// not in the catalog
		{"D", "es", "D"},
		{"E", "es", "JUMBO BAG RED RETROSPOT"},
	}

	for _, tt := range tests {
		if got := r.DisplayName(tt.code, tt.lang); got != tt.want {
			t.Errorf("DisplayName(%q, %q) = %q, want %q", tt.code, tt.lang, got, tt.want)
		}
	}

	if got := r.DisplayNames([]string{"B", "D"}, "es"); got[0] != "Taza" || got[1] != "D" {
		t.Errorf("DisplayNames() = %v", got)
	}
	if got := r.TranslateAll([]string{"MUG", "X"}, "es"); got[0] != "Taza" || got[1] != "X" {
		t.Errorf("TranslateAll() = %v", got)
	}
}

func TestResolverWithoutArtifacts(t *testing.T) {
	t.Parallel()

	r := newResolver(t, nil)
	if got := r.DisplayName("85123A", "es"); got != "85123A" {
		t.Errorf("DisplayName() = %q, want raw code", got)
	}
	if _, ok := r.Localized("MUG"); ok {
		t.Error("Localized() found a translation without a map")
	}
}

func TestNewResolverLanguage(t *testing.T) {
	t.Parallel()

	r, err := catalog.NewResolver(nil, "")
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	if r.Language() != "es" {
		t.Errorf("Language() = %q, want es", r.Language())
	}

	fr, err := catalog.NewResolver(nil, "fr-CA")
	if err != nil {
		t.Fatalf("NewResolver(fr-CA) error = %v", err)
	}
	if !fr.Translates("fr") || fr.Translates("es") {
		t.Error("fr-CA resolver should translate fr only")
	}

	if _, err := catalog.NewResolver(nil, "!!"); err == nil {
		t.Error("expected error for invalid tag")
	}
}

func TestContainsFold(t *testing.T) {
	t.Parallel()

	if !catalog.ContainsFold("WHITE HANGING HEART", "heart") {
		t.Error("case-insensitive match failed")
	}
	if catalog.ContainsFold("MUG", "cup") {
		t.Error("unexpected match")
	}
	if !catalog.ContainsFold("Taza", "") {
		t.Error("empty query should match")
	}
}
