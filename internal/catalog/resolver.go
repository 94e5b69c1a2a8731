// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
)

// DefaultLanguage is the language product translations are written in.
const DefaultLanguage = "es"

// Resolver turns stock codes into display names. It is safe for concurrent use.
type Resolver struct {
	catalog      *artifacts.ProductCatalog
	translations artifacts.TranslationMap
	target       language.Base
}

// NewResolver binds a resolver to the catalog and translations of b. Either
// may be absent: names then fall back to the stock code, and translation
// becomes a no-op. target is a BCP-47 tag such as "es" or "es-MX".
func NewResolver(b *artifacts.Bundle, target string) (*Resolver, error) {
	if target == "" {
		target = DefaultLanguage
	}
	tag, err := language.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("parse translation language %q: %w", target, err)
	}
	base, _ := tag.Base()

	r := &Resolver{target: base}
	if b != nil {
		r.catalog = b.Catalog
		r.translations = b.Translations
	}
	return r, nil
}

// Language returns the translation target as an ISO 639 code.
func (r *Resolver) Language() string {
	return r.target.String()
}

// Translates reports whether lang selects the translation target. Only the
// base language is compared, so "es-MX" matches "es". Unparseable tags never
// match.
func (r *Resolver) Translates(lang string) bool {
	if lang == "" {
		return false
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	base, conf := tag.Base()
	return conf != language.No && base == r.target
}

// Name returns the catalog description for code, or code itself when the
// product is not in the catalog.
func (r *Resolver) Name(code string) string {
	if r.catalog == nil {
		return code
	}
	if desc, ok := r.catalog.Description(code); ok && desc != "" {
		return desc
	}
	return code
}

// Translate localizes name for lang. The exact name is looked up first, then
// its upper-cased form. A miss returns name unchanged.
func (r *Resolver) Translate(name, lang string) string {
	if len(r.translations) == 0 || !r.Translates(lang) {
		return name
	}
	if t, ok := r.translations[name]; ok {
		return t
	}
	if t, ok := r.translations[upper(name)]; ok {
		return t
	}
	return name
}

// DisplayName resolves code through the catalog and then translates it.
func (r *Resolver) DisplayName(code, lang string) string {
	return r.Translate(r.Name(code), lang)
}

// TranslateAll translates every name in order.
func (r *Resolver) TranslateAll(names []string, lang string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = r.Translate(n, lang)
	}
	return out
}

// DisplayNames resolves every code in order.
func (r *Resolver) DisplayNames(codes []string, lang string) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = r.DisplayName(c, lang)
	}
	return out
}

// Localized returns the translation of name, if one exists, regardless of the
// requested language. Search uses it to match localized queries.
func (r *Resolver) Localized(name string) (string, bool) {
	if len(r.translations) == 0 {
		return "", false
	}
	if t, ok := r.translations[name]; ok {
		return t, true
	}
	t, ok := r.translations[upper(name)]
	return t, ok
}

// ContainsFold reports whether s contains substr, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(fold(s), fold(substr))
}

// upper maps s to upper case. A Caser holds state, so one is built per call.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func fold(s string) string {
	return cases.Fold().String(s)
}
