// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package artifacts

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrMissing marks an artifact that was not found at load time.
	// Consumers wrap it in their own unavailable errors.
	ErrMissing = errors.New("artifact missing")

	// ErrMalformed marks an artifact that exists but cannot be used.
	ErrMalformed = errors.New("malformed artifact")
)

// Name identifies one of the five artifacts in a bundle.
type Name string

const (
	Interactions Name = "user_item_matrix"
	Similarity   Name = "user_similarity"
	Rules        Name = "association_rules"
	Catalog      Name = "product_catalog"
	Translations Name = "product_translations"
)

// AllNames lists every artifact in load order. The interaction matrix comes
// first because the similarity model may borrow its user ordering.
var AllNames = []Name{Interactions, Similarity, Rules, Catalog, Translations}

// Cell is a single non-zero entry of an interaction row.
type Cell struct {
	Col   int
	Value float64
}

// InteractionMatrix holds per-user purchase quantities keyed by user id and
// product code. Rows are sparse and their cells are sorted by column.
type InteractionMatrix struct {
	Users    []int64
	Products []string
	Rows     [][]Cell

	userIndex    map[int64]int
	productIndex map[string]int
}

// NewInteractionMatrix validates the matrix shape and builds its indexes.
func NewInteractionMatrix(users []int64, products []string, rows [][]Cell) (*InteractionMatrix, error) {
	if len(rows) != len(users) {
		return nil, fmt.Errorf("%w: %s has %d rows for %d users", ErrMalformed, Interactions, len(rows), len(users))
	}

	m := &InteractionMatrix{
		Users:        users,
		Products:     products,
		Rows:         rows,
		userIndex:    make(map[int64]int, len(users)),
		productIndex: make(map[string]int, len(products)),
	}
	for i, id := range users {
		if _, dup := m.userIndex[id]; dup {
			return nil, fmt.Errorf("%w: %s has duplicate user %d", ErrMalformed, Interactions, id)
		}
		m.userIndex[id] = i
	}
	for i, code := range products {
		if _, dup := m.productIndex[code]; dup {
			return nil, fmt.Errorf("%w: %s has duplicate product %q", ErrMalformed, Interactions, code)
		}
		m.productIndex[code] = i
	}
	for r, row := range rows {
		prev := -1
		for _, c := range row {
			if c.Col <= prev || c.Col >= len(products) {
				return nil, fmt.Errorf("%w: %s row %d has out-of-order or out-of-range column %d",
					ErrMalformed, Interactions, r, c.Col)
			}
			prev = c.Col
		}
	}
	return m, nil
}

// DenseInteractionMatrix builds a matrix from dense rows, dropping zero cells.
func DenseInteractionMatrix(users []int64, products []string, dense [][]float64) (*InteractionMatrix, error) {
	rows := make([][]Cell, len(dense))
	for r, values := range dense {
		if len(values) != len(products) {
			return nil, fmt.Errorf("%w: %s row %d has %d values for %d products",
				ErrMalformed, Interactions, r, len(values), len(products))
		}
		for col, v := range values {
			if v != 0 {
				rows[r] = append(rows[r], Cell{Col: col, Value: v})
			}
		}
	}
	return NewInteractionMatrix(users, products, rows)
}

// NumUsers returns the number of rows.
func (m *InteractionMatrix) NumUsers() int { return len(m.Users) }

// NumProducts returns the number of columns.
func (m *InteractionMatrix) NumProducts() int { return len(m.Products) }

// HasUser reports whether id is a row key.
func (m *InteractionMatrix) HasUser(id int64) bool {
	_, ok := m.userIndex[id]
	return ok
}

// UserRow returns the sparse row for a user id.
func (m *InteractionMatrix) UserRow(id int64) ([]Cell, bool) {
	i, ok := m.userIndex[id]
	if !ok {
		return nil, false
	}
	return m.Rows[i], true
}

// PurchasedSet returns the column indexes with a positive value for a user.
func (m *InteractionMatrix) PurchasedSet(id int64) map[int]struct{} {
	row, _ := m.UserRow(id)
	set := make(map[int]struct{}, len(row))
	for _, c := range row {
		if c.Value > 0 {
			set[c.Col] = struct{}{}
		}
	}
	return set
}

// ColumnTotals returns the sum of every column, in column order.
func (m *InteractionMatrix) ColumnTotals() []float64 {
	totals := make([]float64, len(m.Products))
	for _, row := range m.Rows {
		for _, c := range row {
			totals[c.Col] += c.Value
		}
	}
	return totals
}

// Total returns the sum of all cells.
func (m *InteractionMatrix) Total() float64 {
	var sum float64
	for _, row := range m.Rows {
		for _, c := range row {
			sum += c.Value
		}
	}
	return sum
}

// Positive returns the number of cells with a positive value.
func (m *InteractionMatrix) Positive() int {
	n := 0
	for _, row := range m.Rows {
		for _, c := range row {
			if c.Value > 0 {
				n++
			}
		}
	}
	return n
}

// SimilarityModel binds a square user-user similarity matrix to its own
// ordered user ids, so rows are always looked up by id rather than position.
type SimilarityModel struct {
	Users  []int64
	Scores [][]float64

	userIndex map[int64]int
}

// NewSimilarityModel validates that the matrix is square over users.
func NewSimilarityModel(users []int64, scores [][]float64) (*SimilarityModel, error) {
	if len(scores) != len(users) {
		return nil, fmt.Errorf("%w: %s has %d rows for %d users", ErrMalformed, Similarity, len(scores), len(users))
	}
	s := &SimilarityModel{Users: users, Scores: scores, userIndex: make(map[int64]int, len(users))}
	for i, id := range users {
		if len(scores[i]) != len(users) {
			return nil, fmt.Errorf("%w: %s row %d has %d columns, want %d",
				ErrMalformed, Similarity, i, len(scores[i]), len(users))
		}
		if _, dup := s.userIndex[id]; dup {
			return nil, fmt.Errorf("%w: %s has duplicate user %d", ErrMalformed, Similarity, id)
		}
		s.userIndex[id] = i
	}
	return s, nil
}

// NumUsers returns the matrix dimension.
func (s *SimilarityModel) NumUsers() int { return len(s.Users) }

// Row returns the similarity scores of id against every user in s.Users.
func (s *SimilarityModel) Row(id int64) ([]float64, bool) {
	i, ok := s.userIndex[id]
	if !ok {
		return nil, false
	}
	return s.Scores[i], true
}

// Rule is a single association rule.
type Rule struct {
	ID          int
	Antecedents []string
	Consequents []string
	Support     float64
	Confidence  float64
	Lift        float64
}

// RuleTable is the ordered set of mined rules.
type RuleTable struct {
	Rules []Rule
}

// NewRuleTable validates rule metrics and item sets.
func NewRuleTable(rules []Rule) (*RuleTable, error) {
	for i, r := range rules {
		if len(r.Antecedents) == 0 || len(r.Consequents) == 0 {
			return nil, fmt.Errorf("%w: %s rule %d has an empty item set", ErrMalformed, Rules, i)
		}
		if r.Support < 0 || r.Support > 1 || r.Confidence < 0 || r.Confidence > 1 {
			return nil, fmt.Errorf("%w: %s rule %d has support/confidence outside [0,1]", ErrMalformed, Rules, i)
		}
		if r.Lift < 0 {
			return nil, fmt.Errorf("%w: %s rule %d has negative lift", ErrMalformed, Rules, i)
		}
	}
	return &RuleTable{Rules: rules}, nil
}

// Len returns the number of rules.
func (t *RuleTable) Len() int { return len(t.Rules) }

// AntecedentItems returns every distinct antecedent item, sorted.
func (t *RuleTable) AntecedentItems() []string {
	seen := make(map[string]struct{})
	for _, r := range t.Rules {
		for _, a := range r.Antecedents {
			seen[a] = struct{}{}
		}
	}
	items := make([]string, 0, len(seen))
	for a := range seen {
		items = append(items, a)
	}
	sort.Strings(items)
	return items
}

// CatalogEntry describes one product.
type CatalogEntry struct {
	StockCode   string
	Description string
	Attributes  map[string]string
}

// ProductCatalog maps product codes to descriptions. The first entry wins
// when a code appears more than once.
type ProductCatalog struct {
	Entries []CatalogEntry

	index map[string]int
}

// NewProductCatalog indexes entries by stock code.
func NewProductCatalog(entries []CatalogEntry) *ProductCatalog {
	c := &ProductCatalog{Entries: entries, index: make(map[string]int, len(entries))}
	for i, e := range entries {
		if _, seen := c.index[e.StockCode]; !seen {
			c.index[e.StockCode] = i
		}
	}
	return c
}

// Len returns the number of entries, duplicates included.
func (c *ProductCatalog) Len() int { return len(c.Entries) }

// Description returns the description of the first entry for code.
func (c *ProductCatalog) Description(code string) (string, bool) {
	i, ok := c.index[code]
	if !ok {
		return "", false
	}
	return c.Entries[i].Description, true
}

// TranslationMap maps English display names to localized names.
type TranslationMap map[string]string

// Bundle groups the loaded artifacts. A nil field means the artifact was not
// found. Nothing mutates a bundle after Validate returns.
type Bundle struct {
	Interactions *InteractionMatrix
	Similarity   *SimilarityModel
	Rules        *RuleTable
	Catalog      *ProductCatalog
	Translations TranslationMap
}

// Has reports whether the named artifact is present.
func (b *Bundle) Has(name Name) bool {
	switch name {
	case Interactions:
		return b.Interactions != nil
	case Similarity:
		return b.Similarity != nil
	case Rules:
		return b.Rules != nil
	case Catalog:
		return b.Catalog != nil
	case Translations:
		return b.Translations != nil
	default:
		return false
	}
}

// Missing returns the names of absent artifacts in load order.
func (b *Bundle) Missing() []Name {
	var missing []Name
	for _, n := range AllNames {
		if !b.Has(n) {
			missing = append(missing, n)
		}
	}
	return missing
}

// Validate checks cross-artifact invariants: the similarity model must cover
// exactly the users of the interaction matrix.
func (b *Bundle) Validate() error {
	if b.Interactions == nil || b.Similarity == nil {
		return nil
	}
	if b.Similarity.NumUsers() != b.Interactions.NumUsers() {
		return fmt.Errorf("%w: %s covers %d users, %s has %d",
			ErrMalformed, Similarity, b.Similarity.NumUsers(), Interactions, b.Interactions.NumUsers())
	}
	for _, id := range b.Similarity.Users {
		if !b.Interactions.HasUser(id) {
			return fmt.Errorf("%w: %s names user %d absent from %s", ErrMalformed, Similarity, id, Interactions)
		}
	}
	return nil
}

// Summary is a count-level description of a bundle.
type Summary struct {
	Users          int    `json:"users"`
	Products       int    `json:"products"`
	Interactions   int    `json:"interactions"`
	SimilarityDim  int    `json:"similarity_dim"`
	Rules          int    `json:"rules"`
	CatalogEntries int    `json:"catalog_entries"`
	Translations   int    `json:"translations"`
	Missing        []Name `json:"missing,omitempty"`
}

// Summarize returns artifact counts.
func (b *Bundle) Summarize() Summary {
	s := Summary{Missing: b.Missing(), Translations: len(b.Translations)}
	if b.Interactions != nil {
		s.Users = b.Interactions.NumUsers()
		s.Products = b.Interactions.NumProducts()
		s.Interactions = b.Interactions.Positive()
	}
	if b.Similarity != nil {
		s.SimilarityDim = b.Similarity.NumUsers()
	}
	if b.Rules != nil {
		s.Rules = b.Rules.Len()
	}
	if b.Catalog != nil {
		s.CatalogEntries = b.Catalog.Len()
	}
	return s
}
