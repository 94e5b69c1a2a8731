// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package dashboard

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
	"github.com/tomtom215/recsys-engine/internal/catalog"
	"github.com/tomtom215/recsys-engine/internal/metrics"
)

// Stats returns the overview KPIs. Absent artifacts contribute zeros.
func (s *Service) Stats() Stats {
	var st Stats
	if m := s.bundle.Interactions; m != nil {
		st.TotalUsers = m.NumUsers()
		st.TotalProducts = m.NumProducts()
		st.TotalTransactions = int64(m.Total())
	}
	if r := s.bundle.Rules; r != nil && r.Len() > 0 {
		st.TotalRules = r.Len()
		conf, lift, _ := ruleMeans(r)
		st.AvgConfidence = round(conf, 3)
		st.AvgLift = round(lift, 2)
	}
	return st
}

// TopProducts returns the limit best-selling products by total quantity.
func (s *Service) TopProducts(limit int, lang string) ([]TopProduct, error) {
	m := s.bundle.Interactions
	if m == nil {
		return nil, unavailable(artifacts.Interactions)
	}

	totals := m.ColumnTotals()
	cols := make([]int, len(totals))
	for i := range cols {
		cols[i] = i
	}
	sort.SliceStable(cols, func(i, j int) bool {
		return totals[cols[i]] > totals[cols[j]]
	})
	if len(cols) > limit {
		cols = cols[:limit]
	}

	out := make([]TopProduct, len(cols))
	for i, c := range cols {
		code := m.Products[c]
		out[i] = TopProduct{
			StockCode:     code,
			ProductName:   s.names.DisplayName(code, lang),
			TotalQuantity: int64(totals[c]),
		}
	}
	return out, nil
}

// ProductQuery selects a page of the catalog.
type ProductQuery struct {
	Page     int
	PageSize int
	Search   string
	Lang     string
}

// Products returns a page of catalog rows. Search matches any column value,
// ignoring case. Descriptions are translated before matching.
//
//nolint:gocritic // hugeParam: query is a small value type
func (s *Service) Products(q ProductQuery) (*Page[ProductItem], error) {
	c := s.bundle.Catalog
	if c == nil {
		return nil, unavailable(artifacts.Catalog)
	}

	rows := make([]ProductItem, 0, c.Len())
	for i := range c.Entries {
		item := s.productItem(&c.Entries[i], q.Lang)
		if q.Search != "" && !rowMatches(item, q.Search) {
			continue
		}
		rows = append(rows, item)
	}

	return &Page[ProductItem]{
		Items:    paginate(rows, q.Page, q.PageSize),
		Total:    len(rows),
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

func (s *Service) productItem(e *artifacts.CatalogEntry, lang string) ProductItem {
	item := make(ProductItem, len(e.Attributes)+2)
	for k, v := range e.Attributes {
		item[k] = v
	}
	item["StockCode"] = e.StockCode
	if e.Description == "" {
		item["Description"] = nil
	} else {
		item["Description"] = s.names.Translate(e.Description, lang)
	}
	return item
}

func rowMatches(item ProductItem, search string) bool {
	for _, v := range item {
		if str, ok := v.(string); ok && catalog.ContainsFold(str, search) {
			return true
		}
	}
	return false
}

// RuleQuery selects a page of association rules.
type RuleQuery struct {
	Page          int
	PageSize      int
	MinConfidence float64
	Lang          string
}

// Rules returns a page of rules with confidence at least MinConfidence,
// highest confidence first.
//
//nolint:gocritic // hugeParam: query is a small value type
func (s *Service) Rules(q RuleQuery) (*Page[RuleItem], error) {
	table := s.bundle.Rules
	if table == nil {
		return nil, unavailable(artifacts.Rules)
	}

	selected := make([]*artifacts.Rule, 0, table.Len())
	for i := range table.Rules {
		r := &table.Rules[i]
		if q.MinConfidence > 0 && r.Confidence < q.MinConfidence {
			continue
		}
		selected = append(selected, r)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Confidence > selected[j].Confidence
	})

	page := paginate(selected, q.Page, q.PageSize)
	items := make([]RuleItem, len(page))
	for i, r := range page {
		items[i] = RuleItem{
			ID:          r.ID,
			Antecedents: s.names.DisplayNames(r.Antecedents, q.Lang),
			Consequents: s.names.DisplayNames(r.Consequents, q.Lang),
			Support:     round(r.Support, 4),
			Confidence:  round(r.Confidence, 4),
			Lift:        round(r.Lift, 2),
		}
	}

	return &Page[RuleItem]{
		Items:    items,
		Total:    len(selected),
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

// UserProfile returns a user's purchase totals and top products by quantity.
func (s *Service) UserProfile(userID int64, lang string) (*UserProfile, error) {
	m := s.bundle.Interactions
	if m == nil {
		return nil, unavailable(artifacts.Interactions)
	}
	row, ok := m.UserRow(userID)
	if !ok {
		return nil, ErrUserNotFound
	}

	purchased := make([]artifacts.Cell, 0, len(row))
	var total float64
	for _, c := range row {
		if c.Value > 0 {
			purchased = append(purchased, c)
			total += c.Value
		}
	}
	sort.SliceStable(purchased, func(i, j int) bool {
		return purchased[i].Value > purchased[j].Value
	})

	top := purchased
	if len(top) > profileProducts {
		top = top[:profileProducts]
	}
	products := make([]PurchasedProduct, len(top))
	for i, c := range top {
		code := m.Products[c.Col]
		products[i] = PurchasedProduct{
			StockCode:   code,
			ProductName: s.names.DisplayName(code, lang),
			Quantity:    int64(c.Value),
		}
	}

	return &UserProfile{
		UserID:         userID,
		TotalPurchases: int64(total),
		UniqueProducts: len(purchased),
		Products:       products,
	}, nil
}

// Users returns a page of user ids in matrix order.
func (s *Service) Users(page, pageSize int) (*UserPage, error) {
	m := s.bundle.Interactions
	if m == nil {
		return nil, unavailable(artifacts.Interactions)
	}
	return &UserPage{
		Users:    paginate(m.Users, page, pageSize),
		Total:    m.NumUsers(),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ModelInfo summarizes both models. It never fails.
func (s *Service) ModelInfo() ModelInfo {
	info := ModelInfo{
		CollaborativeFiltering: CollaborativeInfo{Status: StatusNotLoaded},
		AssociationRules:       AssociationInfo{Status: StatusNotLoaded},
	}

	if m := s.bundle.Interactions; m != nil && s.bundle.Similarity != nil {
		density := 0.0
		if cells := m.NumUsers() * m.NumProducts(); cells > 0 {
			density = float64(m.Positive()) / float64(cells) * 100
		}
		info.CollaborativeFiltering = CollaborativeInfo{
			Status: StatusActive,
			CollaborativeDetails: &CollaborativeDetails{
				Type:             collaborativeType,
				SimilarityMethod: similarityMethod,
				UsersInModel:     m.NumUsers(),
				ProductsInModel:  m.NumProducts(),
				MatrixDensity:    round(density, 2),
			},
		}
	}

	if r := s.bundle.Rules; r != nil {
		conf, lift, support := ruleMeans(r)
		maxAnte, maxCons := 0, 0
		for i := range r.Rules {
			maxAnte = max(maxAnte, len(r.Rules[i].Antecedents))
			maxCons = max(maxCons, len(r.Rules[i].Consequents))
		}
		info.AssociationRules = AssociationInfo{
			Status: StatusActive,
			AssociationDetails: &AssociationDetails{
				Type:          associationType,
				TotalRules:    r.Len(),
				AvgConfidence: round(conf, 3),
				AvgLift:       round(lift, 2),
				AvgSupport:    round(support, 4),
				MaxRuleLength: maxAnte + maxCons,
			},
		}
	}
	return info
}

// Distribution returns each recommender's share of served requests in
// percent. Before anything has been served it returns the configured baseline.
func (s *Service) Distribution() Distribution {
	cf := s.config.ServedCount(metrics.RecommenderCollaborative)
	ar := s.config.ServedCount(metrics.RecommenderAssociation)
	total := cf + ar
	if total <= 0 {
		return Distribution{
			CollaborativeFiltering: s.config.BaselineCollaborative,
			AssociationRules:       s.config.BaselineAssociation,
		}
	}
	return Distribution{
		CollaborativeFiltering: round(cf/total*100, 2),
		AssociationRules:       round(ar/total*100, 2),
	}
}

// ProductSearch returns up to limit distinct catalog products whose name, or
// its translation when lang selects the translation language, contains q.
func (s *Service) ProductSearch(q string, limit int, lang string) ([]ProductHit, error) {
	c := s.bundle.Catalog
	if c == nil {
		return nil, unavailable(artifacts.Catalog)
	}

	translate := s.names.Translates(lang)
	hits := make([]ProductHit, 0, limit)
	seen := make(map[string]struct{})
	for i := range c.Entries {
		if len(hits) == limit {
			break
		}
		e := &c.Entries[i]
		name := e.Description
		if name == "" {
			name = e.StockCode
		}

		display := s.names.Translate(name, lang)
		if !catalog.ContainsFold(name, q) && !(translate && catalog.ContainsFold(display, q)) {
			continue
		}
		key := e.StockCode + "_" + name
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		hits = append(hits, ProductHit{StockCode: e.StockCode, ProductName: display})
	}
	return hits, nil
}

// UserSearch returns up to limit users whose decimal id contains q. An empty
// q returns the first limit users.
func (s *Service) UserSearch(q string, limit int) ([]UserHit, error) {
	m := s.bundle.Interactions
	if m == nil {
		return nil, unavailable(artifacts.Interactions)
	}

	hits := make([]UserHit, 0, min(limit, m.NumUsers()))
	for _, u := range m.Users {
		if len(hits) == limit {
			break
		}
		if q != "" && !strings.Contains(strconv.FormatInt(u, 10), q) {
			continue
		}
		hits = append(hits, UserHit{UserID: u})
	}
	return hits, nil
}

// CartItems returns every distinct antecedent item, sorted by stock code.
func (s *Service) CartItems(lang string) ([]CartItem, error) {
	r := s.bundle.Rules
	if r == nil {
		return nil, unavailable(artifacts.Rules)
	}

	codes := r.AntecedentItems()
	items := make([]CartItem, len(codes))
	for i, code := range codes {
		items[i] = CartItem{StockCode: code, ProductName: s.names.DisplayName(code, lang)}
	}
	return items, nil
}

// ruleMeans returns the mean confidence, lift, and support of a rule table.
func ruleMeans(t *artifacts.RuleTable) (conf, lift, support float64) {
	n := float64(t.Len())
	if n == 0 {
		return 0, 0, 0
	}
	for i := range t.Rules {
		conf += t.Rules[i].Confidence
		lift += t.Rules[i].Lift
		support += t.Rules[i].Support
	}
	return conf / n, lift / n, support / n
}
