// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package dashboard

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
	"github.com/tomtom215/recsys-engine/internal/artifacts/artifactstest"
	"github.com/tomtom215/recsys-engine/internal/catalog"
	"github.com/tomtom215/recsys-engine/internal/metrics"
)

func newTestService(t *testing.T, b *artifacts.Bundle) *Service {
	t.Helper()
	names, err := catalog.NewResolver(b, "es")
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	cfg := DefaultConfig()
	cfg.ServedCount = func(string) float64 { return 0 }
	return NewService(b, names, cfg)
}

func TestStats(t *testing.T) {
	t.Parallel()

	got := newTestService(t, artifactstest.Fixture()).Stats()
	want := Stats{
		TotalUsers:        4,
		TotalProducts:     4,
		TotalTransactions: 16,
		TotalRules:        5,
		AvgConfidence:     0.7,
		AvgLift:           1.76,
	}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}

	if empty := newTestService(t, nil).Stats(); empty != (Stats{}) {
		t.Errorf("Stats() without artifacts = %+v, want zeros", empty)
	}
}

func TestTopProducts(t *testing.T) {
	t.Parallel()

	s := newTestService(t, artifactstest.Fixture())

	got, err := s.TopProducts(3, "en")
	if err != nil {
		t.Fatalf("TopProducts() error = %v", err)
	}
	want := []TopProduct{
		{StockCode: "C", ProductName: "Party Bunting", TotalQuantity: 5},
		{StockCode: "B", ProductName: "MUG", TotalQuantity: 4},
		{StockCode: "D", ProductName: "D", TotalQuantity: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopProducts() = %+v, want %+v", got, want)
	}

	es, _ := s.TopProducts(1, "es")
	if es[0].ProductName != "Banderines de fiesta" {
		t.Errorf("translated name = %q", es[0].ProductName)
	}

	if _, err := newTestService(t, artifactstest.Without(artifacts.Interactions)).TopProducts(10, "en"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestProducts(t *testing.T) {
	t.Parallel()

	s := newTestService(t, artifactstest.Fixture())

	tests := []struct {
		name      string
		query     ProductQuery
		wantTotal int
		wantCodes []string
	}{
		{"first page", ProductQuery{Page: 1, PageSize: 2}, 5, []string{"A", "B"}},
		{"last page", ProductQuery{Page: 3, PageSize: 2}, 5, []string{"E"}},
		{"past the end", ProductQuery{Page: 9, PageSize: 2}, 5, []string{}},
		{"search description", ProductQuery{Page: 1, PageSize: 20, Search: "heart"}, 2, []string{"A", "A"}},
		{"search attribute", ProductQuery{Page: 1, PageSize: 20, Search: "2.55"}, 1, []string{"A"}},
		{"search translated", ProductQuery{Page: 1, PageSize: 20, Search: "taza", Lang: "es"}, 1, []string{"B"}},
		{"translation ignored in english", ProductQuery{Page: 1, PageSize: 20, Search: "taza", Lang: "en"}, 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			page, err := s.Products(tt.query)
			if err != nil {
				t.Fatalf("Products() error = %v", err)
			}
			if page.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", page.Total, tt.wantTotal)
			}
			codes := make([]string, len(page.Items))
			for i, item := range page.Items {
				codes[i], _ = item["StockCode"].(string)
			}
			if !reflect.DeepEqual(codes, tt.wantCodes) {
				t.Errorf("codes = %v, want %v", codes, tt.wantCodes)
			}
			if page.Page != tt.query.Page || page.PageSize != tt.query.PageSize {
				t.Errorf("page echo = %d/%d", page.Page, page.PageSize)
			}
		})
	}

	page, _ := s.Products(ProductQuery{Page: 1, PageSize: 1})
	if page.Items[0]["UnitPrice"] != "2.55" {
		t.Errorf("catalog columns not carried: %v", page.Items[0])
	}

	if _, err := newTestService(t, artifactstest.Without(artifacts.Catalog)).Products(ProductQuery{Page: 1, PageSize: 10}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	s := newTestService(t, artifactstest.Fixture())

	page, err := s.Rules(RuleQuery{Page: 1, PageSize: 10, Lang: "en"})
	if err != nil {
		t.Fatalf("Rules() error = %v", err)
	}
	ids := make([]int, len(page.Items))
	for i, r := range page.Items {
		ids[i] = r.ID
	}
	if !reflect.DeepEqual(ids, []int{1, 2, 3, 0, 4}) {
		t.Errorf("rule order = %v, want [1 2 3 0 4]", ids)
	}

	filtered, _ := s.Rules(RuleQuery{Page: 1, PageSize: 10, MinConfidence: 0.8, Lang: "es"})
	if filtered.Total != 2 {
		t.Errorf("Total with min_confidence 0.8 = %d, want 2", filtered.Total)
	}
	first := filtered.Items[0]
	if first.Antecedents[0] != "Portavelas corazón blanco" || first.Consequents[0] != "Banderines de fiesta" {
		t.Errorf("rule names not resolved: %+v", first)
	}

	second, _ := s.Rules(RuleQuery{Page: 2, PageSize: 4})
	if len(second.Items) != 1 || second.Items[0].ID != 4 || second.Total != 5 {
		t.Errorf("page 2 = %+v", second)
	}

	if _, err := newTestService(t, artifactstest.Without(artifacts.Rules)).Rules(RuleQuery{Page: 1, PageSize: 10}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestRulesRounding(t *testing.T) {
	t.Parallel()

	table, err := artifacts.NewRuleTable([]artifacts.Rule{{
		Antecedents: []string{"X"},
		Consequents: []string{"Y"},
		Support:     0.012345,
		Confidence:  0.666666,
		Lift:        2.3456,
	}})
	if err != nil {
		t.Fatalf("NewRuleTable() error = %v", err)
	}
	page, _ := newTestService(t, &artifacts.Bundle{Rules: table}).Rules(RuleQuery{Page: 1, PageSize: 1})
	got := page.Items[0]
	if got.Support != 0.0123 || got.Confidence != 0.6667 || got.Lift != 2.35 {
		t.Errorf("rounded rule = %+v", got)
	}
}

func TestUserProfile(t *testing.T) {
	t.Parallel()

	s := newTestService(t, artifactstest.Fixture())

	got, err := s.UserProfile(2, "es")
	if err != nil {
		t.Fatalf("UserProfile() error = %v", err)
	}
	want := &UserProfile{
		UserID:         2,
		TotalPurchases: 4,
		UniqueProducts: 2,
		Products: []PurchasedProduct{
			{StockCode: "B", ProductName: "Taza", Quantity: 3},
			{StockCode: "A", ProductName: "Portavelas corazón blanco", Quantity: 1},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UserProfile() = %+v, want %+v", got, want)
	}

	if _, err := s.UserProfile(99, "en"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserProfileLimitsProducts(t *testing.T) {
	t.Parallel()

	products := make([]string, 30)
	row := make([]float64, 30)
	for i := range products {
		products[i] = "P" + strings.Repeat("x", i)
		row[i] = float64(i + 1)
	}
	m, err := artifacts.DenseInteractionMatrix([]int64{7}, products, [][]float64{row})
	if err != nil {
		t.Fatalf("DenseInteractionMatrix() error = %v", err)
	}

	p, err := newTestService(t, &artifacts.Bundle{Interactions: m}).UserProfile(7, "en")
	if err != nil {
		t.Fatalf("UserProfile() error = %v", err)
	}
	if len(p.Products) != 20 || p.UniqueProducts != 30 || p.TotalPurchases != 465 {
		t.Errorf("profile = %d products, %d unique, %d total", len(p.Products), p.UniqueProducts, p.TotalPurchases)
	}
	if p.Products[0].Quantity != 30 {
		t.Errorf("first product quantity = %d, want 30", p.Products[0].Quantity)
	}
}

func TestUsers(t *testing.T) {
	t.Parallel()

	s := newTestService(t, artifactstest.Fixture())
	page, err := s.Users(2, 3)
	if err != nil {
		t.Fatalf("Users() error = %v", err)
	}
	if !reflect.DeepEqual(page.Users, []int64{4}) || page.Total != 4 {
		t.Errorf("Users(2, 3) = %+v", page)
	}
}

func TestModelInfo(t *testing.T) {
	t.Parallel()

	info := newTestService(t, artifactstest.Fixture()).ModelInfo()

	cf := info.CollaborativeFiltering
	if cf.Status != StatusActive || cf.CollaborativeDetails == nil {
		t.Fatalf("collaborative filtering = %+v", cf)
	}
	if cf.UsersInModel != 4 || cf.ProductsInModel != 4 || cf.MatrixDensity != 37.5 {
		t.Errorf("collaborative details = %+v", *cf.CollaborativeDetails)
	}
	if cf.Type != "User-Based Collaborative Filtering" || cf.SimilarityMethod != "Cosine" {
		t.Errorf("collaborative type = %q / %q", cf.Type, cf.SimilarityMethod)
	}

	ar := info.AssociationRules
	if ar.Status != StatusActive || ar.AssociationDetails == nil {
		t.Fatalf("association rules = %+v", ar)
	}
	want := AssociationDetails{
		Type:          "Association Rules (Apriori)",
		TotalRules:    5,
		AvgConfidence: 0.7,
		AvgLift:       1.76,
		AvgSupport:    0.056,
		MaxRuleLength: 4,
	}
	if *ar.AssociationDetails != want {
		t.Errorf("association details = %+v, want %+v", *ar.AssociationDetails, want)
	}
}

func TestModelInfoNotLoadedJSON(t *testing.T) {
	t.Parallel()

	info := newTestService(t, artifactstest.Without(artifacts.Similarity, artifacts.Rules)).ModelInfo()
	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"collaborative_filtering":{"status":"not_loaded"},"association_rules":{"status":"not_loaded"}}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestDistribution(t *testing.T) {
	t.Parallel()

	names, _ := catalog.NewResolver(nil, "es")

	baseline := NewService(nil, names, Config{
		BaselineCollaborative: 62,
		BaselineAssociation:   38,
		ServedCount:           func(string) float64 { return 0 },
	})
	if got := baseline.Distribution(); got != (Distribution{CollaborativeFiltering: 62, AssociationRules: 38}) {
		t.Errorf("baseline Distribution() = %+v", got)
	}

	served := map[string]float64{
		metrics.RecommenderCollaborative: 3,
		metrics.RecommenderAssociation:   1,
	}
	live := NewService(nil, names, Config{
		BaselineCollaborative: 62,
		BaselineAssociation:   38,
		ServedCount:           func(r string) float64 { return served[r] },
	})
	if got := live.Distribution(); got != (Distribution{CollaborativeFiltering: 75, AssociationRules: 25}) {
		t.Errorf("live Distribution() = %+v", got)
	}
}

func TestProductSearch(t *testing.T) {
	t.Parallel()

	s := newTestService(t, artifactstest.Fixture())

	tests := []struct {
		name  string
		q     string
		limit int
		lang  string
		want  []ProductHit
	}{
		{
			name: "english name", q: "heart", limit: 10, lang: "en",
			want: []ProductHit{
				{StockCode: "A", ProductName: "WHITE HANGING HEART T-LIGHT HOLDER"},
				{StockCode: "A", ProductName: "DUPLICATE HEART HOLDER"},
			},
		},
		{
			name: "limit", q: "heart", limit: 1, lang: "en",
			want: []ProductHit{{StockCode: "A", ProductName: "WHITE HANGING HEART T-LIGHT HOLDER"}},
		},
		{
			name: "translated name", q: "portavelas", limit: 10, lang: "es",
			want: []ProductHit{{StockCode: "A", ProductName: "Portavelas corazón blanco"}},
		},
		{
			name: "translated results for english query", q: "mug", limit: 10, lang: "es",
			want: []ProductHit{{StockCode: "B", ProductName: "Taza"}},
		},
		{
			name: "translation not searched in english", q: "taza", limit: 10, lang: "en",
			want: []ProductHit{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := s.ProductSearch(tt.q, tt.limit, tt.lang)
			if err != nil {
				t.Fatalf("ProductSearch() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ProductSearch() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductSearchDeduplicates(t *testing.T) {
	t.Parallel()

	b := &artifacts.Bundle{Catalog: artifacts.NewProductCatalog([]artifacts.CatalogEntry{
		{StockCode: "22423", Description: "REGENCY CAKESTAND 3 TIER"},
		{StockCode: "22423", Description: "REGENCY CAKESTAND 3 TIER"},
		{StockCode: "22424", Description: "REGENCY CAKESTAND 3 TIER"},
	})}
	got, err := newTestService(t, b).ProductSearch("cakestand", 10, "en")
	if err != nil {
		t.Fatalf("ProductSearch() error = %v", err)
	}
	if len(got) != 2 || got[0].StockCode != "22423" || got[1].StockCode != "22424" {
		t.Errorf("ProductSearch() = %+v", got)
	}
}

func TestUserSearch(t *testing.T) {
	t.Parallel()

	m, err := artifacts.DenseInteractionMatrix(
		[]int64{12346, 12347, 13001, 14567},
		[]string{"A"},
		[][]float64{{1}, {1}, {1}, {1}},
	)
	if err != nil {
		t.Fatalf("DenseInteractionMatrix() error = %v", err)
	}
	s := newTestService(t, &artifacts.Bundle{Interactions: m})

	tests := []struct {
		q     string
		limit int
		want  []int64
	}{
		{"", 2, []int64{12346, 12347}},
		{"234", 10, []int64{12346, 12347}},
		{"45", 10, []int64{14567}},
		{"1", 3, []int64{12346, 12347, 13001}},
		{"999", 10, []int64{}},
	}

	for _, tt := range tests {
		got, err := s.UserSearch(tt.q, tt.limit)
		if err != nil {
			t.Fatalf("UserSearch(%q) error = %v", tt.q, err)
		}
		ids := make([]int64, len(got))
		for i, h := range got {
			ids[i] = h.UserID
		}
		if !reflect.DeepEqual(ids, tt.want) {
			t.Errorf("UserSearch(%q, %d) = %v, want %v", tt.q, tt.limit, ids, tt.want)
		}
	}
}

func TestCartItems(t *testing.T) {
	t.Parallel()

	got, err := newTestService(t, artifactstest.Fixture()).CartItems("es")
	if err != nil {
		t.Fatalf("CartItems() error = %v", err)
	}
	want := []CartItem{
		{StockCode: "A", ProductName: "Portavelas corazón blanco"},
		{StockCode: "B", ProductName: "Taza"},
		{StockCode: "E", ProductName: "JUMBO BAG RED RETROSPOT"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CartItems() = %+v, want %+v", got, want)
	}

	if _, err := newTestService(t, artifactstest.Without(artifacts.Rules)).CartItems("en"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5}
	tests := []struct {
		page, size int
		want       []int
	}{
		{1, 2, []int{1, 2}},
		{3, 2, []int{5}},
		{4, 2, []int{}},
		{0, 2, []int{}},
		{1, 10, []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		if got := paginate(items, tt.page, tt.size); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("paginate(page=%d, size=%d) = %v, want %v", tt.page, tt.size, got, tt.want)
		}
	}
}
