// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package dashboard

// Stats holds the overview KPIs.
type Stats struct {
	TotalUsers        int     `json:"total_users"`
	TotalProducts     int     `json:"total_products"`
	TotalTransactions int64   `json:"total_transactions"`
	TotalRules        int     `json:"total_rules"`
	AvgConfidence     float64 `json:"avg_confidence"`
	AvgLift           float64 `json:"avg_lift"`
}

// TopProduct is a product ranked by total quantity sold.
type TopProduct struct {
	StockCode     string `json:"stock_code"`
	ProductName   string `json:"product_name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// Page is one page of a listing.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// ProductItem is a catalog row. It always carries StockCode and Description
// and adds every other catalog column under its own name.
type ProductItem map[string]any

// RuleItem is an association rule with resolved product names.
type RuleItem struct {
	ID          int      `json:"id"`
	Antecedents []string `json:"antecedents"`
	Consequents []string `json:"consequents"`
	Support     float64  `json:"support"`
	Confidence  float64  `json:"confidence"`
	Lift        float64  `json:"lift"`
}

// PurchasedProduct is one line of a user profile.
type PurchasedProduct struct {
	StockCode   string `json:"stock_code"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

// UserProfile summarizes a user's purchases.
type UserProfile struct {
	UserID         int64              `json:"user_id"`
	TotalPurchases int64              `json:"total_purchases"`
	UniqueProducts int                `json:"unique_products"`
	Products       []PurchasedProduct `json:"products"`
}

// UserPage is one page of user ids.
type UserPage struct {
	Users    []int64 `json:"users"`
	Total    int     `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

// Model statuses.
const (
	StatusActive    = "active"
	StatusNotLoaded = "not_loaded"
)

// ModelInfo describes both loaded models.
type ModelInfo struct {
	CollaborativeFiltering CollaborativeInfo `json:"collaborative_filtering"`
	AssociationRules       AssociationInfo   `json:"association_rules"`
}

// CollaborativeInfo carries only Status when the model is not loaded.
type CollaborativeInfo struct {
	Status string `json:"status"`
	*CollaborativeDetails
}

// CollaborativeDetails describes a loaded collaborative-filtering model.
type CollaborativeDetails struct {
	Type             string  `json:"type"`
	SimilarityMethod string  `json:"similarity_method"`
	UsersInModel     int     `json:"users_in_model"`
	ProductsInModel  int     `json:"products_in_model"`
	MatrixDensity    float64 `json:"matrix_density"`
}

// AssociationInfo carries only Status when the rules are not loaded.
type AssociationInfo struct {
	Status string `json:"status"`
	*AssociationDetails
}

// AssociationDetails describes a loaded rule table.
type AssociationDetails struct {
	Type          string  `json:"type"`
	TotalRules    int     `json:"total_rules"`
	AvgConfidence float64 `json:"avg_confidence"`
	AvgLift       float64 `json:"avg_lift"`
	AvgSupport    float64 `json:"avg_support"`
	MaxRuleLength int     `json:"max_rule_length"`
}

// Distribution is the share of recommendation traffic per recommender, in percent.
type Distribution struct {
	CollaborativeFiltering float64 `json:"collaborative_filtering"`
	AssociationRules       float64 `json:"association_rules"`
}

// ProductHit is a product search result.
type ProductHit struct {
	StockCode   string `json:"stock_code"`
	ProductName string `json:"product_name"`
}

// UserHit is a user search result.
type UserHit struct {
	UserID int64 `json:"user_id"`
}

// CartItem is a product that can be added to the cart simulator.
type CartItem struct {
	StockCode   string `json:"stock_code"`
	ProductName string `json:"product_name"`
}
