// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package validation

// UserRecommendationRequest is GET /recommend/user/{user_id}.
type UserRecommendationRequest struct {
	UserID int64  `json:"user_id"`
	TopN   int    `json:"top_n" validate:"min=1"`
	Lang   string `json:"lang" validate:"omitempty,max=35"`
}

// CartRecommendationRequest is the body of POST /recommend/association.
type CartRecommendationRequest struct {
	CartItems []string `json:"cart_items" validate:"required,max=1000,dive,max=256"`
	TopN      *int     `json:"top_n,omitempty" validate:"omitempty,min=1"`
	Lang      string   `json:"-"`
}

// PageRequest is the page selection shared by listings.
type PageRequest struct {
	Page     int `json:"page" validate:"min=1"`
	PageSize int `json:"page_size" validate:"min=1"`
}

// ProductListRequest is GET /dashboard/products.
type ProductListRequest struct {
	PageRequest
	Search string `json:"search" validate:"max=200"`
	Lang   string `json:"lang" validate:"omitempty,max=35"`
}

// RuleListRequest is GET /dashboard/rules.
type RuleListRequest struct {
	PageRequest
	MinConfidence float64 `json:"min_confidence" validate:"gte=0,lte=1"`
	Lang          string  `json:"lang" validate:"omitempty,max=35"`
}

// TopProductsRequest is GET /dashboard/top-products.
type TopProductsRequest struct {
	Limit int    `json:"limit" validate:"min=1,max=50"`
	Lang  string `json:"lang" validate:"omitempty,max=35"`
}

// ProductSearchRequest is GET /dashboard/product-search.
type ProductSearchRequest struct {
	Q     string `json:"q" validate:"required,min=1,max=200"`
	Limit int    `json:"limit" validate:"min=1,max=30"`
	Lang  string `json:"lang" validate:"omitempty,max=35"`
}

// UserSearchRequest is GET /dashboard/user-search.
type UserSearchRequest struct {
	Q     string `json:"q" validate:"max=20"`
	Limit int    `json:"limit" validate:"min=1,max=50"`
}

// LangRequest carries only the display language.
type LangRequest struct {
	Lang string `json:"lang" validate:"omitempty,max=35"`
}
