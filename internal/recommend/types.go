// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
)

var (
	// ErrUnavailable is returned when the artifacts a recommender needs were not loaded.
	ErrUnavailable = fmt.Errorf("recommender unavailable: %w", artifacts.ErrMissing)

	// ErrUserNotFound is returned for a user id that is not a row of the interaction matrix.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidTopN is returned when the requested result size is out of range.
	ErrInvalidTopN = errors.New("invalid top_n")
)

// Recommendation is one ranked product.
type Recommendation struct {
	// Rank is the 1-based position in the result.
	Rank int `json:"rank"`

	// ProductID is the stock code as it appears in the artifacts.
	ProductID string `json:"product_id"`

	// Score is the neighbor count for user recommendations and the rule
	// confidence for cart recommendations.
	Score float64 `json:"score"`
}

// Config holds the recommender parameters.
type Config struct {
	// Neighbors is K, the number of similar users consulted.
	Neighbors int `json:"neighbors"`

	// DefaultUserTopN is used when a user request does not set top_n.
	DefaultUserTopN int `json:"default_user_top_n"`

	// DefaultCartTopN is used when a cart request does not set top_n.
	DefaultCartTopN int `json:"default_cart_top_n"`

	// MaxTopN bounds top_n for both request kinds.
	MaxTopN int `json:"max_top_n"`
}

// DefaultConfig returns the parameters the models were built for.
func DefaultConfig() Config {
	return Config{
		Neighbors:       5,
		DefaultUserTopN: 5,
		DefaultCartTopN: 3,
		MaxTopN:         100,
	}
}

// Validate checks the parameters.
func (c Config) Validate() error {
	if c.Neighbors < 1 {
		return fmt.Errorf("neighbors must be at least 1, got %d", c.Neighbors)
	}
	if c.MaxTopN < 1 {
		return fmt.Errorf("max_top_n must be at least 1, got %d", c.MaxTopN)
	}
	if c.DefaultUserTopN < 1 || c.DefaultUserTopN > c.MaxTopN {
		return fmt.Errorf("default_user_top_n must be between 1 and %d, got %d", c.MaxTopN, c.DefaultUserTopN)
	}
	if c.DefaultCartTopN < 1 || c.DefaultCartTopN > c.MaxTopN {
		return fmt.Errorf("default_cart_top_n must be between 1 and %d, got %d", c.MaxTopN, c.DefaultCartTopN)
	}
	return nil
}

// rank assigns 1-based ranks in slice order.
func rank(recs []Recommendation) []Recommendation {
	for i := range recs {
		recs[i].Rank = i + 1
	}
	return recs
}
