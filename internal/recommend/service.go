// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
	"github.com/tomtom215/recsys-engine/internal/logging"
	"github.com/tomtom215/recsys-engine/internal/metrics"
)

// Service answers recommendation requests with both recommenders.
// It is safe for concurrent use.
type Service struct {
	config    Config
	neighbors *NeighborRecommender
	rules     *RuleRecommender
}

// NewService builds both recommenders over b. An invalid cfg is replaced by
// DefaultConfig.
//
//nolint:gocritic // hugeParam: cfg is copied once at construction
func NewService(b *artifacts.Bundle, cfg Config) *Service {
	logger := logging.WithComponent("recommend")
	if err := cfg.Validate(); err != nil {
		logger.Warn().Err(err).Msg("invalid recommender config, using defaults")
		cfg = DefaultConfig()
	}

	s := &Service{
		config:    cfg,
		neighbors: NewNeighborRecommender(b, cfg.Neighbors),
		rules:     NewRuleRecommender(b),
	}
	logger.Info().
		Bool("collaborative_filtering", s.neighbors.Available()).
		Bool("association_rules", s.rules.Available()).
		Int("neighbors", cfg.Neighbors).
		Msg("recommenders ready")
	return s
}

// Config returns the active parameters.
func (s *Service) Config() Config {
	return s.config
}

// UserAvailable reports whether user recommendations can be served.
func (s *Service) UserAvailable() bool {
	return s.neighbors.Available()
}

// CartAvailable reports whether cart recommendations can be served.
func (s *Service) CartAvailable() bool {
	return s.rules.Available()
}

// ForUser returns collaborative-filtering recommendations. A topN of zero
// selects Config.DefaultUserTopN.
func (s *Service) ForUser(ctx context.Context, userID int64, topN int) ([]Recommendation, error) {
	topN, err := s.resolveTopN(topN, s.config.DefaultUserTopN)
	if err != nil {
		metrics.RecordRecommendation(metrics.RecommenderCollaborative, metrics.OutcomeInvalid, 0)
		return nil, err
	}

	start := time.Now()
	recs, err := s.neighbors.RecommendForUser(ctx, userID, topN)
	s.record(ctx, metrics.RecommenderCollaborative, recs, err).
		Int64("user_id", userID).
		Int("top_n", topN).
		Dur("duration", time.Since(start)).
		Msg("user recommendation")
	return recs, err
}

// ForCart returns association-rule recommendations. A topN of zero selects
// Config.DefaultCartTopN.
func (s *Service) ForCart(ctx context.Context, cart []string, topN int) ([]Recommendation, error) {
	topN, err := s.resolveTopN(topN, s.config.DefaultCartTopN)
	if err != nil {
		metrics.RecordRecommendation(metrics.RecommenderAssociation, metrics.OutcomeInvalid, 0)
		return nil, err
	}

	start := time.Now()
	recs, err := s.rules.RecommendForCart(ctx, cart, topN)
	s.record(ctx, metrics.RecommenderAssociation, recs, err).
		Int("cart_size", len(cart)).
		Int("top_n", topN).
		Dur("duration", time.Since(start)).
		Msg("cart recommendation")
	return recs, err
}

func (s *Service) resolveTopN(topN, fallback int) (int, error) {
	if topN == 0 {
		return fallback, nil
	}
	if topN < 1 || topN > s.config.MaxTopN {
		return 0, fmt.Errorf("%w: must be between 1 and %d, got %d", ErrInvalidTopN, s.config.MaxTopN, topN)
	}
	return topN, nil
}

// record updates metrics for one request and returns a debug event carrying
// the outcome, for the caller to finish.
func (s *Service) record(ctx context.Context, recommender string, recs []Recommendation, err error) *zerolog.Event {
	outcome := metrics.OutcomeServed
	switch {
	case errors.Is(err, ErrUnavailable):
		outcome = metrics.OutcomeUnavailable
	case errors.Is(err, ErrUserNotFound):
		outcome = metrics.OutcomeNotFound
	case err != nil:
		outcome = metrics.OutcomeInvalid
	case len(recs) == 0:
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordRecommendation(recommender, outcome, len(recs))

	return logging.Ctx(ctx).Debug().
		Str("component", "recommend").
		Str("recommender", recommender).
		Str("outcome", outcome).
		Int("results", len(recs))
}
