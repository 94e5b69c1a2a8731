// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

// Package recommend serves precomputed product recommendations.
//
// # Recommenders
//
// Two recommenders read an immutable artifacts.Bundle:
//
//   - NeighborRecommender: user-based collaborative filtering. The K most
//     similar users are taken from the precomputed similarity model, and the
//     products they bought that the target user has not are ranked by how many
//     neighbors bought them.
//   - RuleRecommender: market-basket analysis. Association rules whose
//     antecedents intersect the cart are walked by confidence, then lift, and
//     their consequents are emitted with the rule confidence as score.
//
// Neither recommender trains anything. Both are pure functions over the bundle
// they were built with, so they are safe for concurrent use without locking.
//
// # Service
//
// Service wraps both recommenders with request defaults, structured logging,
// and Prometheus metrics:
//
//	svc := recommend.NewService(bundle, recommend.DefaultConfig())
//	recs, err := svc.ForUser(ctx, 12347, 0) // 0 selects the default top N
//	if errors.Is(err, recommend.ErrUserNotFound) {
//	    // 404
//	}
//
// A recommender whose artifacts are absent returns ErrUnavailable, which wraps
// artifacts.ErrMissing.
package recommend
