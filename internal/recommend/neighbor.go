// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
)

// NeighborRecommender recommends what similar users bought.
type NeighborRecommender struct {
	interactions *artifacts.InteractionMatrix
	similarity   *artifacts.SimilarityModel
	k            int
}

// NewNeighborRecommender binds the recommender to the interaction matrix and
// similarity model of b. Either may be nil, in which case every call returns
// ErrUnavailable.
func NewNeighborRecommender(b *artifacts.Bundle, neighbors int) *NeighborRecommender {
	if neighbors < 1 {
		neighbors = DefaultConfig().Neighbors
	}
	r := &NeighborRecommender{k: neighbors}
	if b != nil {
		r.interactions = b.Interactions
		r.similarity = b.Similarity
	}
	return r
}

// Available reports whether both required artifacts are present.
func (r *NeighborRecommender) Available() bool {
	return r.interactions != nil && r.similarity != nil
}

// neighbor is a similar user.
type neighbor struct {
	id    int64
	score float64
}

// RecommendForUser returns up to topN products bought by the user's nearest
// neighbors and not by the user, ranked by how many neighbors bought them.
// Ties keep the order in which candidates were first encountered.
func (r *NeighborRecommender) RecommendForUser(ctx context.Context, userID int64, topN int) ([]Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.Available() {
		return nil, ErrUnavailable
	}
	if topN < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTopN, topN)
	}
	if !r.interactions.HasUser(userID) {
		return nil, fmt.Errorf("%w: %d", ErrUserNotFound, userID)
	}

	neighbors := r.nearest(userID)
	owned := r.interactions.PurchasedSet(userID)

	counts := make(map[int]int)
	var order []int
	for _, n := range neighbors {
		row, ok := r.interactions.UserRow(n.id)
		if !ok {
			continue
		}
		for _, cell := range row {
			if cell.Value <= 0 {
				continue
			}
			if _, has := owned[cell.Col]; has {
				continue
			}
			if counts[cell.Col] == 0 {
				order = append(order, cell.Col)
			}
			counts[cell.Col]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topN {
		order = order[:topN]
	}

	recs := make([]Recommendation, len(order))
	for i, col := range order {
		recs[i] = Recommendation{
			ProductID: r.interactions.Products[col],
			Score:     float64(counts[col]),
		}
	}
	return rank(recs), nil
}

// nearest returns the k most similar users other than userID, most similar
// first. Equal scores keep similarity-model order.
func (r *NeighborRecommender) nearest(userID int64) []neighbor {
	scores, ok := r.similarity.Row(userID)
	if !ok {
		return nil
	}

	candidates := make([]neighbor, 0, len(scores))
	for j, score := range scores {
		id := r.similarity.Users[j]
		if id == userID {
			continue
		}
		candidates = append(candidates, neighbor{id: id, score: score})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > r.k {
		candidates = candidates[:r.k]
	}
	return candidates
}
