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

// RuleRecommender recommends consequents of association rules matching a cart.
type RuleRecommender struct {
	rules *artifacts.RuleTable
}

// NewRuleRecommender binds the recommender to the rule table of b. A nil rule
// table makes every call return ErrUnavailable.
func NewRuleRecommender(b *artifacts.Bundle) *RuleRecommender {
	r := &RuleRecommender{}
	if b != nil {
		r.rules = b.Rules
	}
	return r
}

// Available reports whether the rule table is present.
func (r *RuleRecommender) Available() bool {
	return r.rules != nil
}

// RecommendForCart returns up to topN consequents of the rules whose
// antecedents share at least one item with the cart. Rules are consumed by
// confidence, then lift, both descending. Items already in the cart or already
// emitted are skipped, and each item is scored with the confidence of the rule
// that produced it.
func (r *RuleRecommender) RecommendForCart(ctx context.Context, cart []string, topN int) ([]Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.Available() {
		return nil, ErrUnavailable
	}
	if topN < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTopN, topN)
	}

	recs := []Recommendation{}
	if len(cart) == 0 {
		return recs, nil
	}

	inCart := make(map[string]struct{}, len(cart))
	for _, item := range cart {
		inCart[item] = struct{}{}
	}

	matched := r.matching(inCart)
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		return a.Lift > b.Lift
	})

	seen := make(map[string]struct{})
	for _, rule := range matched {
		for _, item := range rule.Consequents {
			if _, ok := inCart[item]; ok {
				continue
			}
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			recs = append(recs, Recommendation{ProductID: item, Score: rule.Confidence})
			if len(recs) == topN {
				return rank(recs), nil
			}
		}
	}
	return rank(recs), nil
}

// matching returns the rules with at least one antecedent in the cart, in
// table order.
func (r *RuleRecommender) matching(inCart map[string]struct{}) []*artifacts.Rule {
	var matched []*artifacts.Rule
	for i := range r.rules.Rules {
		rule := &r.rules.Rules[i]
		for _, item := range rule.Antecedents {
			if _, ok := inCart[item]; ok {
				matched = append(matched, rule)
				break
			}
		}
	}
	return matched
}
