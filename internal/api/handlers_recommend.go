// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recsys-engine/internal/recommend"
	"github.com/tomtom215/recsys-engine/internal/validation"
)

// RecommendationItem is one ranked recommendation as returned to clients.
type RecommendationItem struct {
	Rank        int     `json:"rank"`
	ProductName string  `json:"product_name"`
	Score       float64 `json:"score"`
}

// RecommendUser handles GET /recommend/user/{user_id}
//
// @Summary Collaborative-filtering recommendations for a user
// @Description Ranks products bought by the user's nearest neighbors that the user has not bought, scored by how many neighbors bought each one.
// @Tags Recommendations
// @Produce json
// @Param user_id path int true "Customer ID"
// @Param top_n query int false "Number of recommendations (default 5)"
// @Param lang query string false "Display language for product names (default en)"
// @Success 200 {array} RecommendationItem
// @Failure 400 {object} APIResponse "Invalid user_id or top_n"
// @Failure 404 {object} APIResponse "User not found"
// @Failure 503 {object} APIResponse "Models not loaded"
// @Router /recommend/user/{user_id} [get]
func (h *Handler) RecommendUser(w http.ResponseWriter, r *http.Request) {
	userID, verr := pathInt64(r, "user_id")
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	topN, verr := queryInt(r, "top_n", h.recommender.Config().DefaultUserTopN)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	req := validation.UserRecommendationRequest{UserID: userID, TopN: topN, Lang: queryLang(r)}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	recs, err := h.recommender.ForUser(r.Context(), req.UserID, req.TopN)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, h.presentRecommendations(recs, req.Lang))
}

// RecommendCart handles POST /recommend/association
//
// @Summary Association-rule recommendations for a shopping cart
// @Description Returns consequents of rules whose antecedents share an item with the cart, highest confidence first. Items already in the cart are never recommended.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body validation.CartRecommendationRequest true "Cart contents"
// @Param lang query string false "Display language for product names (default en)"
// @Success 200 {array} RecommendationItem
// @Failure 400 {object} APIResponse "Malformed body"
// @Failure 503 {object} APIResponse "Rules not loaded"
// @Router /recommend/association [post]
func (h *Handler) RecommendCart(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req validation.CartRecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, r, validation.FieldError(
			"body", "json", "", nil, "request body must be a JSON object with cart_items",
		))
		return
	}
	req.Lang = queryLang(r)

	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	topN := 0
	if req.TopN != nil {
		topN = *req.TopN
	}

	recs, err := h.recommender.ForCart(r.Context(), req.CartItems, topN)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, h.presentRecommendations(recs, req.Lang))
}

// presentRecommendations resolves product codes to display names.
func (h *Handler) presentRecommendations(recs []recommend.Recommendation, lang string) []RecommendationItem {
	out := make([]RecommendationItem, len(recs))
	for i, rec := range recs {
		out[i] = RecommendationItem{
			Rank:        rec.Rank,
			ProductName: h.names.DisplayName(rec.ProductID, lang),
			Score:       rec.Score,
		}
	}
	return out
}
