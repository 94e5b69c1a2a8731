// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package api

import (
	"net/http"

	"github.com/tomtom215/recsys-engine/internal/dashboard"
	"github.com/tomtom215/recsys-engine/internal/validation"
)

// Dashboard listing defaults.
const (
	defaultTopProducts  = 10
	defaultSearchLimit  = 10
	defaultRulePageSize = 20
)

// DashboardStats handles GET /dashboard/stats
//
// @Summary Overview KPIs
// @Description User, product, transaction and rule counts with mean rule confidence and lift. Missing artifacts contribute zeros.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dashboard.Stats
// @Router /dashboard/stats [get]
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dashboard.Stats())
}

// DashboardTopProducts handles GET /dashboard/top-products
//
// @Summary Best-selling products
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Number of products (1-50, default 10)"
// @Param lang query string false "Display language (default en)"
// @Success 200 {array} dashboard.TopProduct
// @Failure 400 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /dashboard/top-products [get]
func (h *Handler) DashboardTopProducts(w http.ResponseWriter, r *http.Request) {
	limit, verr := queryInt(r, "limit", defaultTopProducts)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	req := validation.TopProductsRequest{Limit: limit, Lang: queryLang(r)}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	products, err := h.dashboard.TopProducts(req.Limit, req.Lang)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// DashboardProducts handles GET /dashboard/products
//
// @Summary Paginated product catalog
// @Description Catalog rows with every column. search matches any column value, case-insensitively.
// @Tags Dashboard
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20)"
// @Param search query string false "Substring filter"
// @Param lang query string false "Display language (default en)"
// @Success 200 {object} dashboard.Page[dashboard.ProductItem]
// @Failure 400 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /dashboard/products [get]
func (h *Handler) DashboardProducts(w http.ResponseWriter, r *http.Request) {
	page, verr := h.pageRequest(r, h.defaultPageSize())
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	req := validation.ProductListRequest{
		PageRequest: page,
		Search:      r.URL.Query().Get("search"),
		Lang:        queryLang(r),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	result, err := h.dashboard.Products(dashboard.ProductQuery{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
		Lang:     req.Lang,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// DashboardRules handles GET /dashboard/rules
//
// @Summary Paginated association rules
// @Description Rules with confidence at least min_confidence, highest confidence first.
// @Tags Dashboard
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20)"
// @Param min_confidence query number false "Minimum confidence, 0 to 1 (default 0)"
// @Param lang query string false "Display language (default en)"
// @Success 200 {object} dashboard.Page[dashboard.RuleItem]
// @Failure 400 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /dashboard/rules [get]
func (h *Handler) DashboardRules(w http.ResponseWriter, r *http.Request) {
	page, verr := h.pageRequest(r, defaultRulePageSize)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	minConfidence, verr := queryFloat(r, "min_confidence", 0)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	req := validation.RuleListRequest{PageRequest: page, MinConfidence: minConfidence, Lang: queryLang(r)}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	result, err := h.dashboard.Rules(dashboard.RuleQuery{
		Page:          req.Page,
		PageSize:      req.PageSize,
		MinConfidence: req.MinConfidence,
		Lang:          req.Lang,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// DashboardUserProfile handles GET /dashboard/user/{user_id}
//
// @Summary Purchase profile of one user
// @Tags Dashboard
// @Produce json
// @Param user_id path int true "Customer ID"
// @Param lang query string false "Display language (default en)"
// @Success 200 {object} dashboard.UserProfile
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /dashboard/user/{user_id} [get]
func (h *Handler) DashboardUserProfile(w http.ResponseWriter, r *http.Request) {
	userID, verr := pathInt64(r, "user_id")
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	req := validation.LangRequest{Lang: queryLang(r)}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	profile, err := h.dashboard.UserProfile(userID, req.Lang)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// DashboardUsers handles GET /dashboard/users
//
// @Summary Paginated user ids
// @Tags Dashboard
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 50)"
// @Success 200 {object} dashboard.UserPage
// @Failure 400 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /dashboard/users [get]
func (h *Handler) DashboardUsers(w http.ResponseWriter, r *http.Request) {
	page, verr := h.pageRequest(r, h.userPageSize())
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	if verr := validation.ValidateStruct(&page); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	result, err := h.dashboard.Users(page.Page, page.PageSize)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// DashboardModelInfo handles GET /dashboard/model-info
//
// @Summary Model summaries
// @Description Status and summary statistics of the collaborative-filtering and association-rule models.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dashboard.ModelInfo
// @Router /dashboard/model-info [get]
func (h *Handler) DashboardModelInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dashboard.ModelInfo())
}

// DashboardDistribution handles GET /dashboard/recommendation-distribution
//
// @Summary Share of recommendations by recommender
// @Description Percentages of served recommendation requests; a fixed baseline until any have been served.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dashboard.Distribution
// @Router /dashboard/recommendation-distribution [get]
func (h *Handler) DashboardDistribution(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dashboard.Distribution())
}

// DashboardProductSearch handles GET /dashboard/product-search
//
// @Summary Product autocomplete
// @Tags Dashboard
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Maximum results (1-30, default 10)"
// @Param lang query string false "Display language (default en)"
// @Success 200 {array} dashboard.ProductHit
// @Failure 400 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /dashboard/product-search [get]
func (h *Handler) DashboardProductSearch(w http.ResponseWriter, r *http.Request) {
	limit, verr := queryInt(r, "limit", defaultSearchLimit)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	req := validation.ProductSearchRequest{Q: r.URL.Query().Get("q"), Limit: limit, Lang: queryLang(r)}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	hits, err := h.dashboard.ProductSearch(req.Q, req.Limit, req.Lang)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, hits)
}

// DashboardUserSearch handles GET /dashboard/user-search
//
// @Summary User id autocomplete
// @Tags Dashboard
// @Produce json
// @Param q query string false "Digits the user id must contain"
// @Param limit query int false "Maximum results (1-50, default 10)"
// @Success 200 {array} dashboard.UserHit
// @Failure 400 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /dashboard/user-search [get]
func (h *Handler) DashboardUserSearch(w http.ResponseWriter, r *http.Request) {
	limit, verr := queryInt(r, "limit", defaultSearchLimit)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	req := validation.UserSearchRequest{Q: r.URL.Query().Get("q"), Limit: limit}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	hits, err := h.dashboard.UserSearch(req.Q, req.Limit)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, hits)
}

// DashboardCartItems handles GET /dashboard/cart-items
//
// @Summary Products that can trigger a rule
// @Description Every distinct antecedent item, sorted by stock code.
// @Tags Dashboard
// @Produce json
// @Param lang query string false "Display language (default en)"
// @Success 200 {array} dashboard.CartItem
// @Failure 503 {object} APIResponse
// @Router /dashboard/cart-items [get]
func (h *Handler) DashboardCartItems(w http.ResponseWriter, r *http.Request) {
	req := validation.LangRequest{Lang: queryLang(r)}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	items, err := h.dashboard.CartItems(req.Lang)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) defaultPageSize() int {
	if h.api.DefaultPageSize > 0 {
		return h.api.DefaultPageSize
	}
	return 20
}

func (h *Handler) userPageSize() int {
	if h.api.UserPageSize > 0 {
		return h.api.UserPageSize
	}
	return 50
}
