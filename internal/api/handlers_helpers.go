// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/recsys-engine/internal/validation"
)

// defaultLang is the display language when the lang parameter is absent.
const defaultLang = "en"

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// queryInt extracts an integer query parameter with a default value.
// A present but non-numeric value is a validation error.
func queryInt(r *http.Request, key string, defaultValue int) (int, *validation.RequestValidationError) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, validation.FieldError(key, "int", "", value, key+" must be an integer")
	}
	return n, nil
}

// queryFloat extracts a float query parameter with a default value.
func queryFloat(r *http.Request, key string, defaultValue float64) (float64, *validation.RequestValidationError) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, validation.FieldError(key, "number", "", value, key+" must be a number")
	}
	return f, nil
}

// pathInt64 extracts an integer chi URL parameter.
func pathInt64(r *http.Request, key string) (int64, *validation.RequestValidationError) {
	value := chi.URLParam(r, key)
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, validation.FieldError(key, "int", "", value, key+" must be an integer")
	}
	return n, nil
}

// queryLang returns the requested display language.
func queryLang(r *http.Request) string {
	if lang := strings.TrimSpace(r.URL.Query().Get("lang")); lang != "" {
		return lang
	}
	return defaultLang
}

// pageRequest parses page and page_size, applying defaultSize when
// page_size is absent and the configured maximum page size.
func (h *Handler) pageRequest(r *http.Request, defaultSize int) (validation.PageRequest, *validation.RequestValidationError) {
	page, verr := queryInt(r, "page", 1)
	if verr != nil {
		return validation.PageRequest{}, verr
	}
	pageSize, verr := queryInt(r, "page_size", defaultSize)
	if verr != nil {
		return validation.PageRequest{}, verr
	}
	if maxSize := h.api.MaxPageSize; maxSize > 0 && pageSize > maxSize {
		return validation.PageRequest{}, validation.FieldError(
			"page_size", "max", strconv.Itoa(maxSize), pageSize,
			fmt.Sprintf("page_size must be at most %d", maxSize),
		)
	}
	return validation.PageRequest{Page: page, PageSize: pageSize}, nil
}
