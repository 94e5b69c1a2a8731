// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

// Package validation validates API requests with go-playground/validator v10.
//
// A single validator instance is shared by all handlers; it caches struct
// metadata and is safe for concurrent use. Field names in errors come from the
// json tag, so a failure on TopN is reported as "top_n".
//
// Example usage:
//
//	req := validation.TopProductsRequest{Limit: limit, Lang: lang}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// Every failure maps to the VALIDATION_ERROR code and HTTP 400.
package validation
