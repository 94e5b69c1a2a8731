// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

// Package dashboard computes the read-only views behind the analytics
// dashboard: overview statistics, top products, paginated catalog, rule and
// user listings, model summaries, and autocomplete searches.
//
// A view whose artifact is absent returns ErrUnavailable. Stats and ModelInfo
// never fail and report zeros or "not_loaded" instead.
package dashboard
