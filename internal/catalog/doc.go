// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

// Package catalog resolves stock codes to localized product names.
//
// Resolution is best effort and never fails: a code missing from the catalog
// is shown as-is, and a name without a translation stays in English.
package catalog
