// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

// Package artifacts loads the precomputed model artifacts the recommendation
// service serves from.
//
// A Bundle groups five read-only artifacts:
//
//   - InteractionMatrix: user x product purchase quantities (sparse rows)
//   - SimilarityModel: user x user similarity, bound to its own user ids
//   - RuleTable: association rules with support, confidence, and lift
//   - ProductCatalog: stock code to description
//   - TranslationMap: English display name to localized name
//
// Any artifact may be absent; the corresponding Bundle field is then nil and
// the endpoints that depend on it answer 503. Malformed artifacts fail the load.
//
// # Sources
//
// Three Loader implementations read the same bundle from different layouts:
//
//   - JSONLoader: one JSON (optionally gzip) file per artifact
//   - DuckDBLoader: long-format CSV or Parquet tables queried with DuckDB
//   - SnapshotStore: versioned gob+zstd snapshots with a SHA-256 checksum
//     sidecar, produced by "artifacts pack"
//
// Load picks the loader from Options, validates cross-artifact invariants,
// records artifact metrics, and logs which endpoints degrade for each missing
// artifact.
package artifacts
