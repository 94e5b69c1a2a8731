// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

// Package artifactcli implements the artifacts command, which packs model
// artifacts into versioned snapshots and inspects or verifies them.
//
//	artifacts pack --source json --from ./models --to ./snapshots
//	artifacts inspect --source snapshot --path ./snapshots
//	artifacts verify --path ./snapshots --version 3
//	artifacts list --path ./snapshots
//
// Results are written to stdout as indented JSON; logs go to stderr.
package artifactcli
