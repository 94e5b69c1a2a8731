// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

// Command artifacts packs, inspects, and verifies recommendation model artifacts.
package main

import (
	"context"
	"os"

	"github.com/tomtom215/recsys-engine/internal/artifactcli"
	"github.com/tomtom215/recsys-engine/internal/logging"
)

func main() {
	if err := artifactcli.Run(context.Background(), os.Args); err != nil {
		logging.Error().Err(err).Msg("artifacts command failed")
		os.Exit(1)
	}
}
