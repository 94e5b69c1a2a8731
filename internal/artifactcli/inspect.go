// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package artifactcli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
)

// inspectResult is the output of the inspect command.
type inspectResult struct {
	Source  string            `json:"source"`
	Path    string            `json:"path"`
	Summary artifacts.Summary `json:"summary"`
}

func cmdInspect() *cli.Command {
	var opts artifacts.Options

	return &cli.Command{
		Name:  "inspect",
		Usage: "Print artifact counts for any source",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "source",
				Usage:       "Source format [json|duckdb|snapshot]",
				Value:       artifacts.SourceJSON,
				Destination: &opts.Source,
			},
			&cli.StringFlag{
				Name:        "path",
				Usage:       "Artifact or snapshot directory",
				Required:    true,
				Destination: &opts.Path,
			},
			&cli.IntFlag{
				Name:        "version",
				Usage:       "Snapshot version (0 for latest)",
				Destination: &opts.SnapshotVersion,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			res, err := runInspect(ctx, opts)
			if err != nil {
				return err
			}
			return printJSON(c, res)
		},
	}
}

//nolint:gocritic // hugeParam: options are copied once per command
func runInspect(ctx context.Context, opts artifacts.Options) (*inspectResult, error) {
	bundle, err := artifacts.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	source := opts.Source
	if source == "" {
		source = artifacts.SourceJSON
	}
	return &inspectResult{Source: source, Path: opts.Path, Summary: bundle.Summarize()}, nil
}
