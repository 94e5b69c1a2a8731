// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package artifactcli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
	"github.com/tomtom215/recsys-engine/internal/logging"
)

type packOptions struct {
	source     string
	from       string
	to         string
	requireAll bool
}

func cmdPack() *cli.Command {
	var opts packOptions

	return &cli.Command{
		Name:  "pack",
		Usage: "Load artifacts from a json or duckdb directory and store them as the next snapshot version",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "source",
				Usage:       "Source format [json|duckdb]",
				Value:       artifacts.SourceJSON,
				Destination: &opts.source,
			},
			&cli.StringFlag{
				Name:        "from",
				Usage:       "Directory holding the source artifacts",
				Required:    true,
				Destination: &opts.from,
			},
			&cli.StringFlag{
				Name:        "to",
				Usage:       "Snapshot directory",
				Required:    true,
				Destination: &opts.to,
			},
			&cli.BoolFlag{
				Name:        "require-all",
				Usage:       "Fail when any artifact is missing",
				Destination: &opts.requireAll,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			meta, err := runPack(ctx, opts)
			if err != nil {
				return err
			}
			return printJSON(c, meta)
		},
	}
}

func runPack(ctx context.Context, opts packOptions) (*artifacts.SnapshotMetadata, error) {
	if opts.source == artifacts.SourceSnapshot {
		return nil, fmt.Errorf("cannot pack from a snapshot source")
	}

	bundle, err := artifacts.Load(ctx, artifacts.Options{
		Source:     opts.source,
		Path:       opts.from,
		RequireAll: opts.requireAll,
	})
	if err != nil {
		return nil, err
	}

	store, err := artifacts.OpenSnapshotStore(opts.to)
	if err != nil {
		return nil, err
	}
	meta, err := store.Save(ctx, bundle, opts.source)
	if err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}

	logging.Info().
		Int("version", meta.Version).
		Str("checksum", meta.Checksum).
		Int64("size_bytes", meta.SizeBytes).
		Str("dir", opts.to).
		Msg("Snapshot written")
	return meta, nil
}
