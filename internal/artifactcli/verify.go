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

func cmdVerify() *cli.Command {
	var (
		path    string
		version int
	)

	return &cli.Command{
		Name:  "verify",
		Usage: "Check the checksum and structure of a snapshot",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "path",
				Usage:       "Snapshot directory",
				Required:    true,
				Destination: &path,
			},
			&cli.IntFlag{
				Name:        "version",
				Usage:       "Snapshot version (0 for latest)",
				Destination: &version,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			meta, err := runVerify(ctx, path, version)
			if err != nil {
				return err
			}
			return printJSON(c, meta)
		},
	}
}

func runVerify(ctx context.Context, path string, version int) (*artifacts.SnapshotMetadata, error) {
	store, err := artifacts.OpenSnapshotStore(path)
	if err != nil {
		return nil, err
	}
	meta, err := store.Verify(ctx, version)
	if err != nil {
		return nil, fmt.Errorf("verify snapshot: %w", err)
	}
	logging.Info().Int("version", meta.Version).Str("checksum", meta.Checksum).Msg("Snapshot verified")
	return meta, nil
}

func cmdList() *cli.Command {
	var path string

	return &cli.Command{
		Name:  "list",
		Usage: "List stored snapshot versions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "path",
				Usage:       "Snapshot directory",
				Required:    true,
				Destination: &path,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			store, err := artifacts.OpenSnapshotStore(path)
			if err != nil {
				return err
			}
			versions, err := store.List()
			if err != nil {
				return err
			}
			return printJSON(c, versions)
		},
	}
}
