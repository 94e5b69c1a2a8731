// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package artifactcli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/tomtom215/recsys-engine/internal/logging"
)

// loggerFlags holds the shared logging options.
type loggerFlags struct {
	level  string
	format string
}

func (x *loggerFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Category:    "logging",
			Aliases:     []string{"l"},
			Sources:     cli.EnvVars("LOG_LEVEL"),
			Usage:       "Set log level [debug|info|warn|error]",
			Value:       "info",
			Destination: &x.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Category:    "logging",
			Sources:     cli.EnvVars("LOG_FORMAT"),
			Usage:       "Set log format [console|json]",
			Value:       "console",
			Destination: &x.format,
		},
	}
}

func (x *loggerFlags) Configure(w io.Writer) error {
	if x.format != "console" && x.format != "json" {
		return fmt.Errorf("invalid log format %q", x.format)
	}
	logging.Init(logging.Config{
		Level:     x.level,
		Format:    x.format,
		Timestamp: true,
		Output:    w,
	})
	return nil
}

// Run executes the artifacts command with args (including the program name).
func Run(ctx context.Context, args []string) error {
	return newCommand(os.Stdout, os.Stderr).Run(ctx, args)
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	var loggerCfg loggerFlags

	return &cli.Command{
		Name:      "artifacts",
		Usage:     "Pack, inspect, and verify recommendation model artifacts",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, loggerCfg.Configure(stderr)
		},
		Commands: []*cli.Command{
			cmdPack(),
			cmdInspect(),
			cmdVerify(),
			cmdList(),
		},
	}
}

// printJSON writes v as indented JSON to the root command's writer.
func printJSON(c *cli.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(c.Root().Writer, string(data))
	return err
}
