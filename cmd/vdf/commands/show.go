// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/vdf/cmd/vdf/cli"
	"github.com/bureau-foundation/vdf/lib/vdfview"
)

type showParams struct {
	global   globalOptions
	color    string
	hexInput bool
}

func showCommand(env Environment) *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Print binary shortcuts.vdf data as a tree",
		Description: `Print a shortcuts.vdf file as an indented tree, one node per line.

Lists show their child count. Bytes4 values show their hex bytes and
the little-endian unsigned integer they hold, which is how Steam stores
app IDs and timestamps.`,
		Usage: "vdf show [--color auto|always|never] [-x] [file]",
		Examples: []cli.Example{
			{
				Description: "Browse shortcuts with color in a pager",
				Command:     "vdf show --color always shortcuts.vdf | less -R",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			params.global.register(flagSet)
			flagSet.StringVar(&params.color, "color", "", "auto, always or never (default from config, else auto)")
			flagSet.BoolVarP(&params.hexInput, "hex", "x", false, "treat input as hex-encoded bytes")
			return flagSet
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			cfg, err := params.global.setup(env, logger)
			if err != nil {
				return err
			}
			data, err := readInput(args, params.hexInput, env.Stdin)
			if err != nil {
				return err
			}

			mode := params.color
			if mode == "" {
				mode = cfg.Show.Color
			}
			profile, err := vdfview.ColorProfile(mode, env.Terminal)
			if err != nil {
				return cli.Validation("%w", err)
			}

			node, _, err := decodeInput(data, cfg.DecoderOptions(), logger)
			if err != nil {
				return err
			}
			if err := vdfview.Render(env.Stdout, node, vdfview.Options{Profile: profile}); err != nil {
				return cli.Internal("write output: %w", err)
			}
			return nil
		},
	}
}
