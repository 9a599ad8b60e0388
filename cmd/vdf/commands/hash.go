// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/vdf/cmd/vdf/cli"
	"github.com/bureau-foundation/vdf/lib/binhash"
	"github.com/bureau-foundation/vdf/lib/vdf"
)

type hashParams struct {
	global   globalOptions
	hexInput bool
}

func hashCommand(env Environment) *cli.Command {
	var params hashParams

	return &cli.Command{
		Name:    "hash",
		Summary: "Print BLAKE3 digests of binary shortcuts.vdf data",
		Description: `Print two BLAKE3-256 digests of a shortcuts.vdf file:

  raw        the input bytes exactly as given
  canonical  the file form of the decoded tree (encoding plus terminator)

Files that differ only in bytes the decoder ignores or repairs (unknown
tags, invalid UTF-8, a missing terminator, trailing data) share a
canonical digest.`,
		Usage: "vdf hash [-x] [file]",
		Examples: []cli.Example{
			{
				Description: "Check whether Steam rewrote a file",
				Command:     "vdf hash shortcuts.vdf",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("hash", pflag.ContinueOnError)
			params.global.register(flagSet)
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
			return hashVDF(data, env.Stdout, cfg.DecoderOptions(), logger)
		},
	}
}

// hashVDF writes the raw and canonical digests of data to w.
func hashVDF(data []byte, w io.Writer, options vdf.DecoderOptions, logger *slog.Logger) error {
	raw := binhash.HashBytes(data)

	node, _, err := decodeInput(data, options, logger)
	if err != nil {
		return err
	}
	canonical, err := binhash.HashNode(node)
	if err != nil {
		return cli.Internal("%w", err)
	}

	if _, err := fmt.Fprintf(w, "raw        %s\ncanonical  %s\n",
		binhash.FormatDigest(raw), binhash.FormatDigest(canonical)); err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}
