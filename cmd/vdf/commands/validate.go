// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/vdf/cmd/vdf/cli"
	"github.com/bureau-foundation/vdf/lib/vdf"
)

type validateParams struct {
	global       globalOptions
	noTerminator bool
	hexInput     bool
}

func validateCommand(env Environment) *cli.Command {
	var params validateParams

	return &cli.Command{
		Name:    "validate",
		Summary: "Check that binary shortcuts.vdf data round-trips unchanged",
		Description: `Decode a shortcuts.vdf file, encode the result again, and compare the
bytes. Exits 0 with "valid" if they match, exits 1 with the first
differing offset if not.

A mismatch means the file holds something the decoder dropped or
repaired: unknown tags, text that is not valid UTF-8, trailing data,
or a missing file terminator. Use --no-terminator for data that is
not expected to end with one.`,
		Usage: "vdf validate [--no-terminator] [-x] [file]",
		Examples: []cli.Example{
			{
				Description: "Check a file before handing it to Steam",
				Command:     "vdf validate shortcuts.vdf",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("validate", pflag.ContinueOnError)
			params.global.register(flagSet)
			flagSet.BoolVar(&params.noTerminator, "no-terminator", false, "expect no trailing end-of-list byte after the root node")
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
			terminator := cfg.Files.Terminator && !params.noTerminator
			return validateVDF(data, env.Stdout, terminator, cfg.DecoderOptions(), logger)
		},
	}
}

// validateVDF decodes data, re-encodes it, and reports whether the
// bytes match. A mismatch is reported on w and returned as an
// ExitError with code 1.
func validateVDF(data []byte, w io.Writer, terminator bool, options vdf.DecoderOptions, logger *slog.Logger) error {
	node, _, err := decodeInput(data, options, logger)
	if err != nil {
		return err
	}

	var reencoded bytes.Buffer
	if err := writeBinary(&reencoded, node, terminator); err != nil {
		return err
	}

	if bytes.Equal(data, reencoded.Bytes()) {
		fmt.Fprintln(w, "valid")
		return nil
	}

	offset := firstDifference(data, reencoded.Bytes())
	fmt.Fprintf(w, "not canonical: first difference at byte %d (input %d bytes, re-encoded %d bytes)\n",
		offset, len(data), reencoded.Len())
	return &cli.ExitError{Code: 1}
}

// firstDifference returns the index of the first byte at which a and b
// differ, or the length of the shorter one if it is a prefix of the
// other.
func firstDifference(a, b []byte) int {
	limit := min(len(a), len(b))
	for offset := range limit {
		if a[offset] != b[offset] {
			return offset
		}
	}
	return limit
}
