// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/vdf/cmd/vdf/cli"
	"github.com/bureau-foundation/vdf/lib/vdf"
	"github.com/bureau-foundation/vdf/lib/vdfdoc"
)

type decodeParams struct {
	global   globalOptions
	format   string
	compact  bool
	indent   int
	hexInput bool
}

func decodeCommand(env Environment) *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Convert binary shortcuts.vdf data to JSON, YAML or CBOR",
		Description: `Read a binary shortcuts.vdf file and write it as a document.

Each node becomes an object with "kind" (list, string or bytes4),
"name", and either "value" or "children". Bytes4 values are written as
eight hex digits. The output can be edited and turned back into a
binary file with "vdf encode".

Text that is not valid UTF-8 is decoded with U+FFFD replacement
characters. Unrecognized tags inside lists are skipped; run with -v to
see where.`,
		Usage: "vdf decode [--format json|yaml|cbor|diag] [-c] [-x] [file]",
		Examples: []cli.Example{
			{
				Description: "Pretty JSON from a file",
				Command:     "vdf decode shortcuts.vdf",
			},
			{
				Description: "YAML from stdin",
				Command:     "vdf decode --format yaml < shortcuts.vdf",
			},
			{
				Description: "Decode hex bytes",
				Command:     "echo '00 72 00 08 08' | vdf decode -x",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			params.global.register(flagSet)
			flagSet.StringVarP(&params.format, "format", "f", "", "output format: json, yaml, cbor or diag (default from config, else json)")
			flagSet.BoolVarP(&params.compact, "compact", "c", false, "write single-line JSON")
			flagSet.IntVar(&params.indent, "indent", 0, "JSON and YAML indentation width (default from config, else 2)")
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

			formatName := params.format
			if formatName == "" {
				formatName = cfg.Output.Format
			}
			format, err := vdfdoc.ParseFormat(formatName)
			if err != nil {
				return cli.Validation("%w", err)
			}
			indent := params.indent
			if indent == 0 {
				indent = cfg.Output.Indent
			}

			return decodeVDF(data, env.Stdout, format, vdfdoc.RenderOptions{
				Compact: params.compact || cfg.Output.Compact,
				Indent:  indent,
			}, cfg.DecoderOptions(), logger)
		},
	}
}

// decodeVDF decodes binary data and writes its document form to w.
func decodeVDF(data []byte, w io.Writer, format vdfdoc.Format, render vdfdoc.RenderOptions, options vdf.DecoderOptions, logger *slog.Logger) error {
	node, consumed, err := decodeInput(data, options, logger)
	if err != nil {
		return err
	}

	document, err := vdfdoc.FromVDF(node)
	if err != nil {
		return cli.Internal("%w", err)
	}
	output, err := vdfdoc.Render(document, format, render)
	if err != nil {
		return cli.Validation("%w", err)
	}
	if _, err := w.Write(output); err != nil {
		return cli.Internal("write output: %w", err)
	}

	logger.Debug("decoded input",
		"bytes", consumed,
		"format", string(format),
	)
	return nil
}
