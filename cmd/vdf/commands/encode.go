// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/vdf/cmd/vdf/cli"
	"github.com/bureau-foundation/vdf/lib/vdf"
	"github.com/bureau-foundation/vdf/lib/vdfdoc"
)

type encodeParams struct {
	global       globalOptions
	from         string
	noTerminator bool
	output       string
	hexInput     bool
}

func encodeCommand(env Environment) *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Convert a JSON, YAML or CBOR document to binary shortcuts.vdf",
		Description: `Read a document in the form "vdf decode" writes and encode it as
binary shortcuts.vdf data.

JSONC input may carry comments and trailing commas. Unknown fields are
rejected in every format. By default the output ends with the extra
end-of-list byte Steam expects after the root list; --no-terminator
omits it.

With --output, the file is replaced atomically: the data is written to
a temporary file next to it and renamed into place.`,
		Usage: "vdf encode [--from json|jsonc|yaml|cbor] [--no-terminator] [-o path] [file]",
		Examples: []cli.Example{
			{
				Description: "Round-trip through JSON",
				Command:     "vdf decode shortcuts.vdf | vdf encode > copy.vdf",
			},
			{
				Description: "Write a hand-edited YAML file back in place",
				Command:     "vdf encode --from yaml shortcuts.yaml -o shortcuts.vdf",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			params.global.register(flagSet)
			flagSet.StringVar(&params.from, "from", "", "input format: json, jsonc, yaml or cbor (default: output.format from config unless it is diag, else json)")
			flagSet.BoolVar(&params.noTerminator, "no-terminator", false, "omit the trailing end-of-list byte after the root node")
			flagSet.StringVarP(&params.output, "output", "o", "", "write to this file instead of stdout")
			flagSet.BoolVarP(&params.hexInput, "hex", "x", false, "treat input as hex-encoded bytes (for CBOR)")
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

			format, err := inputFormat(params.from, cfg.Output.Format)
			if err != nil {
				return err
			}

			node, err := parseDocument(data, format)
			if err != nil {
				return err
			}

			terminator := cfg.Files.Terminator && !params.noTerminator
			if params.output != "" {
				if !terminator {
					return cli.Validation("--output always writes the file terminator").
						WithHint("Write to stdout to produce data without it.")
				}
				if err := vdf.WriteFile(params.output, node); err != nil {
					return cli.Internal("%w", err)
				}
				logger.Debug("wrote file", "path", params.output)
				return nil
			}
			return writeBinary(env.Stdout, node, terminator)
		},
	}
}

// inputFormat picks the document format for encode: the --from flag if
// given, else the configured output format, else JSON when the
// configured format cannot be parsed (diag).
func inputFormat(flagValue, configured string) (vdfdoc.Format, error) {
	if flagValue != "" {
		format, err := vdfdoc.ParseFormat(flagValue)
		if err != nil {
			return "", cli.Validation("%w", err)
		}
		return format, nil
	}
	format, err := vdfdoc.ParseFormat(configured)
	if err != nil || format == vdfdoc.FormatDiag {
		return vdfdoc.FormatJSON, nil
	}
	return format, nil
}

// parseDocument parses a document and converts it to a vdf tree.
func parseDocument(data []byte, format vdfdoc.Format) (vdf.Node, error) {
	if format == vdfdoc.FormatDiag {
		return nil, cli.Validation("diag is an output-only format")
	}
	document, err := vdfdoc.Parse(data, format)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	node, err := document.ToVDF()
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	return node, nil
}

// writeBinary encodes node to w, followed by the file terminator when
// terminator is set. The encoding is buffered so a failure leaves w
// untouched.
func writeBinary(w io.Writer, node vdf.Node, terminator bool) error {
	var buffer bytes.Buffer
	if err := vdf.EncodeNode(&buffer, node); err != nil {
		return cli.Internal("%w", err)
	}
	if terminator {
		buffer.WriteByte(vdf.FileTerminator)
	}
	if _, err := w.Write(buffer.Bytes()); err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}
