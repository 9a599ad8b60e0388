// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the vdf command tree. Every subcommand reads
// its input from a trailing file argument or from stdin and writes
// results to stdout, so the tree can be driven in tests with in-memory
// streams through [Environment].
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/vdf/cmd/vdf/cli"
	"github.com/bureau-foundation/vdf/lib/config"
	"github.com/bureau-foundation/vdf/lib/version"
)

// Environment carries the process streams the commands use.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer

	// Stderr receives help output. Nil means os.Stderr.
	Stderr io.Writer

	// Level is the threshold of the logger passed to Execute. --verbose
	// lowers it to debug. Nil ignores --verbose.
	Level *slog.LevelVar

	// Terminal reports whether Stdout is a terminal, for "vdf show
	// --color auto".
	Terminal bool
}

// Root builds the complete vdf command tree.
func Root(env Environment) *cli.Command {
	var showVersion bool
	root := &cli.Command{
		Name: "vdf",
		Description: `vdf: read and write Steam's binary shortcuts.vdf format.

Convert shortcut files to JSON, YAML or CBOR documents and back, print
them as a tree, hash them, and check that they survive a round trip.
Flags such as --config and --verbose follow the subcommand name.`,
		Output: env.Stderr,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("vdf", pflag.ContinueOnError)
			flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")
			return flagSet
		},
		Subcommands: []*cli.Command{
			decodeCommand(env),
			encodeCommand(env),
			showCommand(env),
			hashCommand(env),
			validateCommand(env),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					if len(args) > 0 {
						return cli.Validation("version takes no arguments, got %q", args[0])
					}
					fmt.Fprintf(env.Stdout, "vdf %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Dump Steam shortcuts as YAML",
				Command:     "vdf decode --format yaml ~/.steam/steam/userdata/<id>/config/shortcuts.vdf",
			},
			{
				Description: "Edit shortcuts as JSON and write them back",
				Command:     "vdf encode --from jsonc shortcuts.jsonc --output shortcuts.vdf",
			},
			{
				Description: "Browse a shortcuts file",
				Command:     "vdf show shortcuts.vdf",
			},
		},
	}
	root.Run = func(_ context.Context, args []string, _ *slog.Logger) error {
		if showVersion {
			fmt.Fprintf(env.Stdout, "vdf %s\n", version.Full())
			return nil
		}
		root.PrintHelp(helpOutput(env))
		return cli.Validation("subcommand required")
	}
	return root
}

func helpOutput(env Environment) io.Writer {
	if env.Stderr != nil {
		return env.Stderr
	}
	return os.Stderr
}

// globalOptions are the flags every subcommand accepts.
type globalOptions struct {
	configPath string
	verbose    bool
}

func (o *globalOptions) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&o.configPath, "config", "", "path to a vdf.yaml config file (default: $"+config.EnvironmentVariable+")")
	flagSet.BoolVarP(&o.verbose, "verbose", "v", false, "log debug records")
}

// setup applies --verbose and resolves the configuration.
func (o *globalOptions) setup(env Environment, logger *slog.Logger) (*config.Config, error) {
	if o.verbose && env.Level != nil {
		env.Level.Set(slog.LevelDebug)
	}

	cfg, err := config.Resolve(o.configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("%w", err)
		}
		return nil, cli.Validation("%w", err)
	}
	logger.Debug("configuration resolved",
		"format", cfg.Output.Format,
		"max_depth", cfg.Decoder.MaxDepth,
		"terminator", cfg.Files.Terminator,
	)
	return cfg, nil
}
