// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/vdf/lib/vdf"
)

// EnvironmentVariable names the variable consulted when no --config
// flag is given.
const EnvironmentVariable = "VDF_CONFIG"

// Config is the configuration for the vdf command.
type Config struct {
	// Output configures how decoded trees are rendered.
	Output OutputConfig `yaml:"output"`

	// Decoder configures binary decoding.
	Decoder DecoderConfig `yaml:"decoder"`

	// Files configures how binary files are written.
	Files FilesConfig `yaml:"files"`

	// Show configures "vdf show".
	Show ShowConfig `yaml:"show"`
}

// OutputConfig configures document output.
type OutputConfig struct {
	// Format is the default document format for "vdf decode" and the
	// default input format for "vdf encode".
	// Values: json, jsonc, yaml, cbor, diag. Default: json
	Format string `yaml:"format"`

	// Indent is the JSON/YAML indentation width. Default: 2
	Indent int `yaml:"indent"`

	// Compact writes single-line JSON. Default: false
	Compact bool `yaml:"compact"`
}

// DecoderConfig configures binary decoding.
type DecoderConfig struct {
	// MaxDepth bounds list nesting. Negative disables the bound.
	// Default: vdf.DefaultMaxDepth
	MaxDepth int `yaml:"max_depth"`
}

// FilesConfig configures binary output.
type FilesConfig struct {
	// Terminator appends the extra 0x08 that Steam expects after the
	// root list. Default: true
	Terminator bool `yaml:"terminator"`
}

// ShowConfig configures the tree view.
type ShowConfig struct {
	// Color selects styled output.
	// Values: auto (only on a terminal), always, never. Default: auto
	Color string `yaml:"color"`
}

// Default returns the configuration used when no file is given, and the
// base that a loaded file is merged into.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "json",
			Indent: 2,
		},
		Decoder: DecoderConfig{
			MaxDepth: vdf.DefaultMaxDepth,
		},
		Files: FilesConfig{
			Terminator: true,
		},
		Show: ShowConfig{
			Color: "auto",
		},
	}
}

// Load loads configuration from the VDF_CONFIG environment variable.
// It fails if the variable is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your vdf.yaml config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// Resolve returns the configuration for a command invocation: the file
// named by flagPath if set, else the file named by VDF_CONFIG if set,
// else Default().
func Resolve(flagPath string) (*Config, error) {
	if flagPath != "" {
		return LoadFile(flagPath)
	}
	if os.Getenv(EnvironmentVariable) != "" {
		return Load()
	}
	return Default(), nil
}

// LoadFile loads configuration from path, merged over Default(), and
// validates it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	formats := []string{"json", "jsonc", "yaml", "yml", "cbor", "diag"}
	if !slices.Contains(formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of: %v", formats))
	}

	if c.Output.Indent < 0 || c.Output.Indent > 16 {
		errs = append(errs, fmt.Errorf("output.indent must be between 0 and 16, got %d", c.Output.Indent))
	}

	colors := []string{"auto", "always", "never"}
	if !slices.Contains(colors, c.Show.Color) {
		errs = append(errs, fmt.Errorf("show.color must be one of: %v", colors))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// DecoderOptions returns the vdf decoder options for this
// configuration.
func (c *Config) DecoderOptions() vdf.DecoderOptions {
	return vdf.DecoderOptions{MaxDepth: c.Decoder.MaxDepth}
}
