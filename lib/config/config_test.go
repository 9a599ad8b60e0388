// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/vdf/lib/vdf"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vdf.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Format != "json" {
		t.Errorf("expected output.format=json, got %s", cfg.Output.Format)
	}
	if cfg.Decoder.MaxDepth != vdf.DefaultMaxDepth {
		t.Errorf("expected decoder.max_depth=%d, got %d", vdf.DefaultMaxDepth, cfg.Decoder.MaxDepth)
	}
	if !cfg.Files.Terminator {
		t.Error("expected files.terminator=true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad_RequiresEnvironmentVariable(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when VDF_CONFIG not set, got nil")
	}
	if !strings.HasPrefix(err.Error(), "VDF_CONFIG environment variable not set") {
		t.Errorf("unexpected error message %q", err)
	}
}

func TestLoad_WithEnvironmentVariable(t *testing.T) {
	path := writeConfig(t, "output:\n  format: yaml\n")
	t.Setenv(EnvironmentVariable, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("expected output.format=yaml, got %s", cfg.Output.Format)
	}
}

func TestLoadFile_MergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
output:
  indent: 4
decoder:
  max_depth: 16
files:
  terminator: false
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("output.format should keep its default, got %s", cfg.Output.Format)
	}
	if cfg.Output.Indent != 4 {
		t.Errorf("expected output.indent=4, got %d", cfg.Output.Indent)
	}
	if cfg.Files.Terminator {
		t.Error("expected files.terminator=false")
	}
	if got := cfg.DecoderOptions().MaxDepth; got != 16 {
		t.Errorf("DecoderOptions().MaxDepth = %d, want 16", got)
	}
}

func TestLoadFile_EmptyFile(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFile(empty): %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("empty file should yield defaults, got format %s", cfg.Output.Format)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "output:\n  colour: red\n", "colour"},
		{"bad format", "output:\n  format: toml\n", "output.format"},
		{"bad color", "show:\n  color: rainbow\n", "show.color"},
		{"bad indent", "output:\n  indent: 40\n", "output.indent"},
		{"not yaml", "output: [\n", "parsing config"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, test.content))
			if err == nil {
				t.Fatal("LoadFile should fail")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error %q does not mention %q", err, test.want)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadFile should fail for a missing file")
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Output.Format = "xml"
	cfg.Show.Color = "plaid"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate should fail")
	}
	for _, want := range []string{"output.format", "show.color"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve without config: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Resolve without config should return defaults")
	}

	environmentPath := writeConfig(t, "output:\n  format: cbor\n")
	t.Setenv(EnvironmentVariable, environmentPath)
	cfg, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve from environment: %v", err)
	}
	if cfg.Output.Format != "cbor" {
		t.Errorf("Resolve should use VDF_CONFIG, got format %s", cfg.Output.Format)
	}

	flagPath := writeConfig(t, "output:\n  format: yaml\n")
	cfg, err = Resolve(flagPath)
	if err != nil {
		t.Fatalf("Resolve from flag: %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("--config should win over VDF_CONFIG, got format %s", cfg.Output.Format)
	}
}
