// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vdfdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/vdf/lib/codec"
)

// Format names a document serialization.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
	FormatCBOR  Format = "cbor"

	// FormatDiag renders CBOR diagnostic notation. Output only.
	FormatDiag Format = "diag"
)

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "jsonc":
		return FormatJSONC, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	case "diag":
		return FormatDiag, nil
	default:
		return "", fmt.Errorf("unknown document format %q (want json, jsonc, yaml, cbor or diag)", name)
	}
}

// Parse decodes a document in the given format. Unknown fields are
// rejected in every format.
func Parse(data []byte, format Format) (Node, error) {
	var document Node
	switch format {
	case FormatJSON:
		if err := decodeJSON(data, &document); err != nil {
			return Node{}, fmt.Errorf("parsing JSON document: %w", err)
		}
	case FormatJSONC:
		if err := decodeJSON(jsonc.ToJSON(data), &document); err != nil {
			return Node{}, fmt.Errorf("parsing JSONC document: %w", err)
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&document); err != nil {
			return Node{}, fmt.Errorf("parsing YAML document: %w", err)
		}
	case FormatCBOR:
		if err := codec.Unmarshal(data, &document); err != nil {
			return Node{}, fmt.Errorf("parsing CBOR document: %w", err)
		}
	default:
		return Node{}, fmt.Errorf("cannot parse %q documents", format)
	}
	return document, nil
}

func decodeJSON(data []byte, document *Node) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(document); err != nil {
		return err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected data after document")
	}
	return nil
}

// RenderOptions controls text output.
type RenderOptions struct {
	// Compact writes JSON on a single line. YAML and CBOR ignore it.
	Compact bool

	// Indent is the JSON and YAML indentation width. Zero means 2.
	Indent int
}

// Render serializes document. JSON and YAML output ends with a newline.
func Render(document Node, format Format, options RenderOptions) ([]byte, error) {
	indent := options.Indent
	if indent <= 0 {
		indent = 2
	}

	switch format {
	case FormatJSON, FormatJSONC:
		var output []byte
		var err error
		if options.Compact {
			output, err = json.Marshal(document)
		} else {
			output, err = json.MarshalIndent(document, "", strings.Repeat(" ", indent))
		}
		if err != nil {
			return nil, fmt.Errorf("encoding JSON document: %w", err)
		}
		return append(output, '\n'), nil

	case FormatYAML:
		var buffer bytes.Buffer
		encoder := yaml.NewEncoder(&buffer)
		encoder.SetIndent(indent)
		if err := encoder.Encode(document); err != nil {
			return nil, fmt.Errorf("encoding YAML document: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("encoding YAML document: %w", err)
		}
		return buffer.Bytes(), nil

	case FormatCBOR:
		output, err := codec.Marshal(document)
		if err != nil {
			return nil, fmt.Errorf("encoding CBOR document: %w", err)
		}
		return output, nil

	case FormatDiag:
		data, err := codec.Marshal(document)
		if err != nil {
			return nil, fmt.Errorf("encoding CBOR document: %w", err)
		}
		diagnostic, err := codec.Diagnose(data)
		if err != nil {
			return nil, fmt.Errorf("diagnosing CBOR document: %w", err)
		}
		return []byte(diagnostic + "\n"), nil

	default:
		return nil, fmt.Errorf("cannot render %q documents", format)
	}
}
