// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"unicode"

	"github.com/bureau-foundation/vdf/cmd/vdf/cli"
	"github.com/bureau-foundation/vdf/lib/vdf"
)

// readInput returns the contents of the file named by the only
// positional argument, or stdin when there is none or it is "-".
//
// When hexMode is true, the raw bytes are treated as hex: whitespace is
// stripped and the hex is decoded to binary.
func readInput(args []string, hexMode bool, stdin io.Reader) ([]byte, error) {
	if len(args) > 1 {
		return nil, cli.Validation("expected at most one input file, got %d arguments", len(args))
	}

	var data []byte
	if len(args) == 1 && args[0] != "-" {
		path := args[0]
		var err error
		data, err = os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("input file %s does not exist", path)
		}
		if err != nil {
			return nil, cli.Internal("read %s: %w", path, err)
		}
	} else {
		if stdin == nil {
			stdin = os.Stdin
		}
		var err error
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, cli.Internal("read stdin: %w", err)
		}
	}

	if hexMode {
		decoded, err := decodeHexInput(data)
		if err != nil {
			return nil, cli.Validation("%w", err)
		}
		data = decoded
	}
	return data, nil
}

// decodeHexInput strips whitespace from hex-encoded input and decodes
// it to binary bytes. Whitespace between hex digit pairs is allowed
// (e.g., "00 73 68" or "007368").
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}

// decodeInput decodes the root node of binary input. Bytes after the
// root node other than a single file terminator are logged and ignored.
// It returns the node and the number of bytes it occupied.
func decodeInput(data []byte, options vdf.DecoderOptions, logger *slog.Logger) (vdf.Node, int64, error) {
	if len(data) == 0 {
		return nil, 0, cli.Validation("empty input: expected shortcuts.vdf data")
	}

	options.Logger = logger
	decoder := vdf.NewDecoder(bytes.NewReader(data), options)
	node, err := decoder.Decode()
	if err != nil {
		return nil, 0, cli.Validation("decode input: %w", err)
	}
	switch node.(type) {
	case nil:
		return nil, 0, cli.Validation("input does not start with a list, string or bytes4 tag (first byte 0x%02x)", data[0])
	case vdf.EndOfList:
		return nil, 0, cli.Validation("input starts with an end-of-list tag")
	}

	consumed := decoder.Offset()
	trailing := data[consumed:]
	switch {
	case len(trailing) == 0:
		logger.Debug("input has no file terminator", "offset", consumed)
	case len(trailing) == 1 && trailing[0] == vdf.FileTerminator:
	default:
		logger.Warn("ignoring bytes after root node",
			"offset", consumed,
			"count", len(trailing),
		)
	}
	return node, consumed, nil
}
