// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger writing to stderr. When
// stderr is a terminal it uses slog.TextHandler for human-readable
// output; when piped or redirected it uses slog.JSONHandler.
//
// level is consulted on every record, so passing a *slog.LevelVar lets
// a --verbose flag parsed later lower the threshold to debug.
func NewCommandLogger(level slog.Leveler) *slog.Logger {
	return NewLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), level)
}

// NewLogger is NewCommandLogger with the destination and handler
// choice made explicit.
func NewLogger(w io.Writer, human bool, level slog.Leveler) *slog.Logger {
	if level == nil {
		level = slog.LevelInfo
	}
	options := &slog.HandlerOptions{Level: level}
	if human {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}
