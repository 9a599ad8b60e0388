// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vdfview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the color palette for tree output. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	ListName    lipgloss.Color
	FieldName   lipgloss.Color
	StringValue lipgloss.Color
	BytesValue  lipgloss.Color

	// FaintText covers tree guides, child counts and decoded integers.
	FaintText lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	ListName:    lipgloss.Color("75"),
	FieldName:   lipgloss.Color("252"),
	StringValue: lipgloss.Color("114"),
	BytesValue:  lipgloss.Color("179"),
	FaintText:   lipgloss.Color("242"),
}

// ColorProfile maps a color mode ("auto", "always" or "never") to the
// profile Render should use. In auto mode color is used only when
// terminal is true.
func ColorProfile(mode string, terminal bool) (termenv.Profile, error) {
	switch mode {
	case "always":
		return termenv.ANSI256, nil
	case "never":
		return termenv.Ascii, nil
	case "auto", "":
		if terminal {
			return termenv.ANSI256, nil
		}
		return termenv.Ascii, nil
	default:
		return termenv.Ascii, fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
}

type styles struct {
	list  lipgloss.Style
	field lipgloss.Style
	text  lipgloss.Style
	bytes lipgloss.Style
	faint lipgloss.Style
}

func newStyles(renderer *lipgloss.Renderer, theme Theme) styles {
	return styles{
		list:  renderer.NewStyle().Bold(true).Foreground(theme.ListName),
		field: renderer.NewStyle().Foreground(theme.FieldName),
		text:  renderer.NewStyle().Foreground(theme.StringValue),
		bytes: renderer.NewStyle().Foreground(theme.BytesValue),
		faint: renderer.NewStyle().Foreground(theme.FaintText),
	}
}
