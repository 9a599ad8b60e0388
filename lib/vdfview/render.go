// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vdfview

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/vdf/lib/vdf"
)

// Options controls rendering.
type Options struct {
	// Theme supplies colors. The zero Theme means DefaultTheme.
	Theme Theme

	// Profile selects the escape sequences emitted. termenv.Ascii
	// produces plain text. The zero value is termenv.TrueColor.
	Profile termenv.Profile
}

// Render writes node and its descendants to w, one node per line.
func Render(w io.Writer, node vdf.Node, options Options) error {
	if node == nil {
		return fmt.Errorf("vdfview: cannot render nil node")
	}
	theme := options.Theme
	if theme == (Theme{}) {
		theme = DefaultTheme
	}

	// SetColorProfile is needed as well as WithProfile: without it the
	// renderer re-detects the profile from the environment.
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(options.Profile))
	renderer.SetColorProfile(options.Profile)

	view := &treeView{styles: newStyles(renderer, theme)}
	view.writeNode(node, "", 0)
	_, err := io.WriteString(w, view.output.String())
	return err
}

type treeView struct {
	styles styles
	output strings.Builder
}

// writeNode finishes the current line with node and writes any
// children below it. childPrefix carries the guides of all ancestors.
// nameWidth pads field names so sibling values line up.
func (v *treeView) writeNode(node vdf.Node, childPrefix string, nameWidth int) {
	switch typed := node.(type) {
	case vdf.List:
		v.output.WriteString(v.styles.list.Render(displayName(typed.Name)))
		v.output.WriteString(v.styles.faint.Render(fmt.Sprintf(" (%d)", len(typed.Children))))
		v.output.WriteByte('\n')
		v.writeChildren(typed.Children, childPrefix)

	case vdf.String:
		v.writeField(typed.Name, nameWidth)
		v.output.WriteString(v.styles.text.Render(strconv.Quote(typed.Value)))
		v.output.WriteByte('\n')

	case vdf.Bytes4:
		v.writeField(typed.Name, nameWidth)
		v.output.WriteString(v.styles.bytes.Render(fmt.Sprintf("% x", typed.Value[:])))
		v.output.WriteString(v.styles.faint.Render(fmt.Sprintf(" (%d)", binary.LittleEndian.Uint32(typed.Value[:]))))
		v.output.WriteByte('\n')

	default:
		v.output.WriteString(v.styles.faint.Render(fmt.Sprintf("<%s>", node.Kind())))
		v.output.WriteByte('\n')
	}
}

func (v *treeView) writeChildren(children []vdf.Node, prefix string) {
	nameWidth := 0
	for _, child := range children {
		if _, isList := child.(vdf.List); isList {
			continue
		}
		nameWidth = max(nameWidth, ansi.StringWidth(displayName(vdf.NameOf(child))))
	}

	for index, child := range children {
		branch, indent := "├── ", "│   "
		if index == len(children)-1 {
			branch, indent = "└── ", "    "
		}
		v.output.WriteString(prefix)
		v.output.WriteString(v.styles.faint.Render(branch))
		v.writeNode(child, prefix+v.styles.faint.Render(indent), nameWidth)
	}
}

func (v *treeView) writeField(name string, nameWidth int) {
	shown := displayName(name)
	v.output.WriteString(v.styles.field.Render(shown))
	v.output.WriteString(strings.Repeat(" ", max(nameWidth-ansi.StringWidth(shown), 0)+2))
}

// displayName quotes names that would otherwise be invisible.
func displayName(name string) string {
	if name == "" || strings.TrimSpace(name) != name {
		return strconv.Quote(name)
	}
	return name
}
