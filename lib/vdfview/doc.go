// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package vdfview renders a [vdf.Node] tree as an indented, optionally
// colored listing for terminals:
//
//	shortcuts (1)
//	└── 0 (3)
//	    ├── appid    2a 00 00 00 (42)
//	    ├── AppName  "Hello"
//	    └── tags (0)
//
// Bytes4 values are shown as hex followed by their little-endian
// unsigned value, which is how Steam stores app IDs and timestamps.
// Styling goes through a lipgloss renderer bound to an explicit termenv
// profile, so output is deterministic regardless of the environment.
package vdfview
