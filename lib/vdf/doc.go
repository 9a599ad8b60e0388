// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package vdf reads and writes the binary key/value tree format used by
// Steam's shortcuts.vdf.
//
// The format is self-describing and length-implicit: every node starts
// with a one-byte tag, names and string values are NUL-terminated, and
// lists are closed by a sentinel tag rather than a count.
//
//	node       := tag body
//	List body  := name node* 0x08
//	String body:= name value
//	Bytes4 body:= name byte[4]
//
// A decoded tree is built from four node types: [List], [String],
// [Bytes4] and [EndOfList]. The terminator only exists on the wire. The
// decoder consumes it when closing a list and never stores it as a
// child; the encoder writes it back after every list's children.
//
// Unrecognized tag bytes are not errors. [DecodeNode] returns a nil
// [Node] with a nil error for them, and inside a list they are skipped.
// Text fields are decoded as UTF-8 with invalid sequences replaced by
// U+FFFD, so a file whose strings are not valid UTF-8 does not
// round-trip byte for byte.
//
// Files on disk carry one extra 0x08 after the root list. [EncodeNode]
// does not write it; [WriteFile] and [Marshal] do.
//
//	root, err := vdf.ReadFile(path, vdf.DecoderOptions{})
//	list := root.(vdf.List)
//	list = list.Remove(len(list.Children) - 1)
//	err = vdf.WriteFile(path, list)
package vdf
