// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vdf

import "fmt"

// Kind identifies the type of a node without its data.
type Kind uint8

const (
	KindList Kind = iota
	KindString
	KindBytes4
	KindEndOfList
)

// Wire tags. These values are fixed by the file format.
const (
	TagList      byte = 0x00
	TagString    byte = 0x01
	TagBytes4    byte = 0x02
	TagEndOfList byte = 0x08
)

// String returns the lower-case name of the kind.
func (kind Kind) String() string {
	switch kind {
	case KindList:
		return "list"
	case KindString:
		return "string"
	case KindBytes4:
		return "bytes4"
	case KindEndOfList:
		return "end_of_list"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(kind))
	}
}

// TagOf returns the wire tag for kind. It panics for values outside the
// four Kind constants; no Node reports such a kind.
func TagOf(kind Kind) byte {
	switch kind {
	case KindList:
		return TagList
	case KindString:
		return TagString
	case KindBytes4:
		return TagBytes4
	case KindEndOfList:
		return TagEndOfList
	default:
		panic(fmt.Sprintf("vdf: no tag for kind %d", uint8(kind)))
	}
}

// KindOf classifies a tag byte. ok is false for any byte that is not a
// defined tag; callers treat that as "no data here", not as an error.
func KindOf(tag byte) (kind Kind, ok bool) {
	switch tag {
	case TagList:
		return KindList, true
	case TagString:
		return KindString, true
	case TagBytes4:
		return KindBytes4, true
	case TagEndOfList:
		return KindEndOfList, true
	default:
		return 0, false
	}
}
