// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vdf

import (
	"fmt"
	"io"
)

// Encoder writes nodes to a byte stream. Writes go straight to the
// underlying writer; wrap it in a bufio.Writer for file output.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	sink io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{sink: w}
}

// EncodeNode writes node to w. See [Encoder.Encode].
func EncodeNode(w io.Writer, node Node) error {
	return NewEncoder(w).Encode(node)
}

// Encode writes the tag of node followed by its body. A List is closed
// with a terminator after its children. The extra terminator that
// files carry after the root list is not written.
//
// On error the writer may hold a partial node.
func (e *Encoder) Encode(node Node) error {
	switch node.(type) {
	case nil:
		return fmt.Errorf("vdf: cannot encode nil node")
	case List, String, Bytes4, EndOfList:
	default:
		// Pointers to node types satisfy Node through the value
		// receivers; reject them before anything is written.
		return fmt.Errorf("vdf: cannot encode node of type %T", node)
	}
	if err := e.writeTag(node.Kind()); err != nil {
		return err
	}

	switch typed := node.(type) {
	case List:
		if err := e.writeText("list name", typed.Name); err != nil {
			return err
		}
		for _, child := range typed.Children {
			if err := e.Encode(child); err != nil {
				return err
			}
		}
		return e.Encode(EndOfList{})

	case String:
		if err := e.writeText("string name", typed.Name); err != nil {
			return err
		}
		return e.writeText("string value", typed.Value)

	case Bytes4:
		if err := e.writeText("bytes4 name", typed.Name); err != nil {
			return err
		}
		if _, err := e.sink.Write(typed.Value[:]); err != nil {
			return fmt.Errorf("vdf: writing bytes4 %q value: %w", typed.Name, err)
		}
		return nil

	case EndOfList:
		return nil

	default:
		return fmt.Errorf("vdf: cannot encode node of type %T", node)
	}
}

func (e *Encoder) writeTag(kind Kind) error {
	if _, err := e.sink.Write([]byte{TagOf(kind)}); err != nil {
		return fmt.Errorf("vdf: writing %s tag: %w", kind, err)
	}
	return nil
}

func (e *Encoder) writeText(field, text string) error {
	if err := WriteText(e.sink, text); err != nil {
		return fmt.Errorf("vdf: writing %s: %w", field, err)
	}
	return nil
}
