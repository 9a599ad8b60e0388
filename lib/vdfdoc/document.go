// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vdfdoc

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bureau-foundation/vdf/lib/vdf"
)

// Node is the document form of a vdf node. Struct tags use `json`
// (also honored by the CBOR codec) and `yaml`.
type Node struct {
	Kind     string `json:"kind"               yaml:"kind"`
	Name     string `json:"name"               yaml:"name"`
	Value    string `json:"value,omitempty"    yaml:"value,omitempty"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// FromVDF converts a decoded tree into its document form. A standalone
// EndOfList has no document form and is rejected.
func FromVDF(node vdf.Node) (Node, error) {
	switch typed := node.(type) {
	case vdf.List:
		document := Node{Kind: vdf.KindList.String(), Name: typed.Name}
		for _, child := range typed.Children {
			converted, err := FromVDF(child)
			if err != nil {
				return Node{}, err
			}
			document.Children = append(document.Children, converted)
		}
		return document, nil
	case vdf.String:
		return Node{Kind: vdf.KindString.String(), Name: typed.Name, Value: typed.Value}, nil
	case vdf.Bytes4:
		return Node{Kind: vdf.KindBytes4.String(), Name: typed.Name, Value: hex.EncodeToString(typed.Value[:])}, nil
	case nil:
		return Node{}, fmt.Errorf("vdfdoc: no node to convert")
	default:
		return Node{}, fmt.Errorf("vdfdoc: %s has no document form", node.Kind())
	}
}

// ToVDF converts the document back into a vdf tree. Errors name the
// path of the offending node.
func (document Node) ToVDF() (vdf.Node, error) {
	return document.toVDF(nil)
}

func (document Node) toVDF(parents []string) (vdf.Node, error) {
	path := append(parents, document.Name)

	switch document.Kind {
	case vdf.KindList.String():
		if document.Value != "" {
			return nil, pathError(path, "list has a value")
		}
		list := vdf.List{Name: document.Name}
		for _, child := range document.Children {
			converted, err := child.toVDF(path)
			if err != nil {
				return nil, err
			}
			list.Children = append(list.Children, converted)
		}
		return list, nil

	case vdf.KindString.String():
		if len(document.Children) > 0 {
			return nil, pathError(path, "string has children")
		}
		return vdf.String{Name: document.Name, Value: document.Value}, nil

	case vdf.KindBytes4.String():
		if len(document.Children) > 0 {
			return nil, pathError(path, "bytes4 has children")
		}
		decoded, err := hex.DecodeString(document.Value)
		if err != nil {
			return nil, pathError(path, "bytes4 value %q is not hex: %v", document.Value, err)
		}
		if len(decoded) != 4 {
			return nil, pathError(path, "bytes4 value %q is %d bytes, want 4", document.Value, len(decoded))
		}
		node := vdf.Bytes4{Name: document.Name}
		copy(node.Value[:], decoded)
		return node, nil

	default:
		return nil, pathError(path, "unknown kind %q (want list, string or bytes4)", document.Kind)
	}
}

func pathError(path []string, format string, args ...any) error {
	return fmt.Errorf("vdfdoc: %s: %s", strings.Join(path, "/"), fmt.Sprintf(format, args...))
}
