// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vdf

import "errors"

// Node is one element of a decoded tree. The set of implementations is
// closed: [List], [String], [Bytes4] and [EndOfList], held by value.
// Pointers to them also satisfy the interface but are not valid nodes:
// the encoder rejects them and [Equal] reports them unequal to
// everything. Use a type switch to dispatch on the concrete type.
type Node interface {
	// Kind reports which of the four node types this is.
	Kind() Kind

	isNode()
}

// List is a named, ordered sequence of child nodes. Children never
// contains an EndOfList: the terminator is implied by the end of the
// slice.
type List struct {
	Name     string
	Children []Node
}

// String is a named text value.
type String struct {
	Name  string
	Value string
}

// Bytes4 is a named four-byte value. shortcuts.vdf uses it for
// little-endian integers (appid, LastPlayTime) and booleans.
type Bytes4 struct {
	Name  string
	Value [4]byte
}

// EndOfList is the list terminator. It appears as a standalone result
// of [DecodeNode] when the source is positioned at a terminator, and
// can be passed to [EncodeNode] to emit a bare 0x08.
type EndOfList struct{}

func (List) Kind() Kind      { return KindList }
func (String) Kind() Kind    { return KindString }
func (Bytes4) Kind() Kind    { return KindBytes4 }
func (EndOfList) Kind() Kind { return KindEndOfList }

func (List) isNode()      {}
func (String) isNode()    {}
func (Bytes4) isNode()    {}
func (EndOfList) isNode() {}

// NameOf returns the name of node, or "" for EndOfList and nil.
func NameOf(node Node) string {
	switch typed := node.(type) {
	case List:
		return typed.Name
	case String:
		return typed.Name
	case Bytes4:
		return typed.Name
	default:
		return ""
	}
}

// Index returns the position of the first child named name, or -1.
func (list List) Index(name string) int {
	for index, child := range list.Children {
		if NameOf(child) == name {
			return index
		}
	}
	return -1
}

// Child returns the first child named name.
func (list List) Child(name string) (Node, bool) {
	index := list.Index(name)
	if index < 0 {
		return nil, false
	}
	return list.Children[index], true
}

// Remove returns a copy of list without the child at index. The
// receiver's Children slice is not modified. Remove panics if index is
// out of range, like a slice expression would.
func (list List) Remove(index int) List {
	if index < 0 || index >= len(list.Children) {
		panic("vdf: List.Remove index out of range")
	}
	children := make([]Node, 0, len(list.Children)-1)
	children = append(children, list.Children[:index]...)
	children = append(children, list.Children[index+1:]...)
	return List{Name: list.Name, Children: children}
}

// SkipChildren can be returned by a [WalkFunc] to skip the children of
// the node it was called with. Walk itself never returns it.
var SkipChildren = errors.New("skip children")

// WalkFunc is called by [Walk] for every node. path holds the names of
// the enclosing lists followed by the node's own name.
type WalkFunc func(path []string, node Node) error

// Walk visits node and its descendants depth-first in pre-order. The
// path slice passed to fn is reused between calls; copy it to retain
// it. Walk stops at the first error from fn other than SkipChildren.
func Walk(node Node, fn WalkFunc) error {
	return walk(nil, node, fn)
}

func walk(path []string, node Node, fn WalkFunc) error {
	path = append(path, NameOf(node))
	if err := fn(path, node); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	list, isList := node.(List)
	if !isList {
		return nil
	}
	for _, child := range list.Children {
		if err := walk(path, child, fn); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether a and b describe the same tree. A nil and an
// empty Children slice are equal.
func Equal(a, b Node) bool {
	switch left := a.(type) {
	case nil:
		return b == nil
	case List:
		right, ok := b.(List)
		if !ok || left.Name != right.Name || len(left.Children) != len(right.Children) {
			return false
		}
		for index := range left.Children {
			if !Equal(left.Children[index], right.Children[index]) {
				return false
			}
		}
		return true
	case String:
		right, ok := b.(String)
		return ok && left == right
	case Bytes4:
		right, ok := b.(Bytes4)
		return ok && left == right
	case EndOfList:
		_, ok := b.(EndOfList)
		return ok
	default:
		return false
	}
}
