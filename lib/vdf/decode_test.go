// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vdf

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

// shortcutsBytes is a List "shortcuts" holding String AppName=Chess and
// Bytes4 tags=01020304, without the file terminator.
var shortcutsBytes = []byte{
	0x00, 's', 'h', 'o', 'r', 't', 'c', 'u', 't', 's', 0x00,
	0x01, 'A', 'p', 'p', 'N', 'a', 'm', 'e', 0x00, 'C', 'h', 'e', 's', 's', 0x00,
	0x02, 't', 'a', 'g', 's', 0x00, 0x01, 0x02, 0x03, 0x04,
	0x08,
}

var shortcutsTree = List{
	Name: "shortcuts",
	Children: []Node{
		String{Name: "AppName", Value: "Chess"},
		Bytes4{Name: "tags", Value: [4]byte{0x01, 0x02, 0x03, 0x04}},
	},
}

func TestDecodeNodeShortcuts(t *testing.T) {
	node, err := DecodeNode(bytes.NewReader(shortcutsBytes))
	if err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}
	if !Equal(node, shortcutsTree) {
		t.Errorf("DecodeNode = %#v, want %#v", node, shortcutsTree)
	}
	list := node.(List)
	if len(list.Children) != 2 {
		t.Errorf("children = %d, want 2", len(list.Children))
	}
}

func TestDecodeNodeEmptyInput(t *testing.T) {
	node, err := DecodeNode(bytes.NewReader(nil))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("DecodeNode(empty) error = %v, want io.ErrUnexpectedEOF", err)
	}
	if node != nil {
		t.Errorf("DecodeNode(empty) node = %#v, want nil", node)
	}
}

func TestDecodeNodeUnknownTopLevelTag(t *testing.T) {
	for _, tag := range []byte{0x03, 0x07, 0x09, 0xff} {
		node, err := DecodeNode(bytes.NewReader([]byte{tag, 0x00, 0x00}))
		if err != nil {
			t.Errorf("DecodeNode(0x%02x) error = %v, want nil", tag, err)
		}
		if node != nil {
			t.Errorf("DecodeNode(0x%02x) node = %#v, want nil", tag, node)
		}
	}
}

func TestDecodeNodeStandaloneEndOfList(t *testing.T) {
	node, err := DecodeNode(bytes.NewReader([]byte{0x08}))
	if err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}
	if _, ok := node.(EndOfList); !ok {
		t.Errorf("DecodeNode(0x08) = %#v, want EndOfList", node)
	}
}

func TestDecodeNodeSkipsUnknownNestedTags(t *testing.T) {
	input := []byte{
		0x00, 'r', 0x00,
		0x01, 'a', 0x00, 'x', 0x00,
		0x05,
		0x01, 'b', 0x00, 'y', 0x00,
		0x09,
		0x02, 'c', 0x00, 0x0a, 0x0b, 0x0c, 0x0d,
		0x08,
	}
	want := List{
		Name: "r",
		Children: []Node{
			String{Name: "a", Value: "x"},
			String{Name: "b", Value: "y"},
			Bytes4{Name: "c", Value: [4]byte{0x0a, 0x0b, 0x0c, 0x0d}},
		},
	}

	node, err := DecodeNode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}
	if !Equal(node, want) {
		t.Errorf("DecodeNode = %#v, want %#v", node, want)
	}
}

func TestDecodeNodeExcludesTerminators(t *testing.T) {
	input := []byte{
		0x00, 'o', 0x00,
		0x00, 'i', 0x00,
		0x00, 'e', 0x00, 0x08,
		0x08,
		0x01, 'k', 0x00, 'v', 0x00,
		0x08,
	}

	node, err := DecodeNode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}

	err = Walk(node, func(path []string, node Node) error {
		list, ok := node.(List)
		if !ok {
			return nil
		}
		for _, child := range list.Children {
			if _, isTerminator := child.(EndOfList); isTerminator {
				t.Errorf("list %v contains an EndOfList child", path)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	outer := node.(List)
	if len(outer.Children) != 2 {
		t.Fatalf("outer children = %d, want 2", len(outer.Children))
	}
	inner := outer.Children[0].(List)
	if len(inner.Children) != 1 {
		t.Errorf("inner children = %d, want 1", len(inner.Children))
	}
	if empty := inner.Children[0].(List); len(empty.Children) != 0 {
		t.Errorf("empty list children = %d, want 0", len(empty.Children))
	}
}

func TestDecodeNodeTruncated(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"tag only", []byte{0x01}},
		{"mid string name", []byte{0x01, 'A', 'p', 'p'}},
		{"mid string value", []byte{0x01, 'a', 0x00, 'C', 'h'}},
		{"mid bytes4 name", []byte{0x02, 't', 'a'}},
		{"mid bytes4 value", []byte{0x02, 't', 0x00, 0x01, 0x02}},
		{"bytes4 value missing", []byte{0x02, 't', 0x00}},
		{"list without terminator", []byte{0x00, 'r', 0x00, 0x01, 'a', 0x00, 'b', 0x00}},
		{"shortcuts cut before terminator", shortcutsBytes[:len(shortcutsBytes)-1]},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			node, err := DecodeNode(bytes.NewReader(test.input))
			if !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Errorf("error = %v, want io.ErrUnexpectedEOF", err)
			}
			if node != nil {
				t.Errorf("node = %#v, want nil on error", node)
			}
		})
	}
}

func TestDecodeNodeSourceFailure(t *testing.T) {
	failure := errors.New("disk on fire")
	source := io.MultiReader(bytes.NewReader([]byte{0x00, 'r', 0x00}), &errorReader{err: failure})

	_, err := DecodeNode(source)
	if !errors.Is(err, failure) {
		t.Errorf("error = %v, want wrapped %v", err, failure)
	}
}

// nestedLists returns depth lists nested inside each other.
func nestedLists(depth int) []byte {
	var buffer bytes.Buffer
	for range depth {
		buffer.Write([]byte{0x00, 'n', 0x00})
	}
	for range depth {
		buffer.WriteByte(0x08)
	}
	return buffer.Bytes()
}

func TestDecoderMaxDepth(t *testing.T) {
	options := DecoderOptions{MaxDepth: 3}

	if _, err := NewDecoder(bytes.NewReader(nestedLists(3)), options).Decode(); err != nil {
		t.Fatalf("Decode(depth 3): %v", err)
	}

	_, err := NewDecoder(bytes.NewReader(nestedLists(4)), options).Decode()
	if !errors.Is(err, ErrMaxDepth) {
		t.Errorf("Decode(depth 4) error = %v, want ErrMaxDepth", err)
	}
}

func TestDecoderDefaultMaxDepth(t *testing.T) {
	if _, err := DecodeNode(bytes.NewReader(nestedLists(DefaultMaxDepth))); err != nil {
		t.Fatalf("DecodeNode(DefaultMaxDepth): %v", err)
	}
	_, err := DecodeNode(bytes.NewReader(nestedLists(DefaultMaxDepth + 1)))
	if !errors.Is(err, ErrMaxDepth) {
		t.Errorf("DecodeNode(DefaultMaxDepth+1) error = %v, want ErrMaxDepth", err)
	}
}

func TestDecoderUnboundedDepth(t *testing.T) {
	decoder := NewDecoder(bytes.NewReader(nestedLists(2000)), DecoderOptions{MaxDepth: -1})
	node, err := decoder.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	depth := 0
	for {
		list := node.(List)
		depth++
		if len(list.Children) == 0 {
			break
		}
		node = list.Children[0]
	}
	if depth != 2000 {
		t.Errorf("depth = %d, want 2000", depth)
	}
}

func TestDecoderDoesNotReadAhead(t *testing.T) {
	data := append(append([]byte{}, shortcutsBytes...), FileTerminator, 'x')
	// Hide bytes.Reader's ReadByte so the decoder must use the plain
	// io.Reader path.
	source := struct{ io.Reader }{bytes.NewReader(data)}

	decoder := NewDecoder(source, DecoderOptions{})
	if _, err := decoder.Decode(); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := decoder.Offset(); got != int64(len(shortcutsBytes)) {
		t.Errorf("Offset = %d, want %d", got, len(shortcutsBytes))
	}

	remaining, err := io.ReadAll(source)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(remaining, []byte{FileTerminator, 'x'}) {
		t.Errorf("remaining = %x, want 08 78", remaining)
	}
}

func TestDecoderSequentialNodes(t *testing.T) {
	input := []byte{
		0x01, 'a', 0x00, '1', 0x00,
		0x04,
		0x02, 'b', 0x00, 0x00, 0x00, 0x00, 0x01,
	}
	decoder := NewDecoder(bytes.NewReader(input), DecoderOptions{})

	first, err := decoder.Decode()
	if err != nil || !Equal(first, String{Name: "a", Value: "1"}) {
		t.Fatalf("first Decode = %#v, %v", first, err)
	}
	second, err := decoder.Decode()
	if err != nil || second != nil {
		t.Fatalf("second Decode = %#v, %v, want nil, nil", second, err)
	}
	third, err := decoder.Decode()
	if err != nil || !Equal(third, Bytes4{Name: "b", Value: [4]byte{0, 0, 0, 1}}) {
		t.Fatalf("third Decode = %#v, %v", third, err)
	}
	if _, err := decoder.Decode(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Decode past end error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestDecoderLogsSkippedTags(t *testing.T) {
	var output bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&output, &slog.HandlerOptions{Level: slog.LevelDebug}))

	input := []byte{0x00, 'r', 0x00, 0x07, 0x08}
	node, err := NewDecoder(bytes.NewReader(input), DecoderOptions{Logger: logger}).Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !Equal(node, List{Name: "r"}) {
		t.Errorf("Decode = %#v, want empty list r", node)
	}

	logged := output.String()
	if !strings.Contains(logged, "unrecognized tag") || !strings.Contains(logged, "tag=0x07") {
		t.Errorf("log output %q does not mention the skipped tag", logged)
	}
	if !strings.Contains(logged, "offset=3") {
		t.Errorf("log output %q does not carry the tag offset", logged)
	}
}

func TestDecodeNodeLossyText(t *testing.T) {
	input := []byte{0x01, 'n', 0xfe, 0x00, 'v', 0x00}
	node, err := DecodeNode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}
	if !Equal(node, String{Name: "n�", Value: "v"}) {
		t.Errorf("DecodeNode = %#v", node)
	}
}

type errorReader struct {
	err error
}

func (r *errorReader) Read([]byte) (int, error) {
	return 0, r.err
}
