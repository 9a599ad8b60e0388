// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vdf

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReadText(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"ascii", []byte("AppName\x00"), "AppName"},
		{"empty", []byte{0x00}, ""},
		{"utf8", []byte("Café\x00"), "Café"},
		{"invalid byte replaced", []byte{'a', 0xff, 'b', 0x00}, "a�b"},
		{"truncated sequence replaced once", []byte{'a', 0xe2, 0x82, 0x00}, "a\uFFFD"},
		{"incomplete four-byte sequence", []byte{'a', 0xf0, 0x90, 0x80, 'b', 0x00}, "a\uFFFDb"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ReadText(bytes.NewReader(test.input))
			if err != nil {
				t.Fatalf("ReadText: %v", err)
			}
			if got != test.want {
				t.Errorf("ReadText = %q, want %q", got, test.want)
			}
		})
	}
}

func TestReadTextStopsAtTerminator(t *testing.T) {
	reader := bytes.NewReader([]byte("name\x00rest"))
	got, err := ReadText(reader)
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if got != "name" {
		t.Errorf("ReadText = %q, want %q", got, "name")
	}
	remaining, _ := io.ReadAll(reader)
	if string(remaining) != "rest" {
		t.Errorf("remaining = %q, want %q", remaining, "rest")
	}
}

func TestReadTextWithoutTerminator(t *testing.T) {
	for _, input := range [][]byte{nil, []byte("unterminated")} {
		_, err := ReadText(bytes.NewReader(input))
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("ReadText(%q) error = %v, want io.ErrUnexpectedEOF", input, err)
		}
	}
}

func TestWriteText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"ascii", "Chess", []byte("Chess\x00")},
		{"empty", "", []byte{0x00}},
		{"invalid utf8 replaced", "a\xffb", []byte("a�b\x00")},
		{"embedded nul replaced", "x\x00y", []byte("x�y\x00")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buffer bytes.Buffer
			if err := WriteText(&buffer, test.input); err != nil {
				t.Fatalf("WriteText: %v", err)
			}
			if !bytes.Equal(buffer.Bytes(), test.want) {
				t.Errorf("WriteText(%q) = %x, want %x", test.input, buffer.Bytes(), test.want)
			}
		})
	}
}

func TestWriteTextSinkFailure(t *testing.T) {
	err := WriteText(&failingWriter{remaining: 0}, "text")
	if !errors.Is(err, errSinkFull) {
		t.Errorf("WriteText error = %v, want errSinkFull", err)
	}
}

var errSinkFull = errors.New("sink full")

// failingWriter accepts remaining bytes, then fails every write.
type failingWriter struct {
	remaining int
	written   bytes.Buffer
}

func (w *failingWriter) Write(data []byte) (int, error) {
	if len(data) > w.remaining {
		accepted := w.remaining
		w.written.Write(data[:accepted])
		w.remaining = 0
		return accepted, errSinkFull
	}
	w.remaining -= len(data)
	w.written.Write(data)
	return len(data), nil
}
