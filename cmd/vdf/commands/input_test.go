// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bureau-foundation/vdf/lib/testutil"
)

func TestDecodeHexInput(t *testing.T) {
	want := []byte{0x00, 0x72, 0x00, 0x08, 0x08}
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{name: "lowercase hex", input: "0072000808", want: want},
		{name: "uppercase hex", input: "0A0B", want: []byte{0x0a, 0x0b}},
		{name: "hex with spaces", input: "00 72 00 08 08", want: want},
		{name: "hex with newlines", input: "0072\n00\n0808\n", want: want},
		{name: "odd length", input: "007", wantErr: true},
		{name: "invalid hex", input: "not hex data", wantErr: true},
		{name: "empty after whitespace", input: "   \n\t  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeHexInput([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Errorf("decodeHexInput(%q) = % x, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeHexInput(%q): %v", tt.input, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("decodeHexInput(%q) = % x, want % x", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadInputPrefersFileOverStdin(t *testing.T) {
	path := testutil.WriteFile(t, "input.vdf", []byte("from file"))

	got, err := readInput([]string{path}, false, strings.NewReader("from stdin"))
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if string(got) != "from file" {
		t.Errorf("readInput = %q, want file contents", got)
	}

	got, err = readInput(nil, false, strings.NewReader("from stdin"))
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if string(got) != "from stdin" {
		t.Errorf("readInput = %q, want stdin contents", got)
	}
}

func TestFirstDifference(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 3},
		{"abc", "abd", 2},
		{"ab", "abc", 2},
		{"xbc", "abc", 0},
	}
	for _, test := range tests {
		if got := firstDifference([]byte(test.a), []byte(test.b)); got != test.want {
			t.Errorf("firstDifference(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}
