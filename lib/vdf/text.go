// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vdf

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// replacement is substituted for byte sequences that are not valid
// UTF-8 and for NUL bytes inside text being written.
const replacement = "�"

// ReadText reads a NUL-terminated string from source. The terminator is
// consumed and not included in the result. Bytes that are not valid
// UTF-8 are replaced with U+FFFD. If the source ends before a
// terminator, the error wraps io.ErrUnexpectedEOF.
func ReadText(source io.ByteReader) (string, error) {
	var raw []byte
	for {
		value, err := source.ReadByte()
		if err != nil {
			return "", unexpected(err)
		}
		if value == 0x00 {
			return lossyText(raw), nil
		}
		raw = append(raw, value)
	}
}

// WriteText writes text followed by a NUL terminator. Invalid UTF-8 in
// text is replaced with U+FFFD and embedded NUL bytes are replaced with
// U+FFFD, so the output is always a single well-formed field.
func WriteText(sink io.Writer, text string) error {
	encoded := append(lossyBytes(text), 0x00)
	_, err := sink.Write(encoded)
	return err
}

// lossyText decodes raw as UTF-8, replacing invalid sequences.
func lossyText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), replacement)
	}
	return string(decoded)
}

// lossyBytes returns the on-disk form of text: valid UTF-8 with no NUL
// bytes.
func lossyBytes(text string) []byte {
	encoded := []byte(lossyText([]byte(text)))
	if bytes.IndexByte(encoded, 0x00) >= 0 {
		encoded = bytes.ReplaceAll(encoded, []byte{0x00}, []byte(replacement))
	}
	return encoded
}

// unexpected converts a clean end of stream into io.ErrUnexpectedEOF.
// Every read in this package happens where the format requires more
// data, so running out is never a normal end.
func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
