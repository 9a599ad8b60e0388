// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vdf

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// DefaultMaxDepth is the list nesting limit used when
// DecoderOptions.MaxDepth is zero. Real shortcuts.vdf files nest three
// levels deep (root, shortcut, tags).
const DefaultMaxDepth = 512

// ErrMaxDepth is returned (wrapped) when lists nest deeper than the
// decoder's limit.
var ErrMaxDepth = errors.New("vdf: list nesting exceeds maximum depth")

// DecoderOptions configures a [Decoder].
type DecoderOptions struct {
	// MaxDepth bounds how many lists may be nested inside each other.
	// Zero means DefaultMaxDepth. A negative value removes the bound,
	// in which case deeply nested input recurses without limit.
	MaxDepth int

	// Logger receives debug records for skipped tags. Nil discards.
	Logger *slog.Logger
}

// Decoder reads nodes from a byte stream. It reads exactly the bytes
// that make up each node: when the source is not an io.ByteReader it is
// read one byte per call, so anything after a node remains unread.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	source   io.ByteReader
	offset   int64
	maxDepth int
	logger   *slog.Logger
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader, options DecoderOptions) *Decoder {
	source, ok := r.(io.ByteReader)
	if !ok {
		source = &singleByteReader{reader: r}
	}
	maxDepth := options.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Decoder{source: source, maxDepth: maxDepth, logger: logger}
}

// DecodeNode reads one node from r with default options. It returns a
// nil Node and a nil error when the first byte is not a recognized tag.
func DecodeNode(r io.Reader) (Node, error) {
	return NewDecoder(r, DecoderOptions{}).Decode()
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.offset
}

// Decode reads the next node. The result is:
//
//   - a List, String or Bytes4 with its complete contents,
//   - EndOfList{} if the next byte is a terminator,
//   - nil with a nil error if the next byte is not a recognized tag,
//   - nil with an error if the source failed or ended early. Running
//     out of input, including on the very first byte, wraps
//     io.ErrUnexpectedEOF.
//
// Inside a list, unrecognized tags are skipped and decoding continues
// with the next byte. Errors discard everything decoded by this call.
func (d *Decoder) Decode() (Node, error) {
	return d.decode(0)
}

func (d *Decoder) decode(depth int) (Node, error) {
	tagOffset := d.offset
	tag, err := d.readByte()
	if err != nil {
		return nil, fmt.Errorf("vdf: reading tag at offset %d: %w", tagOffset, err)
	}

	kind, ok := KindOf(tag)
	if !ok {
		d.logger.Debug("unrecognized tag",
			"tag", fmt.Sprintf("0x%02x", tag),
			"offset", tagOffset,
			"depth", depth,
		)
		return nil, nil
	}

	switch kind {
	case KindList:
		if d.maxDepth > 0 && depth >= d.maxDepth {
			return nil, fmt.Errorf("%w (%d) at offset %d", ErrMaxDepth, d.maxDepth, tagOffset)
		}
		name, err := d.readText("list name")
		if err != nil {
			return nil, err
		}
		var children []Node
		for {
			child, err := d.decode(depth + 1)
			if err != nil {
				return nil, err
			}
			switch child.(type) {
			case EndOfList:
				return List{Name: name, Children: children}, nil
			case nil:
				continue
			default:
				children = append(children, child)
			}
		}

	case KindString:
		name, err := d.readText("string name")
		if err != nil {
			return nil, err
		}
		value, err := d.readText("string value")
		if err != nil {
			return nil, err
		}
		return String{Name: name, Value: value}, nil

	case KindBytes4:
		name, err := d.readText("bytes4 name")
		if err != nil {
			return nil, err
		}
		var value [4]byte
		for index := range value {
			valueOffset := d.offset
			value[index], err = d.readByte()
			if err != nil {
				return nil, fmt.Errorf("vdf: reading bytes4 %q value at offset %d: %w", name, valueOffset, err)
			}
		}
		return Bytes4{Name: name, Value: value}, nil

	default:
		return EndOfList{}, nil
	}
}

func (d *Decoder) readByte() (byte, error) {
	value, err := d.source.ReadByte()
	if err != nil {
		return 0, unexpected(err)
	}
	d.offset++
	return value, nil
}

func (d *Decoder) readText(field string) (string, error) {
	start := d.offset
	text, err := ReadText(byteCounter{decoder: d})
	if err != nil {
		return "", fmt.Errorf("vdf: reading %s at offset %d: %w", field, start, err)
	}
	return text, nil
}

// byteCounter lets ReadText read through the decoder so the offset
// stays current.
type byteCounter struct {
	decoder *Decoder
}

func (counter byteCounter) ReadByte() (byte, error) {
	return counter.decoder.readByte()
}

// singleByteReader adapts an io.Reader without buffering ahead.
type singleByteReader struct {
	reader io.Reader
	buffer [1]byte
}

func (s *singleByteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.reader, s.buffer[:]); err != nil {
		return 0, err
	}
	return s.buffer[0], nil
}
