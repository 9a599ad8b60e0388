// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vdf

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileTerminator is the extra byte that follows the root list in a
// shortcuts.vdf file. Steam rejects files without it.
const FileTerminator byte = TagEndOfList

// Marshal returns the file form of node: its encoding followed by
// FileTerminator.
func Marshal(node Node) ([]byte, error) {
	var buffer bytes.Buffer
	if err := EncodeNode(&buffer, node); err != nil {
		return nil, err
	}
	buffer.WriteByte(FileTerminator)
	return buffer.Bytes(), nil
}

// Unmarshal decodes the root node of file data with default options.
// Bytes after the root node, including FileTerminator, are ignored, so
// data without the trailing terminator decodes as well. A nil Node with
// a nil error means the data did not start with a recognized tag.
func Unmarshal(data []byte) (Node, error) {
	return NewDecoder(bytes.NewReader(data), DecoderOptions{}).Decode()
}

// ReadFile decodes the root node of the file at path. Like
// [Unmarshal], it ignores whatever follows the root node.
func ReadFile(path string, options DecoderOptions) (Node, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	node, err := NewDecoder(bufio.NewReader(file), options).Decode()
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return node, nil
}

// WriteFile replaces the file at path with the file form of node. The
// data is written to a temporary file in the same directory, synced,
// and renamed over path, so a failed write leaves the original intact.
// An existing file's permissions are kept; new files get 0644.
func WriteFile(path string, node Node) error {
	data, err := Marshal(node)
	if err != nil {
		return err
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	temporaryPath := path + ".tmp"
	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", path, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary file for %s: %w", path, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary file for %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary file for %s: %w", path, err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	// The rename is only durable once the directory entry is on disk.
	if directory, err := os.Open(filepath.Dir(path)); err == nil {
		directory.Sync()
		directory.Close()
	}
	return nil
}
