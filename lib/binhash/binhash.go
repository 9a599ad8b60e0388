// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/vdf/lib/vdf"
)

// Digest is a 32-byte BLAKE3 hash.
type Digest [32]byte

// HashFile computes the digest of the file at path. The file is
// streamed through the hasher, so memory use does not grow with file
// size.
func HashFile(path string) (Digest, error) {
	file, err := os.Open(path)
	if err != nil {
		return Digest{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return Digest{}, fmt.Errorf("hashing %s: %w", path, err)
	}

	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// HashBytes computes the digest of data.
func HashBytes(data []byte) Digest {
	return Digest(blake3.Sum256(data))
}

// HashNode computes the digest of the file form of node (its encoding
// plus the trailing file terminator). Two trees have the same digest
// exactly when they would be written as the same file.
func HashNode(node vdf.Node) (Digest, error) {
	hasher := blake3.New()
	if err := vdf.EncodeNode(hasher, node); err != nil {
		return Digest{}, fmt.Errorf("hashing tree: %w", err)
	}
	hasher.Write([]byte{vdf.FileTerminator})

	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// FormatDigest returns the hex-encoded form of digest, as printed by
// "vdf hash".
func FormatDigest(digest Digest) string {
	return hex.EncodeToString(digest[:])
}

// ParseDigest parses a hex-encoded digest. Returns an error unless the
// string is exactly 64 hex characters.
func ParseDigest(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing hash digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("hash digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}
