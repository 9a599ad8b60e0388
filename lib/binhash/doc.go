// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash computes BLAKE3 content digests of vdf files and
// trees.
//
// Steam rewrites shortcuts.vdf whenever its library changes, usually
// without changing the content. Comparing the digest of the raw file
// ([HashFile]) with the digest of its canonical re-encoding
// ([HashNode]) tells whether the file is in the form this module would
// write; comparing two HashNode digests tells whether two files hold
// the same tree.
//
// [FormatDigest] and [ParseDigest] convert between [Digest] and its
// 64-character hex form.
package binhash
