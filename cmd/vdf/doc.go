// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// vdf reads and writes Steam's binary shortcuts.vdf files.
//
// Subcommands:
//
//	decode    binary to JSON, YAML, CBOR or CBOR diagnostic notation
//	encode    JSON, JSONC, YAML or CBOR back to binary
//	show      styled tree listing
//	hash      BLAKE3 digests of the raw and canonical bytes
//	validate  decode, re-encode and compare
//	version   build information
//
// Configuration comes from the file named by --config or VDF_CONFIG;
// see lib/config. Log records go to stderr, as text on a terminal and
// as JSON otherwise; --verbose enables debug records.
//
// Exit codes: 0 on success, 1 for internal failures and validate
// mismatches, 2 for invalid input or flags, 3 for a missing input file.
package main
