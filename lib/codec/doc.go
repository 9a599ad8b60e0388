// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the shared CBOR configuration used when vdf trees
// are exported to or imported from CBOR.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2), so two
// equal trees always produce identical CBOR. Struct fields are named by
// their `json` tags: fxamacker/cbor falls back to them when no `cbor`
// tag is present, which keeps the JSON and CBOR renderings of a
// document in step.
//
//	data, err := codec.Marshal(document)
//	err = codec.Unmarshal(data, &document)
package codec
