// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package vdfdoc converts vdf trees to and from a document form that
// JSON, YAML and CBOR can carry.
//
// Every node becomes an object with a kind, a name, and either a value
// or children:
//
//	{"kind": "list", "name": "shortcuts", "children": [
//	    {"kind": "string", "name": "AppName", "value": "Chess"},
//	    {"kind": "bytes4", "name": "appid", "value": "39300080"}
//	]}
//
// Bytes4 values are written as eight hex digits in wire order. Child
// order is preserved, which a map-based representation could not do.
//
// JSONC input (// and /* */ comments, trailing commas) is accepted so
// that hand-maintained shortcut lists can be annotated.
package vdfdoc
