// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the YAML configuration of the vdf command.
//
// Configuration comes from a single file named by the --config flag or,
// failing that, the VDF_CONFIG environment variable. Without either,
// built-in defaults apply. Values in the file are merged over the
// defaults; unknown keys are rejected.
//
//	output:
//	  format: yaml
//	  indent: 4
//	decoder:
//	  max_depth: 64
//	files:
//	  terminator: true
//	show:
//	  color: never
package config
