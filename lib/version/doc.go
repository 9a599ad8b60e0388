// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports which build of the vdf binary is running, for
// "vdf version" and "vdf --version".
//
// Release builds inject the stamp with -ldflags:
//
//	go build -ldflags "-X github.com/bureau-foundation/vdf/lib/version.GitCommit=$(git rev-parse --short HEAD)" ./cmd/vdf
//
// A plain "go install github.com/bureau-foundation/vdf/cmd/vdf@latest" or
// "go build" inside a git checkout needs no flags: the module version and
// the vcs.* build settings recorded by the go command fill whatever the
// linker left unset.
package version
