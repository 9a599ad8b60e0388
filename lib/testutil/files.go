// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
)

// TB is the subset of testing.TB the helpers need.
type TB interface {
	Helper()
	TempDir() string
	Fatalf(format string, args ...any)
}

// WriteFile writes data to a file called name in a fresh temporary
// directory and returns the file's path. The directory is removed when
// the test completes.
//
//	path := testutil.WriteFile(t, "shortcuts.vdf", data)
func WriteFile(t TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

// ReadFile returns the contents of path, failing the test if it cannot
// be read.
func ReadFile(t TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}
