// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for vdf packages.
//
// [WriteFile] places a fixture in a per-test temporary directory and
// returns its path; [ReadFile] reads a file the code under test wrote.
// Both call t.Fatalf on failure, since test setup failures are not
// recoverable.
//
// This package has no dependencies on other vdf packages, so the
// packages it helps test can import it from their own tests.
package testutil
