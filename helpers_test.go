// helpers_test.go: shared fixtures for the go-options test suites
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import (
	"os"
	"path/filepath"
	"testing"
)

// testOptions is the options type used across the test suites.
type testOptions struct {
	Retries int    `json:"retries" yaml:"retries"`
	Setting int    `json:"setting" yaml:"setting"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Addr    string `json:"addr" yaml:"addr"`
}

// writeTestFile writes a config file into a per-test temp dir and returns
// its path.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test config file: %v", err)
	}
	return path
}

// rewriteTestFile replaces the content of an existing test config file.
func rewriteTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to rewrite test config file: %v", err)
	}
}
