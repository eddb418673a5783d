// name_test.go: tests for case-insensitive options name matching
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import "testing"

func TestNamesEqual(t *testing.T) {
	testCases := []struct {
		name     string
		filter   string
		other    string
		expected bool
	}{
		{"default filter matches empty", DefaultName, "", true},
		{"default filter matches any name", DefaultName, "X", true},
		{"identical names match", "Test", "Test", true},
		{"case-insensitive match", "Test", "TEST", true},
		{"lowercase match", "test", "TeSt", true},
		{"different length does not match", "Test", "Tes", false},
		{"different names do not match", "Test", "Other", false},
		{"named filter does not match default", "Test", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NamesEqual(tc.filter, tc.other); got != tc.expected {
				t.Errorf("NamesEqual(%q, %q) = %v, want %v", tc.filter, tc.other, got, tc.expected)
			}
		})
	}
}

func TestNamesEqual_OrdinalNotUnicodeFolding(t *testing.T) {
	// Ordinal comparison by design: the Kelvin sign and 'k' are equal under
	// Unicode case folding but have different lengths in UTF-8.
	if NamesEqual("K", "k") {
		t.Error("expected ordinal comparison, got Unicode case folding behavior")
	}
}
