// name.go: case-insensitive identity for named options
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import "strings"

// NamesEqual reports whether a registered filter name matches a requested
// options name.
//
// DefaultName as the filter matches every request. Otherwise the names match
// when they have equal length and compare equal after uniform upper-casing or
// uniform lower-casing. The comparison is ordinal, not full Unicode case
// folding: options names are configuration keys, not natural-language text.
func NamesEqual(name, other string) bool {
	if name == DefaultName || name == other {
		return true
	}
	if len(name) != len(other) {
		return false
	}
	return strings.ToUpper(name) == strings.ToUpper(other) ||
		strings.ToLower(name) == strings.ToLower(other)
}
