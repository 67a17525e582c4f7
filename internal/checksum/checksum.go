// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package checksum provides the catalog of identifier validation algorithms.
// Every function is pure and total over strings: malformed input yields
// false, never a panic. Callers are responsible for stripping delimiters
// (spaces, hyphens) before validation.
package checksum

// Func validates a delimiter-stripped identifier.
type Func func(string) bool

// allDigits reports whether s is non-empty and consists only of ASCII digits.
func allDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
