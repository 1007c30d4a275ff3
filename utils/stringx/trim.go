// File: trim.go
// Title: Whitespace Trimming
// Description: Trims the C-locale whitespace set (space, tab, newline, vertical
//              tab, form feed, carriage return) from either end of a string.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"strings"
)

// Whitespace is the set of bytes removed by the Trim functions.
const Whitespace = " \t\n\v\f\r"

// IsSpace reports whether b is one of the bytes in Whitespace.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// TrimLeft removes leading whitespace.
func TrimLeft(s string) string {
	return strings.TrimLeft(s, Whitespace)
}

// TrimRight removes trailing whitespace.
func TrimRight(s string) string {
	return strings.TrimRight(s, Whitespace)
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.Trim(s, Whitespace)
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	return Trim(s) == ""
}
