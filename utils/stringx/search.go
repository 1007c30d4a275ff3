// File: search.go
// Title: Substring Search and Affix Tests
// Description: Position-reporting search and prefix/suffix checks that treat an
//              empty needle as no match.
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

// Contains reports whether part occurs in s at or after byte offset start,
// and where. pos is -1 when part was not found. An empty part is found at
// start as long as start does not lie past the end of s.
func Contains(s, part string, start int) (found bool, pos int) {
	if start < 0 {
		start = 0
	}
	if start > len(s) {
		return false, -1
	}

	i := strings.Index(s[start:], part)
	if i < 0 {
		return false, -1
	}
	return true, start + i
}

// ContainsByte reports whether ch occurs in s at or after byte offset start,
// and where. pos is -1 when ch was not found.
func ContainsByte(s string, ch byte, start int) (found bool, pos int) {
	if start < 0 {
		start = 0
	}
	if start >= len(s) {
		return false, -1
	}

	i := strings.IndexByte(s[start:], ch)
	if i < 0 {
		return false, -1
	}
	return true, start + i
}

// HasChar reports whether s contains the byte ch.
func HasChar(s string, ch byte) bool {
	return strings.IndexByte(s, ch) >= 0
}

// StartsWith reports whether s begins with prefix. An empty prefix never
// matches.
func StartsWith(s, prefix string) bool {
	return prefix != "" && strings.HasPrefix(s, prefix)
}

// StartsWithByte reports whether the first byte of s is ch. Always false for
// an empty s or a NUL ch.
func StartsWithByte(s string, ch byte) bool {
	return ch != 0 && len(s) > 0 && s[0] == ch
}

// EndsWith reports whether s ends with suffix. An empty suffix never
// matches.
func EndsWith(s, suffix string) bool {
	return suffix != "" && strings.HasSuffix(s, suffix)
}

// EndsWithByte reports whether the last byte of s is ch. Always false for
// an empty s or a NUL ch.
func EndsWithByte(s string, ch byte) bool {
	return ch != 0 && len(s) > 0 && s[len(s)-1] == ch
}
