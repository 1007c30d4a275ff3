// File: erase.go
// Title: Erase Operations
// Description: Removes parts of a string: everything around a marker, runs of a
//              repeated byte, or every occurrence of a substring.
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

// EraseFrom cuts s at the first occurrence of marker, dropping the marker
// and everything after it. s is returned unchanged when marker is absent.
func EraseFrom(s, marker string) string {
	if i := strings.Index(s, marker); i >= 0 {
		return s[:i]
	}
	return s
}

// EraseTo drops everything before the first occurrence of marker. The
// marker itself is kept. s is returned unchanged when marker is absent.
func EraseTo(s, marker string) string {
	if i := strings.Index(s, marker); i >= 0 {
		return s[i:]
	}
	return s
}

// EraseConsecutive collapses every run of ch into a single ch. Runs of other
// bytes are left alone.
func EraseConsecutive(s string, ch byte) string {
	if strings.Index(s, string([]byte{ch, ch})) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ch && i > 0 && s[i-1] == ch {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// EraseAll removes every occurrence of sub, scanning left to right. An
// empty sub is a no-op. Text joined by a removal is not rescanned, so
// EraseAll("aabb", "ab") is "ab".
func EraseAll(s, sub string) string {
	if sub == "" {
		return s
	}
	return strings.ReplaceAll(s, sub, "")
}

// EraseAllByte removes every occurrence of ch.
func EraseAllByte(s string, ch byte) string {
	if strings.IndexByte(s, ch) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ch {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
