// File: replace.go
// Title: Replace Operations
// Description: Substring and byte replacement without re-matching inside the
//              inserted text.
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

// ReplaceAll replaces every occurrence of from with to, scanning left to
// right and resuming after each inserted to. An empty from is a no-op.
func ReplaceAll(s, from, to string) string {
	if from == "" {
		return s
	}
	return strings.ReplaceAll(s, from, to)
}

// ReplaceAllByte replaces every occurrence of the byte from with to. An
// empty to erases the byte.
func ReplaceAllByte(s string, from byte, to string) string {
	return strings.ReplaceAll(s, string([]byte{from}), to)
}

// ReplaceByte swaps every byte from for the byte to.
func ReplaceByte(s string, from, to byte) string {
	if from == to || strings.IndexByte(s, from) < 0 {
		return s
	}

	buf := []byte(s)
	for i := range buf {
		if buf[i] == from {
			buf[i] = to
		}
	}
	return string(buf)
}
