// File: join.go
// Title: Join Operations
// Description: Joins string slices with a string or byte separator, and slices
//              of characters of any character-like integer type.
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
	"unicode/utf8"
)

// DefaultSeparator is the separator used by the join command when none is
// configured.
const DefaultSeparator = ","

// Char is the set of element types accepted by JoinChars.
type Char interface {
	~byte | ~int8 | ~uint16 | ~rune | ~uint32
}

// Join concatenates the elements of v with sep between them. An empty v
// gives "".
func Join(v []string, sep string) string {
	return strings.Join(v, sep)
}

// JoinByte is Join with a single-byte separator.
func JoinByte(v []string, sep byte) string {
	return strings.Join(v, string([]byte{sep}))
}

// JoinChars converts each element of v to a rune and joins them with sep.
// A sep of 0 concatenates the characters without a separator. Elements that
// are not valid code points are written as U+FFFD.
func JoinChars[T Char](v []T, sep rune) string {
	if len(v) == 0 {
		return ""
	}

	var b strings.Builder
	if sep == 0 {
		b.Grow(len(v))
	} else {
		b.Grow(len(v)*2 - 1)
	}

	for i, c := range v {
		if i > 0 && sep != 0 {
			b.WriteRune(sep)
		}
		r := rune(c)
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		b.WriteRune(r)
	}
	return b.String()
}
