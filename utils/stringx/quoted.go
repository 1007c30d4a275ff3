// File: quoted.go
// Title: Quoted String Extraction
// Description: Collects the text between pairs of a quote byte.
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

// DefaultQuote is the quote byte used when none is given.
const DefaultQuote = '\''

// ExtractQuoted returns the text between successive pairs of quote in s,
// without the quotes. Quotes pair up left to right, so "'Hello', 'Wo'rld'"
// yields Hello and Wo; the quote opened before rld is never closed and is
// dropped. Inputs shorter than three bytes yield nothing. The result is
// never nil.
func ExtractQuoted(s string, quote byte) []string {
	out := make([]string, 0)
	if len(s) < 3 {
		return out
	}

	last := len(s) - 1
	pos := 0
	for {
		open := strings.IndexByte(s[pos:], quote)
		if open < 0 {
			break
		}
		start := pos + open + 1

		end := strings.IndexByte(s[start:], quote)
		if end < 0 {
			break
		}
		out = append(out, s[start:start+end])
		pos = start + end + 1

		if pos >= last {
			break
		}
	}
	return out
}
