// File: split.go
// Title: Split Operation
// Description: Splits a string at a single-byte delimiter with an optional limit
//              on the number of fields split off.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

// Split cuts s at every delim, the way reading delimited records from a
// stream does: a trailing delimiter does not produce a trailing empty
// field, but leading and inner empty fields are kept.
//
// maxSplits limits how many fields are split off:
//
//	< 0  split at every delimiter
//	  0  no splitting, the result is [s]
//	  n  split off at most n fields; the unsplit rest, if any, is the last element
//
// The result for an empty s is an empty, non-nil slice.
func Split(s string, delim byte, maxSplits int) []string {
	fields := make([]string, 0, 4)
	pos := 0

	for maxSplits != 0 && pos < len(s) {
		end := pos
		for end < len(s) && s[end] != delim {
			end++
		}
		fields = append(fields, s[pos:end])
		pos = end + 1
		maxSplits--
	}

	if pos < len(s) {
		fields = append(fields, s[pos:])
	}
	return fields
}
