// File: case.go
// Title: Case Conversion
// Description: ASCII-only upper/lower case mapping, plus full Unicode case mapping
//              for a given language through golang.org/x/text/cases.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToUpper maps ASCII a-z to A-Z. Every other byte, including the bytes of
// multi-byte UTF-8 sequences, is copied unchanged.
func ToUpper(s string) string {
	return mapASCII(s, 'a', 'z', 'A'-'a')
}

// ToLower maps ASCII A-Z to a-z. Every other byte is copied unchanged.
func ToLower(s string) string {
	return mapASCII(s, 'A', 'Z', 'a'-'A')
}

func mapASCII(s string, lo, hi byte, delta int) string {
	i := 0
	for ; i < len(s); i++ {
		if s[i] >= lo && s[i] <= hi {
			break
		}
	}
	if i == len(s) {
		return s
	}

	buf := []byte(s)
	for ; i < len(buf); i++ {
		if buf[i] >= lo && buf[i] <= hi {
			buf[i] = byte(int(buf[i]) + delta)
		}
	}
	return string(buf)
}

// ToUpperIn applies the Unicode upper case mapping of the given language,
// e.g. "üêéè" becomes "ÜÊÉÈ" and Turkish maps "i" to "İ".
func ToUpperIn(s string, tag language.Tag) string {
	return cases.Upper(tag).String(s)
}

// ToLowerIn applies the Unicode lower case mapping of the given language.
func ToLowerIn(s string, tag language.Tag) string {
	return cases.Lower(tag).String(s)
}

// ParseLanguage parses a BCP 47 tag such as "en", "de-CH" or "tr".
// An empty string gives language.Und, which applies the default mappings.
func ParseLanguage(tag string) (language.Tag, error) {
	if IsBlank(tag) {
		return language.Und, nil
	}
	return language.Parse(Trim(tag))
}
