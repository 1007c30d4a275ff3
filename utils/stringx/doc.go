// Package stringx provides byte-oriented string helpers: search, trimming,
// erasing, replacing, joining and splitting, quoted-string extraction,
// printf-style formatting, UTF-16 conversion and strict base64.
//
// Package: stringx
// Title: String Utilities for utils
// Description: Every function takes its input by value and returns a new
//              string, so all of them are safe for concurrent use. Offsets
//              are byte offsets and the single-character variants take a
//              byte; only the *In case functions and the UTF-16 conversion
//              look at runes.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Usage:
//
//	found, pos := stringx.Contains("key=value", "=", 0)   // true, 3
//	stringx.Split("a,b,,c,", ',', -1)                       // [a b  c]
//	stringx.ExtractQuoted("'one', 'two'", '\'')             // [one two]
//
//	data, err := stringx.Base64DecodeString("aGk=")
//	if errors.Is(err, stringx.ErrBase64Padding) {
//		// ...
//	}
//
// Whitespace follows the C locale: space, \t, \n, \v, \f and \r.
// ToUpper and ToLower only touch ASCII letters; use ToUpperIn and
// ToLowerIn with a language.Tag for full Unicode case mapping.
package stringx
