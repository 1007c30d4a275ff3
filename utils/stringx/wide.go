// File: wide.go
// Title: Wide String Conversion
// Description: Converts between UTF-8 strings and UTF-16 code unit
//              sequences. Transcoding runs through x/text; input is checked
//              up front so malformed data is reported instead of replaced.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"encoding/binary"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/Wosser1sProductions/utils/core/errors"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ToWide converts s to UTF-16 code units. NUL bytes are converted like any
// other byte; use ToWideZ for C string semantics. Invalid UTF-8 is an
// errors.CodeStringxEncoding error carrying the byte offset.
func ToWide(s string) ([]uint16, error) {
	if off := invalidUTF8Offset(s); off >= 0 {
		return nil, errors.StringxEncoding("to_wide", "invalid UTF-8 sequence", off)
	}
	if s == "" {
		return []uint16{}, nil
	}

	raw, err := utf16LE.NewEncoder().String(s)
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleStringx).
			Operation("to_wide").
			Cause(err).
			Code(errors.CodeStringxEncoding).
			Build()
	}

	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16([]byte(raw[2*i : 2*i+2]))
	}
	return units, nil
}

// ToWideZ converts s up to its first NUL byte and appends a terminating 0
// unit, the layout expected by C wide-string APIs.
func ToWideZ(s string) ([]uint16, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	units, err := ToWide(s)
	if err != nil {
		return nil, err
	}
	return append(units, 0), nil
}

// FromWide converts UTF-16 code units to a UTF-8 string. 0 units are kept
// as NUL bytes; use FromWideZ to stop at a terminator. A high surrogate
// not followed by a low surrogate, or a lone low surrogate, is an
// errors.CodeStringxEncoding error carrying the unit index.
func FromWide(w []uint16) (string, error) {
	if off := unpairedSurrogate(w); off >= 0 {
		return "", errors.StringxEncoding("from_wide", "unpaired surrogate", off)
	}
	if len(w) == 0 {
		return "", nil
	}

	raw := make([]byte, 2*len(w))
	for i, u := range w {
		binary.LittleEndian.PutUint16(raw[2*i:], u)
	}

	out, err := utf16LE.NewDecoder().Bytes(raw)
	if err != nil {
		return "", errors.NewErrorBuilder(errors.ModuleStringx).
			Operation("from_wide").
			Cause(err).
			Code(errors.CodeStringxEncoding).
			Build()
	}
	return string(out), nil
}

// FromWideZ converts w up to its first 0 unit.
func FromWideZ(w []uint16) (string, error) {
	for i, u := range w {
		if u == 0 {
			return FromWide(w[:i])
		}
	}
	return FromWide(w)
}

func invalidUTF8Offset(s string) int {
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

func unpairedSurrogate(w []uint16) int {
	for i := 0; i < len(w); i++ {
		switch {
		case w[i] >= 0xD800 && w[i] < 0xDC00:
			if i+1 >= len(w) || w[i+1] < 0xDC00 || w[i+1] > 0xDFFF {
				return i
			}
			i++
		case w[i] >= 0xDC00 && w[i] <= 0xDFFF:
			return i
		}
	}
	return -1
}
