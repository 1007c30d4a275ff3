// File: base64.go
// Title: Base64 Encoding and Validation
// Description: Standard-alphabet base64 with strict decoding. Decoding
//              rejects line breaks, misplaced padding and foreign bytes
//              with distinct error codes.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"encoding/base64"

	liberr "github.com/Wosser1sProductions/utils/core/error"
	"github.com/Wosser1sProductions/utils/core/errors"
)

// Base64Alphabet lists the 64 standard base64 characters in value order.
const Base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789+/"

const base64Pad = '='

// Sentinel errors for errors.Is; they match any decode error of the same code.
var (
	ErrBase64Size      = liberr.New("invalid size").WithCode(errors.CodeStringxBase64Size)
	ErrBase64Padding   = liberr.New("invalid padding").WithCode(errors.CodeStringxBase64Padding)
	ErrBase64Character = liberr.New("invalid character").WithCode(errors.CodeStringxBase64Character)
)

var base64Values = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(Base64Alphabet); i++ {
		t[Base64Alphabet[i]] = int8(i)
	}
	return t
}()

// IsBase64Char reports whether c is in Base64Alphabet. The pad byte '=' is
// not.
func IsBase64Char(c byte) bool {
	return base64Values[c] >= 0
}

// IsBase64 reports whether s is well-formed padded base64: a multiple of
// four bytes long, alphabet bytes only, and at most two '=' that all sit at
// the very end. The empty string is valid.
func IsBase64(s string) bool {
	return isBase64(s)
}

// IsBase64Bytes is IsBase64 for a byte slice.
func IsBase64Bytes(b []byte) bool {
	return isBase64(b)
}

func isBase64[T ~string | ~[]byte](s T) bool {
	if len(s)%4 != 0 {
		return false
	}

	i := 0
	for ; i < len(s); i++ {
		if s[i] == base64Pad {
			break
		}
		if !IsBase64Char(s[i]) {
			return false
		}
	}

	switch len(s) - i {
	case 0:
		return true
	case 1:
		return true
	case 2:
		return s[i+1] == base64Pad
	default:
		return false
	}
}

// Base64Encode encodes b with the standard alphabet and '=' padding.
func Base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64EncodeString encodes the bytes of s.
func Base64EncodeString(s string) string {
	return Base64Encode([]byte(s))
}

// Base64Decode decodes standard padded base64. Failures are coded errors
// matching ErrBase64Size, ErrBase64Padding or ErrBase64Character, with the
// offending offset in their details. Non-zero trailing bits in the final
// quantum are accepted.
func Base64Decode(b []byte) ([]byte, error) {
	return base64Decode(b)
}

// Base64DecodeString decodes s and returns the result as a string.
func Base64DecodeString(s string) (string, error) {
	out, err := base64Decode(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func base64Decode[T ~string | ~[]byte](src T) ([]byte, error) {
	n := len(src)
	if n%4 != 0 {
		return nil, errors.StringxBase64(errors.CodeStringxBase64Size, "invalid size", string(src), n)
	}

	out := make([]byte, 0, n/4*3)
	for q := 0; q < n; q += 4 {
		var acc uint32
		for k := 0; k < 4; k++ {
			i := q + k
			c := src[i]

			if c == base64Pad {
				return finishPadded(src, out, acc, i)
			}

			v := base64Values[c]
			if v < 0 {
				return nil, errors.StringxBase64(errors.CodeStringxBase64Character, "invalid character", string(src), i)
			}
			acc = acc<<6 | uint32(v)
		}
		out = append(out, byte(acc>>16), byte(acc>>8), byte(acc))
	}
	return out, nil
}

// finishPadded handles the first '=' at offset i. It must be the third or
// fourth byte of the last quantum, and only '=' may follow it.
func finishPadded[T ~string | ~[]byte](src T, out []byte, acc uint32, i int) ([]byte, error) {
	n := len(src)
	padErr := func(at int) error {
		return errors.StringxBase64(errors.CodeStringxBase64Padding, "invalid padding", string(src), at)
	}

	switch n - i {
	case 1:
		// xxx=
		return append(out, byte(acc>>10), byte(acc>>2)), nil
	case 2:
		// xx==
		if src[i+1] != base64Pad {
			return nil, padErr(i + 1)
		}
		return append(out, byte(acc>>4)), nil
	default:
		return nil, padErr(i)
	}
}
