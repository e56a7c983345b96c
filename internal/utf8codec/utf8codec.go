// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package utf8codec decodes and classifies the UTF-8 code points the
// scanner consumes from its source buffer. Decode is RFC 3629 compliant: it
// rejects overlong encodings, lone surrogate-half bytes, and truncated
// sequences the same way the reference C scanner's utf8_decode does, by
// deferring to the standard library's utf8 decoder, which enforces the same
// rules.
package utf8codec

import (
	"unicode/utf8"

	"go4.org/mem"
)

// InvalidRune is returned by Decode in place of a code point when the bytes
// at the given position are not a valid UTF-8 encoding of anything. It is
// distinct from utf8.RuneError because RuneError is also U+FFFD, a valid
// code point that may appear in the source. A sequence truncated by the end
// of src is reported as InvalidRune with a byteCount of 1.
const InvalidRune = rune(0x110000)

// Decode reads one code point from src starting at position. It returns the
// decoded rune and the number of bytes it occupied. A byteCount of zero
// means the input is exhausted at position; callers treat that the same as
// end of file. A rune of InvalidRune with a positive byteCount means the
// byte at position begins a malformed sequence.
func Decode(src mem.RO, position int) (cp rune, byteCount int) {
	if position >= src.Len() {
		return 0, 0
	}
	r, n := mem.DecodeRune(src.SliceFrom(position))
	if r == utf8.RuneError && n <= 1 {
		// A single invalid byte, or mem.DecodeRune could not find a
		// complete rune before the end of src. The latter case only
		// arises when the caller has handed us a bounded slice; for
		// the scanner's own buffer, which is never artificially
		// truncated, n == 0 cannot happen here, so treat anything
		// short as a malformed single byte. A RuneError with n == 3 is
		// a literally encoded U+FFFD and is returned as is.
		return InvalidRune, 1
	}
	return r, n
}

// Encode appends the UTF-8 encoding of cp to dst and returns the extended
// slice, mirroring the reference scanner's utf8_encode. Stringify uses it
// to re-encode a decoded \u escape, including a combined surrogate pair.
func Encode(dst []byte, cp rune) []byte {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], cp)
	return append(dst, buf[:n]...)
}

// IsBounded reports whether byteCount bytes starting at position all lie
// within src.
func IsBounded(src mem.RO, position, byteCount int) bool {
	return position >= 0 && position+byteCount <= src.Len()
}

// IsHighSurrogate reports whether cp is a UTF-16 high surrogate half.
func IsHighSurrogate(cp rune) bool { return cp >= 0xD800 && cp <= 0xDBFF }

// IsLowSurrogate reports whether cp is a UTF-16 low surrogate half.
func IsLowSurrogate(cp rune) bool { return cp >= 0xDC00 && cp <= 0xDFFF }

// IsDigit reports whether cp is an ASCII decimal digit.
func IsDigit(cp rune) bool { return cp >= '0' && cp <= '9' }

// IsHexDigit reports whether cp is an ASCII hexadecimal digit.
func IsHexDigit(cp rune) bool {
	return IsDigit(cp) || (cp >= 'a' && cp <= 'f') || (cp >= 'A' && cp <= 'F')
}

// IsAlpha reports whether cp is an ASCII letter.
func IsAlpha(cp rune) bool {
	return (cp >= 'a' && cp <= 'z') || (cp >= 'A' && cp <= 'Z')
}
