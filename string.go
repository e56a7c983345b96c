// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package judo

import (
	"strings"
	"unicode/utf8"

	"github.com/railgunlabs/judo/internal/utf8codec"
)

// isNewlineAt reports how many bytes of a line terminator start at
// position, or zero if none does. JSON5 recognizes CRLF, CR, LF, and the
// Unicode line/paragraph separators as escapable line continuations.
func (s *Scanner) isNewlineAt(position int32) int32 {
	if s.isBounded(position, 2) && s.sliceMatches(position, "\r\n") {
		return 2
	}
	cp, n := s.decode(position)
	switch cp {
	case '\n', '\r', 0x2028, 0x2029:
		return n
	}
	return 0
}

// scanString classifies a single- or double-quoted string lexeme starting
// at s.at. It validates escape sequences and UTF-8 but does not decode
// them; decoding is deferred to Stringify.
func (s *Scanner) scanString() (lexeme, error) {
	start := s.at
	quote := s.byteAt(start)
	current := start + 1
	json5 := s.cfg.Dialect == JSON5

	for s.isBounded(current, 1) {
		b := s.byteAt(current)
		switch {
		case b <= 0x1F:
			return lexeme{}, s.fail(current, 1, "unescaped control character")

		case b == '\\':
			escapeStart := current
			current++
			if !s.isBounded(current, 1) {
				break
			}
			if json5 {
				if n := s.isNewlineAt(current); n >= 1 {
					current += n
					continue
				}
			}

			c := s.byteAt(current)
			switch {
			case c == '"' || c == '\\' || c == '/' || c == 'b' || c == 'f' || c == 'n' || c == 'r' || c == 't':
				current++
			case json5 && (c == '\'' || c == 'v' || c == '0'):
				current++
			case json5 && c == 'x':
				current++
				digits := int32(0)
				for s.isBounded(current, 1) && digits < 2 && utf8codec.IsHexDigit(rune(s.byteAt(current))) {
					digits++
					current++
				}
				if digits < 2 {
					return lexeme{}, s.fail(escapeStart, current-escapeStart, "expected two hex digits")
				}
			case c == 'u':
				current++
				digits := int32(0)
				for s.isBounded(current, 1) && digits < 4 && utf8codec.IsHexDigit(rune(s.byteAt(current))) {
					digits++
					current++
				}
				if digits < 4 {
					return lexeme{}, s.fail(escapeStart, current-escapeStart, "expected four hex digits")
				}
				cp := parseHexDigits(s, current-4, 4)
				if utf8codec.IsHighSurrogate(rune(cp)) {
					escapeEnd := current
					lowOK := false
					if s.isBounded(current, 6) && s.sliceMatches(current, "\\u") {
						peekPos := current + 2
						lowDigits := int32(0)
						for lowDigits < 4 && utf8codec.IsHexDigit(rune(s.byteAt(peekPos))) {
							lowDigits++
							peekPos++
						}
						if lowDigits == 4 {
							low := parseHexDigits(s, peekPos-4, 4)
							if utf8codec.IsLowSurrogate(rune(low)) {
								current = peekPos
								lowOK = true
							}
						}
					}
					if !lowOK {
						return lexeme{}, s.fail(escapeStart, escapeEnd-escapeStart, "unmatched surrogate pair")
					}
				} else if utf8codec.IsLowSurrogate(rune(cp)) {
					return lexeme{}, s.fail(escapeStart, current-escapeStart, "unmatched surrogate pair")
				}
			default:
				_, n := s.decode(current)
				current += n
				return lexeme{}, s.fail(escapeStart, current-escapeStart, "invalid escape sequence")
			}

		case b == quote:
			current++
			return lexeme{tag: lexString, start: start, length: current - start}, nil

		default:
			cp, n := s.decode(current)
			if cp == invalidRune {
				return lexeme{}, s.failEncoding(current, 1)
			}
			current += n
		}
	}

	return lexeme{}, s.fail(start, 1, "unclosed string")
}

func parseHexDigits(s *Scanner, pos, n int32) int32 {
	var v int32
	for i := int32(0); i < n; i++ {
		c := s.byteAt(pos + i)
		var d int32
		switch {
		case c >= '0' && c <= '9':
			d = int32(c - '0')
		case c >= 'A' && c <= 'F':
			d = int32(c-'A') + 10
		default:
			d = int32(c-'a') + 10
		}
		v = v*16 + d
	}
	return v
}

// Stringify decodes the escape sequences in lexeme, the raw text most
// recently reported by Step for a String token or an unquoted JSON5
// ObjectName token, and returns its unescaped content. A quoted lexeme
// (lexeme[0] is '"' or '\'') decodes the full string escape table; an
// unquoted identifier decodes only \uXXXX escapes and has no delimiters to
// strip, matching judo_stringify's separate identifier branch. It does not
// allocate beyond the single returned string when the lexeme contains no
// escapes.
func Stringify(lexeme string) (string, error) {
	if len(lexeme) == 0 {
		return "", &Error{Result: InvalidOperation, Message: "empty lexeme"}
	}
	if lexeme[0] != '"' && lexeme[0] != '\'' {
		return stringifyIdentifier(lexeme)
	}
	if len(lexeme) < 2 {
		return "", &Error{Result: InvalidOperation, Message: "lexeme too short"}
	}
	body := lexeme[1 : len(lexeme)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			r, n := utf8.DecodeRuneInString(body[i:])
			b.WriteRune(r)
			i += n
			continue
		}
		i++
		if i >= len(body) {
			break
		}
		switch body[i] {
		case '"':
			b.WriteByte('"')
			i++
		case '\'':
			b.WriteByte('\'')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		case '/':
			b.WriteByte('/')
			i++
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'v':
			b.WriteByte('\v')
			i++
		case '0':
			b.WriteByte(0)
			i++
		case 'x':
			i++
			v := parseHexString(body[i : i+2])
			b.WriteByte(byte(v))
			i += 2
		case 'u':
			i++
			hi := parseHexString(body[i : i+4])
			i += 4
			cp := rune(hi)
			if utf8codec.IsHighSurrogate(cp) && i+1 < len(body) && body[i] == '\\' && body[i+1] == 'u' {
				lo := parseHexString(body[i+2 : i+6])
				cp = ((cp - 0xD800) << 10) + (rune(lo) - 0xDC00) + 0x10000
				i += 6
			}
			var buf [4]byte
			b.Write(utf8codec.Encode(buf[:0], cp))
		case '\n':
			i++
		case '\r':
			i++
			if i < len(body) && body[i] == '\n' {
				i++
			}
		default:
			r, n := utf8.DecodeRuneInString(body[i:])
			if r != 0x2028 && r != 0x2029 {
				b.WriteRune(r)
			}
			i += n
		}
	}
	return b.String(), nil
}

// stringifyIdentifier decodes only \uXXXX escapes in an unquoted JSON5
// identifier, copying every other byte through unchanged. Unlike a quoted
// string's \u escape, a surrogate pair here is not recombined into a
// single supplementary-plane code point, matching the reference
// implementation's identifier branch, which writes each decoded \u escape
// independently.
func stringifyIdentifier(lexeme string) (string, error) {
	if !strings.ContainsRune(lexeme, '\\') {
		return lexeme, nil
	}
	var b strings.Builder
	b.Grow(len(lexeme))
	for i := 0; i < len(lexeme); {
		if lexeme[i] != '\\' {
			r, n := utf8.DecodeRuneInString(lexeme[i:])
			b.WriteRune(r)
			i += n
			continue
		}
		if i+6 > len(lexeme) || lexeme[i+1] != 'u' {
			return "", &Error{Result: InvalidOperation, Message: "malformed identifier escape"}
		}
		b.WriteRune(rune(parseHexString(lexeme[i+2 : i+6])))
		i += 6
	}
	return b.String(), nil
}

func parseHexString(s string) int32 {
	var v int32
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d int32
		switch {
		case c >= '0' && c <= '9':
			d = int32(c - '0')
		case c >= 'A' && c <= 'F':
			d = int32(c-'A') + 10
		default:
			d = int32(c-'a') + 10
		}
		v = v*16 + d
	}
	return v
}
