// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package judo

import (
	"unicode"

	"github.com/railgunlabs/judo/internal/utf8codec"
)

// isIdentStart reports whether cp may begin a bare keyword (null/true/
// false/NaN/Infinite) or, in JSON5, an unquoted object key.
func isIdentStart(cp rune, json5 bool) bool {
	if utf8codec.IsAlpha(cp) {
		return true
	}
	if json5 && (cp == '$' || cp == '_') {
		return true
	}
	return false
}

func isIdentContinue(cp rune, json5 bool) bool {
	return isIdentStart(cp, json5) || utf8codec.IsDigit(cp)
}

// scanKeyword recognizes the fixed-spelling literal tokens null, true, and
// false, and in JSON5 the bare numeric literals NaN and Infinite. It
// reports ok == false when the identifier at position is not one of those,
// leaving the caller (in JSON5) to retry as a general identifier.
func (s *Scanner) scanKeyword(start int32) (lexeme, bool) {
	cp, n := s.decode(start)
	if !isIdentStart(cp, false) {
		return lexeme{}, false
	}
	current := start + n
	for {
		cp, n = s.decode(current)
		if !isIdentContinue(cp, false) {
			break
		}
		current += n
	}
	length := current - start
	switch {
	case matchesExactly(s, start, length, "null"):
		return lexeme{tag: lexNull, start: start, length: length}, true
	case matchesExactly(s, start, length, "true"):
		return lexeme{tag: lexTrue, start: start, length: length}, true
	case matchesExactly(s, start, length, "false"):
		return lexeme{tag: lexFalse, start: start, length: length}, true
	case s.cfg.Dialect == JSON5 && (matchesExactly(s, start, length, "NaN") || matchesExactly(s, start, length, "Infinite")):
		return lexeme{tag: lexNumber, start: start, length: length}, true
	}
	return lexeme{}, false
}

// reservedWords lists the ECMAScript 5.1 keywords JSON5 forbids as bare
// object-key identifiers.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "const": true, "class": true,
	"continue": true, "do": true, "delete": true, "default": true, "debugger": true,
	"else": true, "enum": true, "export": true, "extends": true,
	"for": true, "finally": true, "function": true,
	"if": true, "in": true, "import": true, "interface": true, "implements": true, "instanceof": true,
	"let": true, "new": true,
	"public": true, "package": true, "private": true, "protected": true,
	"return": true,
	"super": true, "static": true, "switch": true,
	"try": true, "this": true, "throw": true, "typeof": true,
	"var": true, "void": true,
	"with": true, "while": true,
	"yield": true,
}

// scanUnicodeEscape validates a "\uXXXX" escape used inside a JSON5
// identifier (not inside a string) and returns the number of bytes it
// occupies, always 6 on success.
func (s *Scanner) scanUnicodeEscape(position int32) (int32, error) {
	current := position + 1
	if !s.isBounded(current, 5) {
		return 0, s.fail(position, 1, "expected Unicode escape sequence")
	}
	if s.byteAt(current) != 'u' {
		return 0, s.fail(position, 2, "expected 'u' after backslash")
	}
	current++
	digits := int32(0)
	for digits < 4 && utf8codec.IsHexDigit(rune(s.byteAt(current))) {
		digits++
		current++
	}
	if digits < 4 {
		return 0, s.fail(position, current-position, "expected four hex digits")
	}
	return 6, nil
}

// scanES5Identifier recognizes a JSON5 unquoted object key: an ECMAScript
// 5.1 IdentifierName that is not a reserved word, using the Go standard
// library's Unicode letter/digit classification as the ID_Start/
// ID_Continue tables, extended with '$', '_', and Unicode escapes.
func (s *Scanner) scanES5Identifier() (lexeme, error) {
	start := s.at
	current := start

	cp, n := s.decode(current)
	isStart := unicode.IsLetter(cp) || cp == '$' || cp == '_'
	if !isStart && cp != '\\' {
		return lexeme{}, s.fail(start, 1, "unrecognized token")
	}

	if cp == '\\' {
		esc, err := s.scanUnicodeEscape(current)
		if err != nil {
			return lexeme{}, err
		}
		current += esc
	} else {
		current += n
	}

	for {
		cp, n = s.decode(current)
		if cp == '\\' {
			esc, err := s.scanUnicodeEscape(current)
			if err != nil {
				return lexeme{}, err
			}
			current += esc
			continue
		}
		if !(unicode.IsLetter(cp) || unicode.IsDigit(cp) || unicode.Is(unicode.Mn, cp) || unicode.Is(unicode.Mc, cp) ||
			unicode.Is(unicode.Pc, cp) || cp == '$' || cp == '_' || cp == 0x200C || cp == 0x200D) {
			break
		}
		current += n
	}

	length := current - start
	word := s.src.SliceFrom(int(start)).SliceTo(int(length)).StringCopy()
	if reservedWords[word] {
		return lexeme{}, s.fail(start, length, "reserved word")
	}
	return lexeme{tag: lexID, start: start, length: length}, nil
}
