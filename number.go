// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package judo

import (
	"github.com/railgunlabs/judo/internal/utf8codec"
)

// scanNumber classifies a numeric lexeme starting at s.at. Strict RFC4627
// and RFC8259 input forbids a leading '+', a leading '.', and bare
// NaN/Infinite; JSON5 admits all of them. Octal-looking digit runs are
// rejected in every dialect.
func (s *Scanner) scanNumber() (lexeme, error) {
	start := s.at
	current := start
	json5 := s.cfg.Dialect == JSON5

	var sign rune
	cp, _ := s.decode(current)
	if cp == '-' {
		sign = '-'
		current++
	} else if json5 && cp == '+' {
		sign = '+'
		current++
	}

	cp, _ = s.decode(current)
	hasDecimal := false
	isNumber := false

	switch {
	case utf8codec.IsDigit(cp):
		if json5 && s.isBounded(current, 2) && (s.sliceMatches(current, "0x") || s.sliceMatches(current, "0X")) {
			current += 2
			firstHex, _ := s.decode(current)
			if !utf8codec.IsHexDigit(firstHex) {
				return lexeme{}, s.fail(current, 1, "expected hexadecimal number")
			}
			for {
				cp, n := s.decode(current)
				if !utf8codec.IsHexDigit(cp) {
					break
				}
				current += n
			}
			return lexeme{tag: lexNumber, start: start, length: current - start}, nil
		}

		current++
		firstDigit := cp
		digitCount := int32(1)
		for {
			cp, n := s.decode(current)
			if !utf8codec.IsDigit(cp) {
				break
			}
			current += n
			digitCount++
		}
		if digitCount > 1 && firstDigit == '0' {
			return lexeme{}, s.fail(start, current-start, "illegal octal number")
		}
		isNumber = true

	case json5 && utf8codec.IsAlpha(cp):
		idStart := current
		for {
			cp, n := s.decode(current)
			if !utf8codec.IsAlpha(cp) {
				break
			}
			current += n
		}
		idLength := current - idStart
		if !matchesExactly(s, idStart, idLength, "NaN") && !matchesExactly(s, idStart, idLength, "Infinite") {
			return lexeme{}, s.fail(idStart, idLength, "expected NaN or Infinite")
		}
		return lexeme{tag: lexNumber, start: start, length: current - start}, nil
	}

	if !isNumber {
		if json5 && cp == '.' {
			hasDecimal = true
			current++
			for {
				cp, n := s.decode(current)
				if !utf8codec.IsDigit(cp) {
					break
				}
				current += n
			}
		}

		digitCount := current - start
		if sign != 0 {
			digitCount--
		}
		if hasDecimal {
			digitCount--
		}
		if digitCount == 0 {
			return lexeme{}, s.fail(current, 1, "expected number")
		}
	} else {
		// The digit loop above re-declares cp in its own block scope, so
		// the function-level cp here still holds the first digit; re-read
		// the byte at the current position before checking for a '.'.
		cp, _ = s.decode(current)
		if cp == '.' {
			current++
			fracDigits := int32(0)
			for {
				cp, n := s.decode(current)
				if !utf8codec.IsDigit(cp) {
					break
				}
				current += n
				fracDigits++
			}
			hasDecimal = true
			if !json5 && fracDigits == 0 {
				return lexeme{}, s.fail(start, current-start, "expected fractional part")
			}
		}
	}

	cp, _ = s.decode(current)
	if cp == 'e' || cp == 'E' {
		current++
		cp, _ = s.decode(current)
		if cp == '+' || cp == '-' {
			current++
			cp, _ = s.decode(current)
		}
		if !utf8codec.IsDigit(cp) {
			return lexeme{}, s.fail(current, 1, "missing exponent")
		}
		for {
			cp, n := s.decode(current)
			if !utf8codec.IsDigit(cp) {
				break
			}
			current += n
		}
	}

	return lexeme{tag: lexNumber, start: start, length: current - start}, nil
}

// matchesExactly reports whether the idLength bytes starting at idStart are
// exactly want, with no extra trailing characters.
func matchesExactly(s *Scanner, idStart, idLength int32, want string) bool {
	return int(idLength) == len(want) && s.sliceMatches(idStart, want)
}
