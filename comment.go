// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package judo

import "unicode"

// isSpace reports whether cp is whitespace for the active dialect. JSON5
// additionally treats the Unicode "space separator" general category,
// vertical tab, form feed, non-breaking space, and the line/paragraph
// separators as whitespace.
func (s *Scanner) isSpace(cp rune) bool {
	switch cp {
	case 0x0020, 0x0009, 0x000A, 0x000D:
		return true
	}
	if s.cfg.Dialect == JSON5 {
		switch cp {
		case 0x000B, 0x000C, 0x00A0, 0x2028, 0x2029:
			return true
		}
		if unicode.Is(unicode.Zs, cp) {
			return true
		}
	}
	return false
}

// consumeSpaceAndComments advances s.at past any run of whitespace and,
// when the dialect admits them, line and block comments.
func (s *Scanner) consumeSpaceAndComments() error {
	allowComments := s.cfg.Comments
	for {
		cp, n := s.decode(s.at)
		byteCount := int32(0)
		if s.isSpace(cp) {
			byteCount = n
		} else if allowComments && s.isBounded(s.at, 2) {
			if s.sliceMatches(s.at, "//") {
				n, err := s.scanLineComment()
				if err != nil {
					return err
				}
				byteCount = n
			} else if s.sliceMatches(s.at, "/*") {
				n, err := s.scanBlockComment()
				if err != nil {
					return err
				}
				byteCount = n
			}
		}
		if byteCount == 0 {
			break
		}
		s.at += byteCount
	}
	return nil
}

func (s *Scanner) scanLineComment() (int32, error) {
	current := s.at + 2
	for s.isNewlineAt(current) == 0 {
		_, n := s.decode(current)
		if n == 0 {
			break
		}
		current += n
	}
	return current - s.at, nil
}

func (s *Scanner) scanBlockComment() (int32, error) {
	current := s.at + 2
	for {
		if s.isBounded(current, 2) && s.sliceMatches(current, "*/") {
			current += 2
			return current - s.at, nil
		}
		cp, n := s.decode(current)
		if n == 0 {
			if cp == invalidRune {
				return 0, s.failEncoding(current, 1)
			}
			return 0, s.fail(s.at, 2, "unterminated multi-line comment")
		}
		if cp == invalidRune {
			return 0, s.failEncoding(current, 1)
		}
		current += n
	}
}
