// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package judo

import (
	"go4.org/mem"

	"github.com/railgunlabs/judo/internal/utf8codec"
)

// invalidRune marks a byte sequence the decoder could not interpret.
const invalidRune = utf8codec.InvalidRune

// lexTag identifies the lexical token most recently produced by peek. It is
// a private, finer-grained vocabulary than the public Token: it still
// distinguishes punctuation such as ',' and ':' that Step never surfaces to
// a caller, because the pushdown driver needs to see that punctuation to
// decide which state to transition to.
type lexTag uint8

const (
	lexInvalid lexTag = iota
	lexEOF
	lexNull
	lexTrue
	lexFalse
	lexNumber
	lexString
	lexID
	lexComma
	lexColon
	lexLSquare
	lexRSquare
	lexLCurly
	lexRCurly
)

// lexeme is a lexical token together with its source span.
type lexeme struct {
	tag    lexTag
	start  int32
	length int32
}

func (t lexeme) span() Span { return Span{Offset: t.start, Length: t.length} }

// Scanner-internal state tags, pushed and popped from the fixed-depth
// stack embedded in every Scanner. They mirror the pushdown states of the
// grammar: each frame records what the scanner is waiting to see next at
// that nesting depth.
const (
	stateParseRoot int8 = iota
	stateFinishedValue
	stateParseArrayEndOrElement
	stateFinishedArrayElement
	stateParseObjectKeyOrEnd
	stateParseObjectValue
	stateFinishedObjectValue
	stateParsingError
	stateEncodingError
	stateMaxNestingError
	stateSourceTooLargeError
	stateInvalidConfigError
	stateFinished
)

// MaxSourceLength bounds the length of a source buffer a Scanner will
// accept, so that every offset and span fits in the int32 fields of Span
// and Scanner without overflow.
const MaxSourceLength = 1 << 30

// Scanner is a non-recursive, pushdown JSON/JSON5 tokenizer. It holds no
// pointers into caller-owned memory beyond the immutable mem.RO it was
// constructed with, so a Scanner value can be copied, stored, and resumed
// by ordinary Go assignment: copying a Scanner snapshots its position and
// nesting state exactly.
type Scanner struct {
	src    mem.RO
	at     int32
	cfg    Config
	depth  int
	state  [maxStackCapacity]int8
	Token  Token
	Span   Span
	errMsg string
}

// NewScanner returns a Scanner positioned at the start of src, configured
// by cfg. If src exceeds MaxSourceLength, or cfg.MaxDepth exceeds
// maxStackCapacity, the returned Scanner is already parked in its terminal
// error state, and its first Step call reports InputTooLarge or
// InvalidOperation respectively.
func NewScanner(src mem.RO, cfg Config) Scanner {
	rawMaxDepth := cfg.MaxDepth
	cfg = cfg.normalize()
	s := Scanner{src: src, cfg: cfg}
	switch {
	case src.Len() > MaxSourceLength:
		s.errMsg = "source exceeds maximum length"
		s.state[0] = stateSourceTooLargeError
	case rawMaxDepth > maxStackCapacity:
		s.errMsg = "MaxDepth exceeds stack capacity"
		s.state[0] = stateInvalidConfigError
	}
	return s
}

// Step advances the scanner by one semantic element. On success it updates
// s.Token and s.Span and returns nil. Once Step returns Token == EOF,
// further calls return the same EOF token until the scanner is reset. On
// failure it returns a *Error and leaves the scanner parked in a terminal
// error state; every subsequent Step call returns the same error.
func (s *Scanner) Step() error {
	if s.depth >= len(s.state) {
		return s.malfunction()
	}

	// If the value at the current depth finished on the previous call, pop
	// the stack before dispatching, so the switch below always operates on
	// an unfinished value. This mirrors the driver's own bookkeeping: the
	// pop happens once, here, rather than being duplicated in every state
	// handler that can produce a finished value.
	if s.state[s.depth] == stateFinishedValue {
		if s.depth == 0 {
			tok, err := s.peek()
			if err != nil {
				return err
			}
			if tok.tag != lexEOF {
				return s.fail(s.at, 1, "expected EOF")
			}
			s.Token = EOF
			s.Span = tok.span()
			s.state[0] = stateFinished
			return nil
		}
		s.depth--
	}

	switch s.state[s.depth] {
	case stateParseRoot:
		return s.parseRoot()
	case stateFinishedArrayElement:
		return s.finishedArrayElement()
	case stateParseArrayEndOrElement:
		return s.parseArrayElementOrEnd()
	case stateParseObjectKeyOrEnd:
		return s.parseObjectKeyOrEnd()
	case stateParseObjectValue:
		return s.parseObjectValue()
	case stateFinishedObjectValue:
		return s.finishedObjectValue()
	case stateParsingError:
		return s.reportTerminal(BadSyntax)
	case stateEncodingError:
		return s.reportTerminal(IllegalByteSequence)
	case stateMaxNestingError:
		return s.reportTerminal(MaximumNesting)
	case stateSourceTooLargeError:
		return s.reportTerminal(InputTooLarge)
	case stateInvalidConfigError:
		return s.reportTerminal(InvalidOperation)
	case stateFinished:
		s.Token = EOF
		return nil
	default:
		return s.malfunction()
	}
}

func (s *Scanner) reportTerminal(r Result) error {
	return &Error{Result: r, Span: s.Span, Message: s.errMsg}
}

func (s *Scanner) malfunction() error {
	return &Error{Result: Malfunction, Message: "scanner state corrupt"}
}

// fail records a syntax error at [pos, pos+length) and parks the scanner in
// its terminal error state.
func (s *Scanner) fail(pos, length int32, msg string) error {
	s.Span = Span{Offset: pos, Length: length}
	s.Token = Invalid
	s.errMsg = msg
	s.state[s.depth] = stateParsingError
	return &Error{Result: BadSyntax, Span: s.Span, Message: msg}
}

func (s *Scanner) failEncoding(pos, length int32) error {
	s.Span = Span{Offset: pos, Length: length}
	s.Token = Invalid
	s.errMsg = "malformed encoded character"
	s.state[s.depth] = stateEncodingError
	return &Error{Result: IllegalByteSequence, Span: s.Span, Message: s.errMsg}
}

func (s *Scanner) failMaxNesting() error {
	s.Span = Span{Offset: s.at, Length: 1}
	s.Token = Invalid
	s.errMsg = "maximum nesting depth exceeded"
	s.state[s.depth] = stateMaxNestingError
	return &Error{Result: MaximumNesting, Span: s.Span, Message: s.errMsg}
}

func (s *Scanner) decode(pos int32) (r rune, n int32) {
	cp, cnt := utf8codec.Decode(s.src, int(pos))
	return cp, int32(cnt)
}

func (s *Scanner) isBounded(pos, n int32) bool {
	return utf8codec.IsBounded(s.src, int(pos), int(n))
}

func (s *Scanner) byteAt(pos int32) byte {
	return s.src.At(int(pos))
}

func (s *Scanner) sliceMatches(pos int32, want string) bool {
	if !s.isBounded(pos, int32(len(want))) {
		return false
	}
	return s.src.SliceFrom(int(pos)).SliceTo(len(want)).Equal(mem.S(want))
}

// parseRoot handles the first call to Step, including the optional UTF-8
// BOM and the dialect-dependent restriction on which token kinds may open
// the document.
func (s *Scanner) parseRoot() error {
	if s.sliceMatches(s.at, "\xEF\xBB\xBF") {
		s.at += 3
	}

	tok, err := s.peek()
	if err != nil {
		return err
	}
	switch tok.tag {
	case lexLSquare:
		return s.parseArray(tok)
	case lexLCurly:
		return s.parseObject(tok)
	case lexNull, lexNumber, lexString, lexTrue, lexFalse:
		if s.cfg.Dialect == RFC4627 {
			return s.fail(0, 0, "expected root value")
		}
		return s.parseScalar(tok)
	default:
		return s.fail(0, 0, "expected root value")
	}
}

// parseValue dispatches on the next token when a value is expected,
// reserving a stack frame for it first. msg names what was expected, for
// the diagnostic produced when the token is none of the value starters.
func (s *Scanner) parseValue(msg string) error {
	if s.depth >= s.cfg.MaxDepth-1 {
		return s.failMaxNesting()
	}
	s.depth++

	tok, err := s.peek()
	if err != nil {
		return err
	}
	switch tok.tag {
	case lexNull, lexNumber, lexString, lexTrue, lexFalse:
		return s.parseScalar(tok)
	case lexLSquare:
		return s.parseArray(tok)
	case lexLCurly:
		return s.parseObject(tok)
	default:
		return s.fail(s.at, 1, msg)
	}
}

func (s *Scanner) parseScalar(tok lexeme) error {
	s.at += tok.length
	s.Span = tok.span()
	switch tok.tag {
	case lexNull:
		s.Token = Null
	case lexTrue:
		s.Token = True
	case lexFalse:
		s.Token = False
	case lexNumber:
		s.Token = Number
	case lexString:
		s.Token = String
	}
	s.state[s.depth] = stateFinishedValue
	return nil
}

func (s *Scanner) parseArray(tok lexeme) error {
	s.at += tok.length
	s.Span = tok.span()
	s.Token = ArrayBegin
	s.state[s.depth] = stateParseArrayEndOrElement
	return nil
}

func (s *Scanner) parseArrayElementOrEnd() error {
	tok, err := s.peek()
	if err != nil {
		return err
	}
	if tok.tag == lexRSquare {
		s.at += tok.length
		s.Span = tok.span()
		s.Token = ArrayEnd
		s.state[s.depth] = stateFinishedValue
		return nil
	}
	return s.parseArrayElement()
}

func (s *Scanner) parseArrayElement() error {
	s.state[s.depth] = stateFinishedArrayElement
	return s.parseValue("expected value")
}

func (s *Scanner) finishedArrayElement() error {
	tok, err := s.peek()
	if err != nil {
		return err
	}
	if tok.tag == lexComma {
		s.at += tok.length
		if s.cfg.TrailingCommas {
			return s.parseArrayElementOrEnd()
		}
		return s.parseArrayElement()
	}
	if tok.tag == lexRSquare {
		s.at += tok.length
		s.Span = tok.span()
		s.Token = ArrayEnd
		s.state[s.depth] = stateFinishedValue
		return nil
	}
	return s.fail(s.at, 1, "expected ']' or ','")
}

func (s *Scanner) parseObject(tok lexeme) error {
	s.at += tok.length
	s.Span = tok.span()
	s.Token = ObjectBegin
	s.state[s.depth] = stateParseObjectKeyOrEnd
	return nil
}

func (s *Scanner) parseObjectKey(tok lexeme) error {
	switch tok.tag {
	case lexString:
		s.at += tok.length
		s.Span = tok.span()
		s.Token = ObjectName
		s.state[s.depth] = stateParseObjectValue
		return nil
	case lexID:
		if s.cfg.Dialect == JSON5 {
			s.at += tok.length
			s.Span = tok.span()
			s.Token = ObjectName
			s.state[s.depth] = stateParseObjectValue
			return nil
		}
	}
	return s.fail(s.at, 1, "expected '}' or string")
}

func (s *Scanner) parseObjectKeyOrEnd() error {
	tok, err := s.peek()
	if err != nil {
		return err
	}
	if tok.tag == lexRCurly {
		s.at += tok.length
		s.Span = tok.span()
		s.Token = ObjectEnd
		s.state[s.depth] = stateFinishedValue
		return nil
	}
	return s.parseObjectKey(tok)
}

func (s *Scanner) parseObjectValue() error {
	tok, err := s.peek()
	if err != nil {
		return err
	}
	if tok.tag != lexColon {
		return s.fail(s.at, 1, "expected ':'")
	}
	s.at += tok.length
	s.state[s.depth] = stateFinishedObjectValue
	return s.parseValue("expected value after ':'")
}

func (s *Scanner) finishedObjectValue() error {
	tok, err := s.peek()
	if err != nil {
		return err
	}
	if tok.tag == lexComma {
		s.at += tok.length
		if s.cfg.TrailingCommas {
			return s.parseObjectKeyOrEnd()
		}
		next, err := s.peek()
		if err != nil {
			return err
		}
		return s.parseObjectKey(next)
	}
	if tok.tag == lexRCurly {
		s.at += tok.length
		s.Span = tok.span()
		s.Token = ObjectEnd
		s.state[s.depth] = stateFinishedValue
		return nil
	}
	return s.fail(s.at, 1, "expected '}' or ','")
}

// peek classifies the next token without consuming it, except for the
// whitespace and comments that precede it, which are always consumed.
func (s *Scanner) peek() (lexeme, error) {
	if err := s.consumeSpaceAndComments(); err != nil {
		return lexeme{}, err
	}

	start := s.at
	cp, n := s.decode(start)
	switch {
	case cp == invalidRune:
		return lexeme{}, s.failEncoding(start, 1)
	case n == 0:
		return lexeme{tag: lexEOF, start: start}, nil
	case cp == 0:
		return lexeme{}, s.fail(start, 1, "unexpected null byte")
	}

	switch cp {
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return s.scanNumber()
	case '.', '+':
		if s.cfg.Dialect == JSON5 {
			return s.scanNumber()
		}
	case '"':
		return s.scanString()
	case '\'':
		if s.cfg.Dialect == JSON5 {
			return s.scanString()
		}
	case ',':
		return lexeme{tag: lexComma, start: start, length: 1}, nil
	case ':':
		return lexeme{tag: lexColon, start: start, length: 1}, nil
	case '[':
		return lexeme{tag: lexLSquare, start: start, length: 1}, nil
	case ']':
		return lexeme{tag: lexRSquare, start: start, length: 1}, nil
	case '{':
		return lexeme{tag: lexLCurly, start: start, length: 1}, nil
	case '}':
		return lexeme{tag: lexRCurly, start: start, length: 1}, nil
	}

	if tok, ok := s.scanKeyword(start); ok {
		return tok, nil
	}
	if s.cfg.Dialect == JSON5 {
		return s.scanES5Identifier()
	}
	return lexeme{}, s.fail(start, n, "unrecognized token")
}
