// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package judo implements a non-recursive JSON, RFC 8259 JSON, and JSON5
// scanner, together with the supporting Span, Token, Result, and Error
// types it reports through.
//
// # Scanning
//
// The Scanner type implements a pushdown lexical scanner over an
// immutable source buffer. Construct one with NewScanner and call Step to
// advance through the document:
//
//	sc := judo.NewScanner(mem.S(input), judo.Config{Dialect: judo.JSON5})
//	for {
//	    if err := sc.Step(); err != nil {
//	        log.Fatal(err)
//	    }
//	    if sc.Token == judo.EOF {
//	        break
//	    }
//	    log.Printf("token %v at %v", sc.Token, sc.Span)
//	}
//
// Step reports Token == EOF once the document is fully consumed. Any error
// it returns is a *Error describing what went wrong and where; once Step
// returns an error, the Scanner is parked and every later call returns the
// same error.
//
// A Scanner holds no pointers into caller-owned memory beyond the source
// buffer it was constructed with, so it can be copied by ordinary Go
// assignment to snapshot its position, and restored the same way.
//
// # Decoding lexemes
//
// Step never decodes the content of a String or Number token; it only
// reports the token's Span. Call Stringify on the exact text of a String
// lexeme (quotes included) to obtain its unescaped value, or Numberify on
// the exact text of a Number lexeme to obtain its float64 value.
//
// # Trees
//
// Package github.com/railgunlabs/judo/tree builds an in-memory value tree
// from a Scanner, for callers who want the whole document materialized
// rather than driving the scanner token by token.
package judo
