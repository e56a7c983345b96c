// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package judo

import "strconv"

// errMsgMax bounds the length of a diagnostic description, matching the C
// implementation's JUDO_ERRMAX (36 bytes, including the space for a NUL
// terminator it no longer needs in Go). Every call site that constructs a
// message must fit within this bound; it is not checked at runtime, since
// the set of messages is fixed and known at compile time.
const errMsgMax = 35

// Error reports a diagnostic produced by Step, Stringify, or Numberify. It
// implements the standard error interface so a *Error can be returned
// anywhere a Go error is expected.
type Error struct {
	// Result is the outcome that produced this error.
	Result Result

	// Span is the byte range of the input the error pertains to. It is the
	// zero Span for errors that are not associated with source text
	// (InvalidOperation, OutOfMemory).
	Span Span

	// Message is a short, human-readable description in US English.
	Message string
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Span.IsZero() {
		return e.Message
	}
	return e.Message + " at offset " + strconv.Itoa(int(e.Span.Offset))
}
