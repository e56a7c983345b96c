// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package judo

// A Span describes a contiguous byte range of a source buffer, in UTF-8 code
// units. Offset and Length are always non-negative for a span associated
// with a token; the zero Span denotes "no location".
type Span struct {
	Offset int32
	Length int32
}

// End returns the offset immediately following the span.
func (s Span) End() int32 { return s.Offset + s.Length }

// IsZero reports whether s is the zero-value span.
func (s Span) IsZero() bool { return s.Offset == 0 && s.Length == 0 }
