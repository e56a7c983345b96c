// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package tree

import "github.com/railgunlabs/judo"

// String decodes a KindString value's escape sequences using its source
// span against src, mirroring judo_stringify applied to a parsed node
// rather than a raw lexeme.
func (v *Value) String(src string) (string, error) {
	if v.kind != KindString {
		return "", &judo.Error{Result: judo.InvalidOperation, Message: "value is not a string"}
	}
	return judo.Stringify(src[v.Span.Offset:v.Span.End()])
}

// Float64 decodes a KindNumber value using its source span against src.
func (v *Value) Float64(src string) (float64, error) {
	if v.kind != KindNumber {
		return 0, &judo.Error{Result: judo.InvalidOperation, Message: "value is not a number"}
	}
	return judo.Numberify(src[v.Span.Offset:v.Span.End()])
}

// Name decodes a member's name, which is always a JSON string or, in
// JSON5, possibly an unquoted identifier. Either way Stringify decodes it:
// identifiers may themselves carry \uXXXX escapes, which Stringify
// recognizes by the absence of a leading quote.
func (m *Member) Name(src string) (string, error) {
	text := src[m.NameSpan.Offset:m.NameSpan.End()]
	return judo.Stringify(text)
}
