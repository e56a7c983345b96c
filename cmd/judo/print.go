// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/railgunlabs/judo"
	"github.com/railgunlabs/judo/tree"
)

// printer renders a parsed tree back to text. It is not part of the judo
// or tree packages because rendering is a presentation concern specific to
// this command, not something a library caller necessarily wants.
type printer struct {
	src  string
	opts options
	w    io.Writer
}

func (p *printer) indentString(depth int) string {
	if p.opts.useTabs {
		return strings.Repeat("\t", depth)
	}
	return strings.Repeat(" ", p.opts.indentWidth*depth)
}

func (p *printer) printCompact(v *tree.Value) {
	switch v.Type() {
	case tree.KindNull:
		fmt.Fprint(p.w, "null")
	case tree.KindBool:
		fmt.Fprint(p.w, strconv.FormatBool(v.AsBool()))
	case tree.KindNumber:
		p.printLexeme(v.Span)
	case tree.KindString:
		p.printString(v.Span)
	case tree.KindArray:
		fmt.Fprint(p.w, "[")
		for e := v.FirstElement(); e != nil; e = e.NextElement() {
			if e != v.FirstElement() {
				fmt.Fprint(p.w, ",")
			}
			p.printCompact(e)
		}
		fmt.Fprint(p.w, "]")
	case tree.KindObject:
		fmt.Fprint(p.w, "{")
		for m := v.FirstMember(); m != nil; m = m.NextMember() {
			if m != v.FirstMember() {
				fmt.Fprint(p.w, ",")
			}
			p.printString(m.NameSpan)
			fmt.Fprint(p.w, ":")
			p.printCompact(m.Value())
		}
		fmt.Fprint(p.w, "}")
	}
}

func (p *printer) printPretty(v *tree.Value, depth int) {
	switch v.Type() {
	case tree.KindArray:
		if v.Len() == 0 {
			fmt.Fprint(p.w, "[]")
			return
		}
		fmt.Fprintln(p.w, "[")
		first := true
		for e := v.FirstElement(); e != nil; e = e.NextElement() {
			if !first {
				fmt.Fprintln(p.w, ",")
			}
			first = false
			fmt.Fprint(p.w, p.indentString(depth+1))
			p.printPretty(e, depth+1)
		}
		fmt.Fprintln(p.w)
		fmt.Fprint(p.w, p.indentString(depth), "]")

	case tree.KindObject:
		if v.Len() == 0 {
			fmt.Fprint(p.w, "{}")
			return
		}
		fmt.Fprintln(p.w, "{")
		first := true
		for m := v.FirstMember(); m != nil; m = m.NextMember() {
			if !first {
				fmt.Fprintln(p.w, ",")
			}
			first = false
			fmt.Fprint(p.w, p.indentString(depth+1))
			p.printString(m.NameSpan)
			fmt.Fprint(p.w, ": ")
			p.printPretty(m.Value(), depth+1)
		}
		fmt.Fprintln(p.w)
		fmt.Fprint(p.w, p.indentString(depth), "}")

	default:
		p.printCompact(v)
	}
}

func (p *printer) printLexeme(span judo.Span) {
	fmt.Fprint(p.w, p.src[span.Offset:span.End()])
}

// printString decodes the string at span and re-encodes it as a standard
// double-quoted JSON string, regardless of whether the source used single
// quotes. When escapeUnicode is set, every code point outside ASCII is
// emitted as a \uXXXX escape, matching the reference CLI's -e flag.
func (p *printer) printString(span judo.Span) {
	text := p.src[span.Offset:span.End()]

	decoded, err := judo.Stringify(text)
	if err != nil {
		fmt.Fprint(p.w, text)
		return
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, r := range decoded {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || (p.opts.escapeUnicode && r > 0x7E) {
				if r > 0xFFFF {
					hi := rune(0xD800 + ((r - 0x10000) >> 10))
					lo := rune(0xDC00 + ((r - 0x10000) & 0x3FF))
					fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
				} else {
					fmt.Fprintf(&b, `\u%04x`, r)
				}
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	fmt.Fprint(p.w, b.String())
}
