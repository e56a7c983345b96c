// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Command judo reads a JSON or JSON5 document from stdin, parses it, and
// writes it back to stdout, either compactly or pretty-printed.
package main

import (
	"fmt"
	"io"
	"os"

	"go4.org/mem"

	"github.com/railgunlabs/judo"
	"github.com/railgunlabs/judo/tree"
)

// maxInputBytes bounds stdin the same way the reference CLI's
// judo_readstdin does, to keep offsets within int32 and bound memory use
// against an unbounded pipe.
const maxInputBytes = 10 * 1024 * 1024

type options struct {
	dialect       judo.Dialect
	quiet         bool
	pretty        bool
	useTabs       bool
	escapeUnicode bool
	indentWidth   int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := options{dialect: judo.JSON5, indentWidth: 4}

	if code, handled := parseArgs(args, &opts, stdout, stderr); handled {
		return code
	}

	input, err := readAll(stdin, maxInputBytes)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	sc := judo.NewScanner(mem.B(input), judo.Config{Dialect: opts.dialect})
	root, err := tree.Parse(&sc, tree.GCAllocator{})
	if err != nil {
		jerr, ok := err.(*judo.Error)
		if !ok {
			fmt.Fprintln(stderr, "error:", err)
			return 2
		}
		if jerr.Result == judo.OutOfMemory || jerr.Result == judo.Malfunction {
			fmt.Fprintln(stderr, "error:", jerr.Message)
			return 2
		}
		line, column := sourceLocation(input, int(jerr.Span.Offset))
		fmt.Fprintf(stderr, "stdin:%d:%d: error: %s\n", line, column, jerr.Message)
		return 1
	}

	if !opts.quiet {
		p := printer{src: string(input), opts: opts, w: stdout}
		if opts.pretty {
			p.printPretty(root, 0)
		} else {
			p.printCompact(root)
		}
		fmt.Fprintln(stdout)
	}

	return 0
}

// readAll reads r to completion, refusing input past limit bytes.
func readAll(r io.Reader, limit int64) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(buf)) > limit {
		return nil, fmt.Errorf("input too large (limit is %d bytes)", limit)
	}
	return buf, nil
}

// sourceLocation converts a byte offset into a 1-based line and code point
// column, matching the reference CLI's compulate_source_location.
func sourceLocation(src []byte, offset int) (line, column int) {
	line, column = 1, 1
	s := string(src[:offset])
	for _, r := range s {
		if r == '\n' || r == 0x2028 || r == 0x2029 {
			line++
			column = 1
			continue
		}
		if r == '\r' {
			continue
		}
		column++
	}
	return line, column
}
