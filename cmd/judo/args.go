// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/railgunlabs/judo"
)

const usage = `Usage: judo [options...]

Judo is a command-line JSON and JSON5 processor. This program reads a
document from stdin and writes it back to stdout. Errors are written to
stderr. Column indices are reported relative to the code point, not the
byte or grapheme cluster.

Options:
  -d, --dialect=D     Select the grammar: rfc4627, rfc8259, or json5
                       (default is json5).
  -q, --quiet          Validate the input, but do not print to stdout.
                       Check the exit status for success or errors.
  -p, --pretty         Print the JSON in a visually appealing way.
  -i N, --indent=N     Set the indentation width to N spaces when pretty
                       printing with spaces (default is 4).
  -t, --tabs           Indent with tabs instead of spaces when pretty
                       printing.
  -e, --escape         Escape non-ASCII characters in strings as \uXXXX.
  -v, --version        Print the version and exit.
  -h, --help           Print this help message and exit.

Exit status:
  0  if OK,
  1  if the input is malformed,
  2  if an error occurred while processing the input,
  3  if an invalid command-line option is specified.
`

const version = "0.1.0"

// parseArgs mutates opts according to args. handled is true when execution
// should stop immediately and return code, either because help/version was
// requested or because an argument was invalid.
func parseArgs(args []string, opts *options, stdout, stderr io.Writer) (code int, handled bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			fmt.Fprint(stdout, usage)
			return 0, true

		case arg == "-v" || arg == "--version":
			fmt.Fprintln(stdout, version)
			return 0, true

		case arg == "-q" || arg == "--quiet":
			opts.quiet = true

		case arg == "-p" || arg == "--pretty":
			opts.pretty = true

		case arg == "-t" || arg == "--tabs":
			opts.useTabs = true

		case arg == "-e" || arg == "--escape":
			opts.escapeUnicode = true

		case arg == "-d" || strings.HasPrefix(arg, "--dialect"):
			value, n, ok := takeValue(args, i, arg, "--dialect")
			if !ok {
				fmt.Fprintln(stderr, "error: expected dialect name")
				return 3, true
			}
			i += n
			dialect, ok := parseDialect(value)
			if !ok {
				fmt.Fprintln(stderr, "error: unknown dialect", strconv.Quote(value))
				return 3, true
			}
			opts.dialect = dialect

		case arg == "-i" || strings.HasPrefix(arg, "--indent"):
			value, n, ok := takeValue(args, i, arg, "--indent")
			if !ok {
				fmt.Fprintln(stderr, "error: expected indentation width")
				return 3, true
			}
			i += n
			width, err := strconv.Atoi(value)
			if err != nil || width <= 0 || width >= 1<<16 {
				fmt.Fprintln(stderr, "error: indentation width is too large or small")
				return 3, true
			}
			opts.indentWidth = width

		default:
			fmt.Fprintf(stderr, "error: unknown option %q\n", arg)
			return 3, true
		}
	}
	return 0, false
}

// takeValue extracts the value of a "-x VALUE" or "--long=VALUE" option.
// n is how many extra elements of args were consumed beyond the flag
// itself.
func takeValue(args []string, i int, arg, long string) (value string, n int, ok bool) {
	if arg == "-i" || arg == "-d" {
		if i == len(args)-1 {
			return "", 0, false
		}
		return args[i+1], 1, true
	}
	prefix := long + "="
	if !strings.HasPrefix(arg, prefix) {
		return "", 0, false
	}
	return arg[len(prefix):], 0, true
}

func parseDialect(s string) (judo.Dialect, bool) {
	switch strings.ToLower(s) {
	case "rfc4627":
		return judo.RFC4627, true
	case "rfc8259":
		return judo.RFC8259, true
	case "json5":
		return judo.JSON5, true
	}
	return 0, false
}
