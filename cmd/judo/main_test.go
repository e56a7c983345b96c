// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunCompact(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(`{"a":1,"b":[true,false,null]}`), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr = %q, want 0", code, stderr.String())
	}
	want := `{"a":1,"b":[true,false,null]}` + "\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunPretty(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-p"}, strings.NewReader(`[1,2]`), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr = %q, want 0", code, stderr.String())
	}
	want := "[\n    1,\n    2\n]\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunQuiet(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-q"}, strings.NewReader(`[1,2]`), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr = %q, want 0", code, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestRunMalformedInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(`{"a":}`), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if stderr.Len() == 0 {
		t.Error("expected a diagnostic on stderr")
	}
}

func TestRunInvalidOption(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--bogus"}, strings.NewReader(``), &stdout, &stderr)
	if code != 3 {
		t.Fatalf("run() = %d, want 3", code)
	}
}

func TestRunDialectFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-d", "json5", "-q"}, strings.NewReader(`{unquoted: 1,}`), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr = %q, want 0", code, stderr.String())
	}
}

func TestRunDialectRejectsRFC8259(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-d", "rfc8259", "-q"}, strings.NewReader(`{unquoted: 1,}`), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-h"}, strings.NewReader(``), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "Usage: judo") {
		t.Errorf("stdout = %q, want usage text", stdout.String())
	}
}

func TestSourceLocation(t *testing.T) {
	src := []byte("ab\ncd")
	line, col := sourceLocation(src, 4)
	if line != 2 || col != 2 {
		t.Errorf("sourceLocation(4) = (%d, %d), want (2, 2)", line, col)
	}
}
