// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package judo_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go4.org/mem"

	"github.com/railgunlabs/judo"
)

func scanAll(t *testing.T, input string, cfg judo.Config) ([]judo.Token, error) {
	t.Helper()
	sc := judo.NewScanner(mem.S(input), cfg)
	var got []judo.Token
	for {
		if err := sc.Step(); err != nil {
			return got, err
		}
		got = append(got, sc.Token)
		if sc.Token == judo.EOF {
			return got, nil
		}
	}
}

func TestScannerRFC8259(t *testing.T) {
	cfg := judo.Config{Dialect: judo.RFC8259}

	tests := []struct {
		input string
		want  []judo.Token
	}{
		{"true", []judo.Token{judo.True, judo.EOF}},
		{"false", []judo.Token{judo.False, judo.EOF}},
		{"null", []judo.Token{judo.Null, judo.EOF}},
		{"42", []judo.Token{judo.Number, judo.EOF}},
		{`"hello"`, []judo.Token{judo.String, judo.EOF}},
		{"[]", []judo.Token{judo.ArrayBegin, judo.ArrayEnd, judo.EOF}},
		{"{}", []judo.Token{judo.ObjectBegin, judo.ObjectEnd, judo.EOF}},
		{"[1,2,3]", []judo.Token{
			judo.ArrayBegin, judo.Number, judo.Number, judo.Number, judo.ArrayEnd, judo.EOF,
		}},
		{"3.14", []judo.Token{judo.Number, judo.EOF}},
		{`{"pi":3.14}`, []judo.Token{
			judo.ObjectBegin, judo.ObjectName, judo.Number, judo.ObjectEnd, judo.EOF,
		}},
		{"[1.5,2.25]", []judo.Token{
			judo.ArrayBegin, judo.Number, judo.Number, judo.ArrayEnd, judo.EOF,
		}},
		{"1.5e2", []judo.Token{judo.Number, judo.EOF}},
		{`{"a":true,"b":null}`, []judo.Token{
			judo.ObjectBegin,
			judo.ObjectName, judo.True,
			judo.ObjectName, judo.Null,
			judo.ObjectEnd, judo.EOF,
		}},
		{"  \t\n [ 1 , 2 ]  \n", []judo.Token{
			judo.ArrayBegin, judo.Number, judo.Number, judo.ArrayEnd, judo.EOF,
		}},
	}

	for _, test := range tests {
		got, err := scanAll(t, test.input, cfg)
		if err != nil {
			t.Errorf("scan %q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("scan %q: wrong tokens (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestScannerRFC4627RejectsScalarRoot(t *testing.T) {
	cfg := judo.Config{Dialect: judo.RFC4627}
	if _, err := scanAll(t, "42", cfg); err == nil {
		t.Error("expected an error scanning a scalar root under RFC4627")
	}
	if _, err := scanAll(t, "[1,2]", cfg); err != nil {
		t.Errorf("unexpected error scanning an array root: %v", err)
	}
}

func TestScannerJSON5(t *testing.T) {
	cfg := judo.Config{Dialect: judo.JSON5}

	tests := []struct {
		input string
		want  []judo.Token
	}{
		{"// a comment\n42", []judo.Token{judo.Number, judo.EOF}},
		{"/* block */ 42", []judo.Token{judo.Number, judo.EOF}},
		{"{unquoted: 1,}", []judo.Token{
			judo.ObjectBegin, judo.ObjectName, judo.Number, judo.ObjectEnd, judo.EOF,
		}},
		{"[1, 2, 3,]", []judo.Token{
			judo.ArrayBegin, judo.Number, judo.Number, judo.Number, judo.ArrayEnd, judo.EOF,
		}},
		{"'single quoted'", []judo.Token{judo.String, judo.EOF}},
		{"+1.5", []judo.Token{judo.Number, judo.EOF}},
		{".5", []judo.Token{judo.Number, judo.EOF}},
		{"5.", []judo.Token{judo.Number, judo.EOF}},
		{"0xFF", []judo.Token{judo.Number, judo.EOF}},
		{"NaN", []judo.Token{judo.Number, judo.EOF}},
		{"Infinite", []judo.Token{judo.Number, judo.EOF}},
		{"-Infinite", []judo.Token{judo.Number, judo.EOF}},
	}

	for _, test := range tests {
		got, err := scanAll(t, test.input, cfg)
		if err != nil {
			t.Errorf("scan %q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("scan %q: wrong tokens (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestScannerJSON5ReservedWordKeyRejected(t *testing.T) {
	cfg := judo.Config{Dialect: judo.JSON5}
	if _, err := scanAll(t, "{class: 1}", cfg); err == nil {
		t.Error("expected an error for a reserved-word object key")
	}
}

func TestScannerRejectsOctal(t *testing.T) {
	cfg := judo.Config{Dialect: judo.RFC8259}
	if _, err := scanAll(t, "[012]", cfg); err == nil {
		t.Error("expected an error scanning an octal-looking number")
	}
}

func TestScannerRejectsTrailingCommaUnderRFC8259(t *testing.T) {
	cfg := judo.Config{Dialect: judo.RFC8259}
	if _, err := scanAll(t, "[1,]", cfg); err == nil {
		t.Error("expected an error for a trailing comma")
	}
}

func TestScannerMaxDepth(t *testing.T) {
	cfg := judo.Config{Dialect: judo.RFC8259, MaxDepth: 2}
	if _, err := scanAll(t, "[[[1]]]", cfg); err == nil {
		t.Error("expected a maximum nesting error")
	} else if jerr, ok := err.(*judo.Error); !ok || jerr.Result != judo.MaximumNesting {
		t.Errorf("got error %v, want MaximumNesting", err)
	}
}

func TestScannerMaxDepthExceedsStackCapacity(t *testing.T) {
	cfg := judo.Config{Dialect: judo.RFC8259, MaxDepth: 1000}
	sc := judo.NewScanner(mem.S("[1]"), cfg)
	err := sc.Step()
	if err == nil {
		t.Fatal("expected an error for a MaxDepth exceeding the stack capacity")
	}
	if jerr, ok := err.(*judo.Error); !ok || jerr.Result != judo.InvalidOperation {
		t.Errorf("got error %v, want InvalidOperation", err)
	}
}

func TestScannerInputTooLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates a source buffer just over MaxSourceLength")
	}
	src := make([]byte, judo.MaxSourceLength+1)
	sc := judo.NewScanner(mem.B(src), judo.Config{Dialect: judo.RFC8259})
	err := sc.Step()
	if err == nil {
		t.Fatal("expected an error for a source buffer over MaxSourceLength")
	}
	if jerr, ok := err.(*judo.Error); !ok || jerr.Result != judo.InputTooLarge {
		t.Errorf("got error %v, want InputTooLarge", err)
	}
}

func TestScannerResumable(t *testing.T) {
	sc := judo.NewScanner(mem.S("[1,2,3]"), judo.Config{Dialect: judo.RFC8259})
	if err := sc.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if sc.Token != judo.ArrayBegin {
		t.Fatalf("got %v, want ArrayBegin", sc.Token)
	}

	snapshot := sc
	for i := 0; i < 2; i++ {
		if err := sc.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}

	sc = snapshot
	if err := sc.Step(); err != nil {
		t.Fatalf("Step after restore: %v", err)
	}
	if sc.Token != judo.Number {
		t.Errorf("got %v, want Number", sc.Token)
	}
}
