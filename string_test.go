// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package judo_test

import (
	"testing"

	"github.com/railgunlabs/judo"
)

func TestStringify(t *testing.T) {
	tests := []struct {
		lexeme string
		want   string
	}{
		{`""`, ""},
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb\\c"`, "a\tb\\c"},
		{`"A"`, "A"},
		{`"😀"`, "😀"},
		{`'single'`, "single"},
		{`'it\'s'`, "it's"},
		{`"\x41"`, "A"},
		{`"line\
continued"`, "linecontinued"},
	}

	for _, test := range tests {
		got, err := judo.Stringify(test.lexeme)
		if err != nil {
			t.Errorf("Stringify(%q): unexpected error: %v", test.lexeme, err)
			continue
		}
		if got != test.want {
			t.Errorf("Stringify(%q) = %q, want %q", test.lexeme, got, test.want)
		}
	}
}

func TestStringifyErrors(t *testing.T) {
	if _, err := judo.Stringify(""); err == nil {
		t.Error("Stringify(\"\"): expected an error")
	}
	if _, err := judo.Stringify(`"`); err == nil {
		t.Error("Stringify(single quote char): expected an error")
	}
}

func TestStringifyUnquotedIdentifier(t *testing.T) {
	tests := []struct {
		lexeme string
		want   string
	}{
		{"abc", "abc"},
		{"$_abc123", "$_abc123"},
		{"a" + "\\u0062" + "c", "abc"},
	}

	for _, test := range tests {
		got, err := judo.Stringify(test.lexeme)
		if err != nil {
			t.Errorf("Stringify(%q): unexpected error: %v", test.lexeme, err)
			continue
		}
		if got != test.want {
			t.Errorf("Stringify(%q) = %q, want %q", test.lexeme, got, test.want)
		}
	}
}

func TestStringifyUnquotedIdentifierMalformedEscape(t *testing.T) {
	if _, err := judo.Stringify("a" + "\\u00"); err == nil {
		t.Error("expected an error for a truncated identifier escape")
	}
}
