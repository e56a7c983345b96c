// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package judo_test

import (
	"math"
	"testing"

	"github.com/railgunlabs/judo"
)

func TestNumberify(t *testing.T) {
	tests := []struct {
		lexeme string
		want   float64
	}{
		{"0", 0},
		{"-0", 0},
		{"42", 42},
		{"-42", -42},
		{"3.14", 3.14},
		{"1e3", 1000},
		{"1E3", 1000},
		{"-1.5e-2", -0.015},
		{"0x1F", 31},
		{"0X1f", 31},
		{"-0xFF", -255},
	}

	for _, test := range tests {
		got, err := judo.Numberify(test.lexeme)
		if err != nil {
			t.Errorf("Numberify(%q): unexpected error: %v", test.lexeme, err)
			continue
		}
		if got != test.want {
			t.Errorf("Numberify(%q) = %v, want %v", test.lexeme, got, test.want)
		}
	}
}

func TestNumberifySpecialValues(t *testing.T) {
	got, err := judo.Numberify("NaN")
	if err != nil {
		t.Fatalf("Numberify(NaN): unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("Numberify(NaN) = %v, want NaN", got)
	}

	got, err = judo.Numberify("Infinite")
	if err != nil {
		t.Fatalf("Numberify(Infinite): unexpected error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("Numberify(Infinite) = %v, want +Inf", got)
	}

	got, err = judo.Numberify("-Infinite")
	if err != nil {
		t.Fatalf("Numberify(-Infinite): unexpected error: %v", err)
	}
	if !math.IsInf(got, -1) {
		t.Errorf("Numberify(-Infinite) = %v, want -Inf", got)
	}
}

func TestNumberifyErrors(t *testing.T) {
	if _, err := judo.Numberify(""); err == nil {
		t.Error("Numberify(\"\"): expected an error")
	}
	if _, err := judo.Numberify("not a number"); err == nil {
		t.Error("Numberify(garbage): expected an error")
	}
}
