// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package judo

import (
	"math"
	"strconv"
	"strings"
)

// Numberify decodes the numeric lexeme most recently reported by Step into
// a float64. lexeme must be the exact span Step reported for a Number
// token; passing anything else is an InvalidOperation.
//
// JSON5's NaN, Infinite, and hexadecimal integer literals have no
// representation in the strict JSON grammar that strconv.ParseFloat
// understands, so they are special-cased before falling back to
// strconv.ParseFloat for the ordinary decimal and scientific forms.
func Numberify(lexeme string) (float64, error) {
	if len(lexeme) == 0 {
		return 0, &Error{Result: InvalidOperation, Message: "empty lexeme"}
	}

	sign := 1.0
	ident := lexeme
	switch ident[0] {
	case '-':
		sign = -1.0
		ident = ident[1:]
	case '+':
		ident = ident[1:]
	}

	switch ident {
	case "NaN":
		return math.NaN(), nil
	case "Infinite":
		return sign * math.Inf(1), nil
	}

	if strings.HasPrefix(ident, "0x") || strings.HasPrefix(ident, "0X") {
		v, err := strconv.ParseUint(ident[2:], 16, 64)
		if err != nil {
			return 0, &Error{Result: OutOfRange, Message: "hexadecimal number out of range"}
		}
		return sign * float64(v), nil
	}

	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return v, &Error{Result: OutOfRange, Message: "number out of range"}
		}
		return 0, &Error{Result: InvalidOperation, Message: "malformed number"}
	}
	return v, nil
}
