// Copyright 2024 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mathlib

import "strings"

// Kind is the lexical kind of a numeric literal.
type Kind uint8

const (
	KindDecimal Kind = iota
	KindHex
	KindOctal
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindDecimal:
		return "decimal"
	case KindHex:
		return "hex"
	case KindOctal:
		return "octal"
	case KindFloat:
		return "float"
	}
	return "unknown"
}

// Classify assigns exactly one kind to tok. Tokens that are not integers
// by IsInt are floating.
func Classify(tok string) Kind {
	if !IsInt(tok) {
		return KindFloat
	}
	if IsHex(tok) {
		return KindHex
	}
	if IsOct(tok) {
		return KindOctal
	}
	return KindDecimal
}

// Character classes are fixed ASCII ranges, never locale dependent.

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func isSign(c byte) bool {
	return c == '-' || c == '+'
}

// at returns s[i], or 0 past the end of s.
func at(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// signLen is 1 if tok starts with a sign character. Leading whitespace
// is not skipped.
func signLen(tok string) int {
	if isSign(at(tok, 0)) {
		return 1
	}
	return 0
}

// IsOctalDigit reports whether c is one of 0-7.
func IsOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

// IsNegative reports whether the first non-whitespace character is '-'.
func IsNegative(tok string) bool {
	return at(tok, skipSpace(tok, 0)) == '-'
}

// IsHex reports whether tok, after an optional sign, starts with 0x or 0X.
func IsHex(tok string) bool {
	i := signLen(tok)
	return at(tok, i) == '0' && (at(tok, i+1) == 'x' || at(tok, i+1) == 'X')
}

// IsOct reports whether tok, after an optional sign, is a 0 followed by an
// octal digit or by the end of the token. A leading "0." is never octal.
func IsOct(tok string) bool {
	i := signLen(tok)
	if at(tok, i) != '0' {
		return false
	}
	if i+1 < len(tok) && !IsOctalDigit(tok[i+1]) {
		return false
	}
	return !IsFloat(tok)
}

// IsFloat reports whether tok contains a decimal point or a negative
// exponent. Only "E-" and "e-" count; "E+" does not make a float.
func IsFloat(tok string) bool {
	if strings.Contains(tok, ".") {
		return true
	}
	return hasNegativeExponent(tok)
}

func hasNegativeExponent(tok string) bool {
	return strings.Contains(tok, "E-") || strings.Contains(tok, "e-")
}

// IsInt reports whether tok is an integer literal: decimal, hex, octal,
// or scientific with a non-negative exponent, each optionally signed,
// suffixed and surrounded by whitespace.
func IsInt(tok string) bool {
	if strings.Contains(tok, ".") || hasNegativeExponent(tok) {
		return false
	}
	return newIntScanner(tok).run()
}
