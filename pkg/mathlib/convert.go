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

import (
	"math"
	"strconv"
	"strings"
)

// ToLongNumber converts tok to a 64-bit integer. Hex and octal tokens are
// read in their base, tokens with an exponent go through float conversion
// and are truncated toward zero, everything else is read as decimal.
// Only the leading numeric part is read, so suffixes are ignored.
//
// Overflow is not reported: a magnitude above MaxUint64 saturates, and
// the signed result wraps like a C conversion from unsigned long long.
func ToLongNumber(tok string) int64 {
	switch {
	case IsHex(tok):
		return parseIntPrefix(tok, 16)
	case IsOct(tok):
		return parseIntPrefix(tok, 8)
	case strings.ContainsAny(tok, "eE"):
		return truncToInt64(parseFloatPrefix(tok))
	}
	return parseIntPrefix(tok, 10)
}

// ToDoubleNumber converts tok to a float64.
func ToDoubleNumber(tok string) float64 {
	if IsHex(tok) {
		return float64(ToLongNumber(tok))
	}
	if IsNullValue(tok) {
		return 0.0
	}
	return parseFloatPrefix(tok)
}

// IsNullValue reports whether tok is one of the recognized spellings of
// zero. The set is closed: "00" or "0.00" are not in it and are parsed
// like any other float.
func IsNullValue(tok string) bool {
	switch tok {
	case "-0", "0", "+0",
		"-0.0", "0.0", "+0.0",
		"-0.", "+0.",
		"-0E-00", "-0E+00", "+0E+00", "+0E-00",
		"-0e-00", "-0e+00", "+0e+00", "+0e-00",
		"-0E-0":
		return true
	}
	return false
}

func digitOf(base int) func(byte) bool {
	switch base {
	case 16:
		return isHexDigit
	case 8:
		return IsOctalDigit
	}
	return isDigit
}

func parseIntPrefix(tok string, base int) int64 {
	i := skipSpace(tok, 0)
	neg := false
	if isSign(at(tok, i)) {
		neg = tok[i] == '-'
		i++
	}
	if base == 16 && at(tok, i) == '0' && lower(at(tok, i+1)) == 'x' {
		i += 2
	}
	isDigitOf := digitOf(base)
	start := i
	for i < len(tok) && isDigitOf(tok[i]) {
		i++
	}
	if start == i {
		return 0
	}
	// ParseUint returns MaxUint64 together with ErrRange on overflow.
	mag, _ := strconv.ParseUint(tok[start:i], base, 64)
	v := int64(mag)
	if neg {
		v = -v
	}
	return v
}

// floatPrefixLen returns the length of the longest float literal starting
// at tok[i:], 0 if there is none. inf and nan are accepted so that the
// canonical text of non-finite values parses back.
func floatPrefixLen(tok string, i int) int {
	start := i
	if isSign(at(tok, i)) {
		i++
	}
	for _, word := range [...]string{"infinity", "inf", "nan"} {
		if word == "nan" && i != start {
			break
		}
		if len(tok)-i >= len(word) && strings.EqualFold(tok[i:i+len(word)], word) {
			return i + len(word) - start
		}
	}
	mantissa := 0
	for isDigit(at(tok, i)) {
		i++
		mantissa++
	}
	if at(tok, i) == '.' {
		i++
		for isDigit(at(tok, i)) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0
	}
	if lower(at(tok, i)) == 'e' {
		j := i + 1
		if isSign(at(tok, j)) {
			j++
		}
		if isDigit(at(tok, j)) {
			for isDigit(at(tok, j)) {
				j++
			}
			i = j
		}
	}
	return i - start
}

func parseFloatPrefix(tok string) float64 {
	i := skipSpace(tok, 0)
	n := floatPrefixLen(tok, i)
	if n == 0 {
		return 0
	}
	// On ErrRange ParseFloat still returns the correctly signed infinity or zero.
	f, err := strconv.ParseFloat(tok[i:i+n], 64)
	if err != nil && !isRangeError(err) {
		return 0
	}
	return f
}

func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// truncToInt64 truncates toward zero and saturates out of range values.
func truncToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
