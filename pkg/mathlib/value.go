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

// Package mathlib classifies, converts, combines and compares C/C++
// numeric literals. Every function is pure and safe for concurrent use.
package mathlib

import (
	"math"
	"strconv"
)

// floatPrecision is the number of significant digits of the canonical
// float text, the default precision of a C++ ostream.
const floatPrecision = 6

// Value is either an exact 64-bit integer or a double. An integer parsed
// from text also keeps the double read from that text, which is what it
// contributes once mixed with a float: "010" is 8 as an integer and 10 as
// a double.
type Value struct {
	isInt bool
	i     int64
	f     float64
}

func IntValue(v int64) Value {
	return Value{isInt: true, i: v, f: float64(v)}
}

func FloatValue(v float64) Value {
	return Value{f: v}
}

// Parse classifies tok once and converts it: integers by IsInt become
// integer values, everything else FloatValue.
func Parse(tok string) Value {
	f := ToDoubleNumber(tok)
	if IsInt(tok) {
		return Value{isInt: true, i: ToLongNumber(tok), f: f}
	}
	return FloatValue(f)
}

func (v Value) IsInt() bool {
	return v.isInt
}

// Int returns the integer, truncating a float toward zero.
func (v Value) Int() int64 {
	if v.isInt {
		return v.i
	}
	return truncToInt64(v.f)
}

// Float returns the double of v. For an integer parsed from text it is
// the text read as a double, not the integer converted.
func (v Value) Float() float64 {
	return v.f
}

// String returns the canonical text of v.
func (v Value) String() string {
	if v.isInt {
		return strconv.FormatInt(v.i, 10)
	}
	return formatFloat(v.f)
}

// Format returns the canonical text of v.
func Format(v Value) string {
	return v.String()
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		// negative zero has the same text as zero
		return "0"
	}
	return strconv.FormatFloat(f, 'g', floatPrecision, 64)
}
