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

// Equal compares the canonical float text of a and b, so that 0.1 and
// 1.0E-1 are equal. Values that only differ beyond the float precision
// of the canonical text are equal too.
func Equal(a, b Value) bool {
	return formatFloat(a.Float()) == formatFloat(b.Float())
}

// Compare orders a and b as floats: -1, 0 or 1. Integers beyond 2^53 lose
// precision. NaN compares as unordered and yields 0 with ok false.
func Compare(a, b Value) (cmp int, ok bool) {
	x, y := a.Float(), b.Float()
	switch {
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	case x == y:
		return 0, true
	}
	return 0, false
}

func IsEqual(first, second string) bool {
	return formatFloat(ToDoubleNumber(first)) == formatFloat(ToDoubleNumber(second))
}

func IsNotEqual(first, second string) bool {
	return !IsEqual(first, second)
}

func IsGreater(first, second string) bool {
	return ToDoubleNumber(first) > ToDoubleNumber(second)
}

func IsGreaterEqual(first, second string) bool {
	return ToDoubleNumber(first) >= ToDoubleNumber(second)
}

func IsLess(first, second string) bool {
	return ToDoubleNumber(first) < ToDoubleNumber(second)
}

func IsLessEqual(first, second string) bool {
	return ToDoubleNumber(first) <= ToDoubleNumber(second)
}
