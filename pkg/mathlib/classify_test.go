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
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func Test_IsNegative(t *testing.T) {
	convey.Convey("isNegative skips leading whitespace", t, func() {
		convey.So(IsNegative("-1"), convey.ShouldBeTrue)
		convey.So(IsNegative("  -1"), convey.ShouldBeTrue)
		convey.So(IsNegative("\t-0x10"), convey.ShouldBeTrue)
		convey.So(IsNegative("1"), convey.ShouldBeFalse)
		convey.So(IsNegative("+1"), convey.ShouldBeFalse)
		convey.So(IsNegative(" 1-"), convey.ShouldBeFalse)
		convey.So(IsNegative(""), convey.ShouldBeFalse)
	})
}

func Test_IsHex(t *testing.T) {
	convey.Convey("isHex", t, func() {
		convey.So(IsHex("0x1A"), convey.ShouldBeTrue)
		convey.So(IsHex("0X1a"), convey.ShouldBeTrue)
		convey.So(IsHex("-0x10"), convey.ShouldBeTrue)
		convey.So(IsHex("+0XFFu"), convey.ShouldBeTrue)
		convey.So(IsHex("0x"), convey.ShouldBeTrue)
		convey.So(IsHex("1x"), convey.ShouldBeFalse)
		convey.So(IsHex("10"), convey.ShouldBeFalse)
		convey.So(IsHex(" 0x1"), convey.ShouldBeFalse)
		convey.So(IsHex(""), convey.ShouldBeFalse)
	})
}

func Test_IsOct(t *testing.T) {
	convey.Convey("isOct", t, func() {
		convey.So(IsOct("0"), convey.ShouldBeTrue)
		convey.So(IsOct("07"), convey.ShouldBeTrue)
		convey.So(IsOct("010"), convey.ShouldBeTrue)
		convey.So(IsOct("-07"), convey.ShouldBeTrue)
		convey.So(IsOct("-0"), convey.ShouldBeTrue)
		convey.So(IsOct("0x1A"), convey.ShouldBeFalse)
		convey.So(IsOct("08"), convey.ShouldBeFalse)
		convey.So(IsOct("0.5"), convey.ShouldBeFalse)
		convey.So(IsOct("00.5"), convey.ShouldBeFalse)
		convey.So(IsOct("1"), convey.ShouldBeFalse)
		convey.So(IsOct(""), convey.ShouldBeFalse)
	})
}

func Test_IsFloat(t *testing.T) {
	convey.Convey("isFloat", t, func() {
		convey.So(IsFloat("3.14"), convey.ShouldBeTrue)
		convey.So(IsFloat(".5"), convey.ShouldBeTrue)
		convey.So(IsFloat("1E-5"), convey.ShouldBeTrue)
		convey.So(IsFloat("1e-5"), convey.ShouldBeTrue)
		convey.So(IsFloat("1E+5"), convey.ShouldBeFalse)
		convey.So(IsFloat("1E5"), convey.ShouldBeFalse)
		convey.So(IsFloat("10"), convey.ShouldBeFalse)
	})
}

func Test_IsInt(t *testing.T) {
	convey.Convey("isInt accepts integer literals", t, func() {
		for _, tok := range []string{
			"10", "-10", "+10", " 10 ", "\t10\n",
			"10u", "10UL", "10lu", "10LL", "10ull",
			"0x1A", "-0x1a", "0x1AUL", "0X1f",
			"0", "017", "017u", "-0",
			"08",
			"1E5", "1E+5", "+2E10",
		} {
			convey.So(IsInt(tok), convey.ShouldBeTrue)
		}
	})

	convey.Convey("isInt rejects everything else", t, func() {
		for _, tok := range []string{
			"", "u", "UL", "abc", "-",
			"3.14", "1.", ".5",
			"1E-5", "1e-5",
			"10a", "12E+12AA", "1E5u",
			"0x1G", "019",
		} {
			convey.So(IsInt(tok), convey.ShouldBeFalse)
		}
	})

	convey.Convey("uppercase E selects scientific mode before hex", t, func() {
		// lowercase e never selects scientific mode
		convey.So(IsInt("1e5"), convey.ShouldBeFalse)
		// an uppercase E hex digit selects scientific mode as well
		convey.So(IsInt("0x1E"), convey.ShouldBeFalse)
		convey.So(IsInt("0x1e"), convey.ShouldBeTrue)
	})
}

func Test_IsOctalDigit(t *testing.T) {
	convey.Convey("isOctalDigit", t, func() {
		for c := byte('0'); c <= '7'; c++ {
			convey.So(IsOctalDigit(c), convey.ShouldBeTrue)
		}
		convey.So(IsOctalDigit('8'), convey.ShouldBeFalse)
		convey.So(IsOctalDigit('9'), convey.ShouldBeFalse)
		convey.So(IsOctalDigit('a'), convey.ShouldBeFalse)
		convey.So(IsOctalDigit(0), convey.ShouldBeFalse)
	})
}

func Test_Classify(t *testing.T) {
	convey.Convey("classify assigns exactly one kind", t, func() {
		convey.So(Classify("0x1A"), convey.ShouldEqual, KindHex)
		convey.So(Classify("017"), convey.ShouldEqual, KindOctal)
		convey.So(Classify("0"), convey.ShouldEqual, KindOctal)
		convey.So(Classify("10UL"), convey.ShouldEqual, KindDecimal)
		convey.So(Classify("1E5"), convey.ShouldEqual, KindDecimal)
		convey.So(Classify("3.14"), convey.ShouldEqual, KindFloat)
		convey.So(Classify("1e-3"), convey.ShouldEqual, KindFloat)
		convey.So(Classify("0x1AZ"), convey.ShouldEqual, KindFloat)
		convey.So(KindHex.String(), convey.ShouldEqual, "hex")
	})

	convey.Convey("integer kinds parse to integers, float kind to floats", t, func() {
		for _, tok := range []string{"0x1A", "017", "10UL", "1E5", "3.14", "1e-3", "abc"} {
			convey.So(Parse(tok).IsInt(), convey.ShouldEqual, Classify(tok) != KindFloat)
		}
	})
}
