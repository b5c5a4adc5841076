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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"0.1", "1.0E-1", true},
		{"10", "10.0", true},
		{"0x10", "16", true},
		{"017", "17", true},
		{"010", "10.0", true},
		{"017", "15", false},
		{"9223372036854775808", "9223372036854775808.0", true},
		{"1E2", "100.0", true},
		{"-0.00", "0", true},
		{"1", "2", false},
		{"0.1", "0.2", false},
		// equal after formatting at the canonical precision
		{"1.0000001", "1", true},
		{"nan", "nan", true},
	}
	for _, tt := range tests {
		t.Run(tt.a+"=="+tt.b, func(t *testing.T) {
			require.Equal(t, tt.want, IsEqual(tt.a, tt.b))
			require.Equal(t, !tt.want, IsNotEqual(tt.a, tt.b))
			require.Equal(t, tt.want, Equal(Parse(tt.a), Parse(tt.b)))
		})
	}
}

func TestOrdering(t *testing.T) {
	require.True(t, IsGreater("2", "1"))
	require.False(t, IsGreater("1", "1.0"))
	require.True(t, IsGreaterEqual("1", "1.0"))
	require.True(t, IsLess("-1", "0"))
	require.True(t, IsLess("0.5", "0x1"))
	require.True(t, IsLessEqual("0x1A", "26"))
	require.False(t, IsLessEqual("27", "0x1A"))

	// compared as doubles, integers beyond 2^53 collapse
	require.False(t, IsGreater("9007199254740993", "9007199254740992"))

	require.False(t, IsLess("nan", "1"))
	require.False(t, IsGreaterEqual("nan", "1"))
}

func TestCompare(t *testing.T) {
	cmp, ok := Compare(IntValue(1), FloatValue(2.5))
	require.True(t, ok)
	require.Equal(t, -1, cmp)

	cmp, ok = Compare(Parse("0x10"), Parse("16.0"))
	require.True(t, ok)
	require.Equal(t, 0, cmp)

	cmp, ok = Compare(FloatValue(3), IntValue(-3))
	require.True(t, ok)
	require.Equal(t, 1, cmp)

	_, ok = Compare(FloatValue(math.NaN()), IntValue(0))
	require.False(t, ok)
}
