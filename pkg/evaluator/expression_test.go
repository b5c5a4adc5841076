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

package evaluator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BebeSparkelSparkel/cppcheck/pkg/common/moerr"
)

func TestParseExpression(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		line string
		want Expression
	}{
		{"1 + 2", Expression{Kind: ExprArith, Op: "+", Left: "1", Right: "2"}},
		{"  0x10   /  0  ", Expression{Kind: ExprArith, Op: "/", Left: "0x10", Right: "0"}},
		{"1.0 == 1", Expression{Kind: ExprCompare, Op: "==", Left: "1.0", Right: "1"}},
		{"-3 <= 4", Expression{Kind: ExprCompare, Op: "<=", Left: "-3", Right: "4"}},
		{"abs -2.5", Expression{Kind: ExprUnary, Op: "abs", Left: "-2.5"}},
		{"sin 0", Expression{Kind: ExprUnary, Op: "sin", Left: "0"}},
	}
	for _, tt := range tests {
		expr, ok, err := ParseExpression(ctx, tt.line)
		require.NoError(t, err, tt.line)
		require.True(t, ok, tt.line)
		require.Equal(t, tt.want, expr, tt.line)
	}
}

func TestParseExpressionSkip(t *testing.T) {
	for _, line := range []string{"", "   ", "\t", "# comment", "#1 + 2"} {
		_, ok, err := ParseExpression(context.Background(), line)
		require.NoError(t, err)
		require.False(t, ok, "%q", line)
	}
}

func TestParseExpressionErrors(t *testing.T) {
	for _, line := range []string{
		"1 % 2",
		"1 ^ 2",
		"sqrt 4",
		"1",
		"1 + 2 + 3",
	} {
		_, ok, err := ParseExpression(context.Background(), line)
		require.False(t, ok)
		require.True(t, moerr.IsMoErrCode(err, moerr.ErrSyntaxError), line)
	}
}

func TestParseExpressionDetail(t *testing.T) {
	ctx := moerr.AttachDetail(context.Background(), "a.txt:3")
	_, _, err := ParseExpression(ctx, "1 ? 2")
	require.Equal(t, "syntax error: unknown operator ?: a.txt:3", err.(*moerr.Error).Display())
}

func TestExpressionString(t *testing.T) {
	require.Equal(t, "1 + 2", Expression{Kind: ExprArith, Op: "+", Left: "1", Right: "2"}.String())
	require.Equal(t, "cos 0", Expression{Kind: ExprUnary, Op: "cos", Left: "0"}.String())
	require.Equal(t, "compare", ExprCompare.String())
	require.Equal(t, "unknown", ExprKind(9).String())
}
