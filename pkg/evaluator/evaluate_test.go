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

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/BebeSparkelSparkel/cppcheck/pkg/common/moerr"
	v2 "github.com/BebeSparkelSparkel/cppcheck/pkg/util/metric/v2"
)

func mustParse(t *testing.T, line string) Expression {
	expr, ok, err := ParseExpression(context.Background(), line)
	require.NoError(t, err)
	require.True(t, ok)
	return expr
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		line  string
		value string
		path  string
	}{
		{"1 + 2", "3", PathInt},
		{"0x10 - 010", "8", PathInt},
		{"10 / 4", "2", PathInt},
		{"-7 / 2", "-3", PathInt},
		{"1.5 + 2", "3.5", PathFloat},
		{"1E2 * 2", "200", PathInt},
		{"1e2 * 2", "200", PathFloat},
		{"1.0 / 0", "inf", PathFloat},
		{"1 == 1.0", "true", PathCompare},
		{"0.1 == 1.0E-1", "true", PathCompare},
		{"2 < 1", "false", PathCompare},
		{"abs -3", "3", PathUnary},
		{"cos 0", "1", PathUnary},
		{"sin 0", "0", PathUnary},
	}
	for _, tt := range tests {
		res := Evaluate(context.Background(), mustParse(t, tt.line))
		require.Equal(t, tt.value, res.Value, tt.line)
		require.Equal(t, tt.path, res.Path, tt.line)
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	before := testutil.ToFloat64(v2.DiagnosticZeroDivCounter)

	res := Evaluate(context.Background(), mustParse(t, "1 / 0"))
	require.Equal(t, PathInt, res.Path)
	require.Empty(t, res.Value)
	require.NotNil(t, res.Diagnostic)
	require.Equal(t, DiagZeroDiv, res.Diagnostic.Kind)

	res = Evaluate(context.Background(), mustParse(t, "1.5 / 0.0"))
	require.Equal(t, PathFloat, res.Path)
	require.Equal(t, "inf", res.Value)
	require.NotNil(t, res.Diagnostic)

	res = Evaluate(context.Background(), mustParse(t, "1 / 0x0"))
	require.NotNil(t, res.Diagnostic)

	require.Equal(t, before+3, testutil.ToFloat64(v2.DiagnosticZeroDivCounter))
}

func TestEvaluateNoDiagnostic(t *testing.T) {
	for _, line := range []string{"1 / 2", "1 * 0", "0 / 1", "1 - 1"} {
		require.Nil(t, Evaluate(context.Background(), mustParse(t, line)).Diagnostic, line)
	}
}

func TestEvaluateCounters(t *testing.T) {
	intBefore := testutil.ToFloat64(v2.EvalIntCounter)
	floatBefore := testutil.ToFloat64(v2.EvalFloatCounter)
	unaryBefore := testutil.ToFloat64(v2.EvalUnaryCounter)
	compareBefore := testutil.ToFloat64(v2.EvalCompareCounter)

	Evaluate(context.Background(), mustParse(t, "1 + 1"))
	Evaluate(context.Background(), mustParse(t, "1.5 + 1"))
	Evaluate(context.Background(), mustParse(t, "tan 0"))
	Evaluate(context.Background(), mustParse(t, "1 != 2"))

	require.Equal(t, intBefore+1, testutil.ToFloat64(v2.EvalIntCounter))
	require.Equal(t, floatBefore+1, testutil.ToFloat64(v2.EvalFloatCounter))
	require.Equal(t, unaryBefore+1, testutil.ToFloat64(v2.EvalUnaryCounter))
	require.Equal(t, compareBefore+1, testutil.ToFloat64(v2.EvalCompareCounter))
}

func TestEvaluateDefect(t *testing.T) {
	defer func() {
		v := recover()
		require.NotNil(t, v)
		require.True(t, moerr.IsMoErrCode(v.(*moerr.Error), moerr.ErrInternal))
	}()
	Evaluate(context.Background(), Expression{Kind: ExprArith, Op: "%", Left: "1", Right: "2"})
}
