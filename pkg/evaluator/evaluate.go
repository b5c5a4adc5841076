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
	"strconv"

	"github.com/BebeSparkelSparkel/cppcheck/pkg/common/moerr"
	"github.com/BebeSparkelSparkel/cppcheck/pkg/mathlib"
	v2 "github.com/BebeSparkelSparkel/cppcheck/pkg/util/metric/v2"
)

const (
	PathInt     = "int"
	PathFloat   = "float"
	PathUnary   = "unary"
	PathCompare = "compare"
)

const (
	DiagZeroDiv = "zerodiv"
	DiagSyntax  = "syntax"
)

type Diagnostic struct {
	Kind    string
	Message string
}

// Result of one expression. Value is the canonical text of the result,
// or "true"/"false" for comparisons. Value is empty when the integer
// division by zero has no result.
type Result struct {
	Expr       Expression
	Value      string
	Path       string
	Diagnostic *Diagnostic
}

// Evaluate computes expr. expr must come from ParseExpression.
func Evaluate(ctx context.Context, expr Expression) Result {
	switch expr.Kind {
	case ExprArith:
		return evalArith(ctx, expr)
	case ExprCompare:
		return evalCompare(expr)
	case ExprUnary:
		return evalUnary(expr)
	}
	panic(moerr.NewInternalError(ctx, "unexpected expression kind %s", expr.Kind))
}

func evalArith(ctx context.Context, expr Expression) Result {
	a, b := mathlib.Parse(expr.Left), mathlib.Parse(expr.Right)
	res := Result{Expr: expr, Path: PathFloat}
	if a.IsInt() && b.IsInt() {
		res.Path = PathInt
		v2.EvalIntCounter.Inc()
	} else {
		v2.EvalFloatCounter.Inc()
	}

	op := mathlib.Operator(expr.Op[0])
	if op == mathlib.OpDiv && b.Float() == 0 {
		res.Diagnostic = &Diagnostic{Kind: DiagZeroDiv, Message: "Division by zero."}
		v2.DiagnosticZeroDivCounter.Inc()
	}

	v, err := mathlib.Combine(a, b, op)
	if err != nil {
		if !moerr.IsMoErrCode(err, moerr.ErrDivByZero) {
			panic(err)
		}
		return res
	}
	res.Value = v.String()
	return res
}

func evalCompare(expr Expression) Result {
	v2.EvalCompareCounter.Inc()
	var ok bool
	switch expr.Op {
	case "==":
		ok = mathlib.IsEqual(expr.Left, expr.Right)
	case "!=":
		ok = mathlib.IsNotEqual(expr.Left, expr.Right)
	case ">":
		ok = mathlib.IsGreater(expr.Left, expr.Right)
	case ">=":
		ok = mathlib.IsGreaterEqual(expr.Left, expr.Right)
	case "<":
		ok = mathlib.IsLess(expr.Left, expr.Right)
	case "<=":
		ok = mathlib.IsLessEqual(expr.Left, expr.Right)
	default:
		panic(moerr.NewInternalErrorNoCtx("unexpected comparison %s", expr.Op))
	}
	return Result{Expr: expr, Value: strconv.FormatBool(ok), Path: PathCompare}
}

func evalUnary(expr Expression) Result {
	v2.EvalUnaryCounter.Inc()
	var fn func(string) string
	switch expr.Op {
	case "sin":
		fn = mathlib.Sin
	case "cos":
		fn = mathlib.Cos
	case "tan":
		fn = mathlib.Tan
	case "abs":
		fn = mathlib.Abs
	default:
		panic(moerr.NewInternalErrorNoCtx("unexpected function %s", expr.Op))
	}
	return Result{Expr: expr, Value: fn(expr.Left), Path: PathUnary}
}
