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

	"golang.org/x/exp/constraints"

	"github.com/BebeSparkelSparkel/cppcheck/pkg/common/moerr"
)

// Operator is a binary arithmetic operator.
type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
)

func (op Operator) Valid() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

func (op Operator) String() string {
	return string(rune(op))
}

// unexpectedOperator is the defect raised for an operator that should
// have been rejected by the caller.
func unexpectedOperator(op Operator) *moerr.Error {
	return moerr.NewInternalErrorNoCtx("unexpected action '%c' in mathlib.Calculate(), please report this to the developers", byte(op))
}

func apply[T constraints.Integer | constraints.Float](a, b T, op Operator) T {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	}
	panic(unexpectedOperator(op))
}

// Combine computes a op b. When both values are integers the result is an
// integer that wraps on overflow; otherwise both are promoted to float.
//
// Integer division by zero returns moerr.ErrDivByZero. Float division by
// zero yields an infinity or NaN. An invalid operator panics with an
// internal error: it is a defect of the caller, not a property of the
// operands.
func Combine(a, b Value, op Operator) (Value, error) {
	if !op.Valid() {
		panic(unexpectedOperator(op))
	}
	if a.isInt && b.isInt {
		if op == OpDiv && b.i == 0 {
			return Value{}, moerr.NewDivByZeroNoCtx()
		}
		return IntValue(apply(a.i, b.i, op)), nil
	}
	return FloatValue(apply(a.Float(), b.Float(), op)), nil
}

func combine(first, second string, op Operator) (string, error) {
	v, err := Combine(Parse(first), Parse(second), op)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// mustCombine is for operators that cannot fail.
func mustCombine(first, second string, op Operator) string {
	s, _ := combine(first, second, op)
	return s
}

func Add(first, second string) string {
	return mustCombine(first, second, OpAdd)
}

func Subtract(first, second string) string {
	return mustCombine(first, second, OpSub)
}

func Multiply(first, second string) string {
	return mustCombine(first, second, OpMul)
}

func Divide(first, second string) (string, error) {
	return combine(first, second, OpDiv)
}

// Calculate dispatches action, one of + - * /, on two literals and
// returns the canonical text of the result. Any other action panics
// with an internal error.
func Calculate(first, second string, action byte) (string, error) {
	return combine(first, second, Operator(action))
}

// Unary applies fn to v converted to float.
func Unary(v Value, fn func(float64) float64) Value {
	return FloatValue(fn(v.Float()))
}

func unary(tok string, fn func(float64) float64) string {
	return FloatValue(fn(ToDoubleNumber(tok))).String()
}

func Sin(tok string) string {
	return unary(tok, math.Sin)
}

func Cos(tok string) string {
	return unary(tok, math.Cos)
}

func Tan(tok string) string {
	return unary(tok, math.Tan)
}

func Abs(tok string) string {
	return unary(tok, math.Abs)
}
