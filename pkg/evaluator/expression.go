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
	"strings"

	"github.com/BebeSparkelSparkel/cppcheck/pkg/common/moerr"
)

type ExprKind uint8

const (
	ExprArith ExprKind = iota
	ExprCompare
	ExprUnary
)

func (k ExprKind) String() string {
	switch k {
	case ExprArith:
		return "arith"
	case ExprCompare:
		return "compare"
	case ExprUnary:
		return "unary"
	}
	return "unknown"
}

// Expression is one literal expression: "<lit> <op> <lit>" or "<fn> <lit>".
type Expression struct {
	Kind  ExprKind
	Op    string
	Left  string
	Right string
}

func (e Expression) String() string {
	if e.Kind == ExprUnary {
		return e.Op + " " + e.Left
	}
	return e.Left + " " + e.Op + " " + e.Right
}

func exprKindOf(op string) (ExprKind, bool) {
	switch op {
	case "+", "-", "*", "/":
		return ExprArith, true
	case "==", "!=", ">", ">=", "<", "<=":
		return ExprCompare, true
	}
	return 0, false
}

func isUnaryFunc(name string) bool {
	switch name {
	case "sin", "cos", "tan", "abs":
		return true
	}
	return false
}

// ParseExpression parses a whitespace separated expression. Blank lines
// and lines starting with '#' return ok false and no error. Operators and
// functions are validated here so the engine never sees an unknown one.
func ParseExpression(ctx context.Context, line string) (expr Expression, ok bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return Expression{}, false, nil
	}
	switch len(fields) {
	case 2:
		if !isUnaryFunc(fields[0]) {
			return Expression{}, false, moerr.NewSyntaxError(ctx, "unknown function %s", fields[0])
		}
		return Expression{Kind: ExprUnary, Op: fields[0], Left: fields[1]}, true, nil
	case 3:
		kind, valid := exprKindOf(fields[1])
		if !valid {
			return Expression{}, false, moerr.NewSyntaxError(ctx, "unknown operator %s", fields[1])
		}
		return Expression{Kind: kind, Op: fields[1], Left: fields[0], Right: fields[2]}, true, nil
	}
	return Expression{}, false, moerr.NewSyntaxError(ctx, "expected '<literal> <op> <literal>' or '<func> <literal>', got %q", line)
}
