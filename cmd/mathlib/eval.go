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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BebeSparkelSparkel/cppcheck/pkg/evaluator"
)

func evalCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expr>...",
		Short: "Evaluate expressions such as '0x10 * 2' or 'abs -1.5'",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter := newReporter(state.stdout, state.stderr)
			diagnostics := 0
			for _, arg := range args {
				expr, ok, err := evaluator.ParseExpression(cmd.Context(), arg)
				if err != nil {
					reporter.ReportErr(fmt.Sprintf("(error) %s", err.Error()))
					diagnostics++
					continue
				}
				if !ok {
					continue
				}
				res := evaluator.Evaluate(cmd.Context(), expr)
				if res.Diagnostic != nil {
					reporter.ReportErr(fmt.Sprintf("(error) %s %s", res.Diagnostic.Message, expr))
					diagnostics++
					continue
				}
				reporter.ReportOut(fmt.Sprintf("%s = %s", expr, res.Value))
			}
			state.finish(diagnostics)
			return nil
		},
	}
}
