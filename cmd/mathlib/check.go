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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/BebeSparkelSparkel/cppcheck/pkg/evaluator"
	"github.com/BebeSparkelSparkel/cppcheck/pkg/logutil"
	v2 "github.com/BebeSparkelSparkel/cppcheck/pkg/util/metric/v2"
)

type checkFlags struct {
	jobs           int
	errorsOnly     bool
	verbose        bool
	reportProgress bool
	exitCode       int
	metricsFile    string
}

func checkCommand(state *cliState) *cobra.Command {
	flags := &checkFlags{}
	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Check files of literal expressions, one expression per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(cmd, state)
			if err := state.cfg.Validate(); err != nil {
				return err
			}

			runner, err := evaluator.NewRunner(state.cfg, newReporter(state.stdout, state.stderr))
			if err != nil {
				return err
			}
			defer runner.Close()

			summary, err := runner.Run(cmd.Context(), args)
			if err != nil {
				return err
			}
			if flags.metricsFile != "" {
				if err = prometheus.WriteToTextfile(flags.metricsFile, v2.GetPrometheusGatherer()); err != nil {
					logutil.Warnf("write metrics to %s failed: %v", flags.metricsFile, err)
				}
			}
			state.finish(summary.Diagnostics)
			return nil
		},
	}
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of files checked in parallel")
	cmd.Flags().BoolVar(&flags.errorsOnly, "errors-only", false, "only print diagnostics")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "print every evaluated value")
	cmd.Flags().BoolVar(&flags.reportProgress, "report-progress", false, "log the progress of every file")
	cmd.Flags().IntVar(&flags.exitCode, "error-exitcode", 0, "exit code when diagnostics are reported")
	cmd.Flags().StringVar(&flags.metricsFile, "metrics-file", "", "write prometheus metrics to this file when done")
	return cmd
}

// apply overrides the configuration with the flags set on the command line.
func (f *checkFlags) apply(cmd *cobra.Command, state *cliState) {
	if cmd.Flags().Changed("jobs") {
		state.cfg.Jobs = f.jobs
	}
	if cmd.Flags().Changed("errors-only") {
		state.cfg.ErrorsOnly = f.errorsOnly
	}
	if cmd.Flags().Changed("verbose") {
		state.cfg.Verbose = f.verbose
	}
	if cmd.Flags().Changed("report-progress") {
		state.cfg.ReportProgress = f.reportProgress
	}
	if cmd.Flags().Changed("error-exitcode") {
		state.cfg.ExitCode = f.exitCode
	}
}
