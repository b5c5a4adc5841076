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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BebeSparkelSparkel/cppcheck/pkg/common/moerr"
	"github.com/BebeSparkelSparkel/cppcheck/pkg/config"
	"github.com/BebeSparkelSparkel/cppcheck/pkg/evaluator"
	"github.com/BebeSparkelSparkel/cppcheck/pkg/logutil"
	v2 "github.com/BebeSparkelSparkel/cppcheck/pkg/util/metric/v2"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitDefect = 2
)

var (
	exit        = os.Exit
	newReporter = evaluator.NewTextReporter
)

func main() {
	exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code. A
// defect raised anywhere below is logged and turned into exitDefect.
func execute(args []string, stdout, stderr io.Writer) (code int) {
	ctx := context.Background()
	defer func() {
		if v := recover(); v != nil {
			v2.DefectCounter.Inc()
			err := moerr.ConvertPanicError(ctx, v)
			logutil.Error("internal defect, please report this to the developers",
				zap.Error(err))
			fmt.Fprintf(stderr, "(error) %s\n", err.Error())
			code = exitDefect
		}
	}()

	state := &cliState{stdout: stdout, stderr: stderr}
	root := newRootCommand(state)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "(error) %s\n", err.Error())
		return exitFailed
	}
	return state.code
}

type cliState struct {
	cfgFile string
	cfg     *config.Config
	stdout  io.Writer
	stderr  io.Writer
	code    int
}

func newRootCommand(state *cliState) *cobra.Command {
	root := &cobra.Command{
		Use:           "mathlib",
		Short:         "Evaluate and check numeric literal expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.loadConfig()
		},
	}
	root.PersistentFlags().StringVar(&state.cfgFile, "cfg", "", "toml configuration file")
	root.AddCommand(evalCommand(state), checkCommand(state))
	return root
}

func (s *cliState) loadConfig() error {
	if s.cfgFile == "" {
		s.cfg = config.NewConfig()
	} else {
		cfg, err := config.ParseConfigFromFile(s.cfgFile)
		if err != nil {
			return err
		}
		s.cfg = cfg
	}
	logutil.SetupMOLogger(&s.cfg.Log)
	return nil
}

// finish sets the exit code from the number of diagnostics.
func (s *cliState) finish(diagnostics int) {
	if diagnostics > 0 {
		s.code = s.cfg.ExitCode
		return
	}
	s.code = exitOK
}
