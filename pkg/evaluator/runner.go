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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/BebeSparkelSparkel/cppcheck/pkg/common/moerr"
	"github.com/BebeSparkelSparkel/cppcheck/pkg/config"
	"github.com/BebeSparkelSparkel/cppcheck/pkg/logutil"
	v2 "github.com/BebeSparkelSparkel/cppcheck/pkg/util/metric/v2"
)

// Summary of a Run.
type Summary struct {
	Files       int
	Expressions int
	Diagnostics int
	// Failed holds the indexes, in sorted file order, of the files that
	// reported at least one diagnostic.
	Failed *roaring.Bitmap
}

// Runner checks files of literal expressions on a worker pool.
type Runner struct {
	cfg      *config.Config
	reporter Reporter
	pool     *ants.Pool
}

func NewRunner(cfg *config.Config, reporter Reporter) (*Runner, error) {
	if cfg.Jobs <= 0 {
		return nil, moerr.NewBadConfigNoCtx("jobs must be positive, got %d", cfg.Jobs)
	}
	pool, err := ants.NewPool(cfg.Jobs)
	if err != nil {
		return nil, moerr.ConvertGoError(context.Background(), err)
	}
	return &Runner{cfg: cfg, reporter: reporter, pool: pool}, nil
}

func (r *Runner) Close() {
	r.pool.Release()
}

type runState struct {
	sync.Mutex
	summary   Summary
	checked   int
	sizeDone  int64
	sizeTotal int64
	defect    *moerr.Error
}

type fileTask struct {
	index int
	path  string
	size  int64
}

// Run checks every file, directories are walked recursively. A defect
// raised by the engine in any worker is re-panicked on the calling
// goroutine once all submitted files are done.
func (r *Runner) Run(ctx context.Context, paths []string) (Summary, error) {
	files, err := collectFiles(ctx, paths)
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		return Summary{}, moerr.NewInvalidInput(ctx, "no files to check")
	}

	runID := uuid.New().String()
	logutil.Info("check started",
		zap.String("run", runID),
		zap.Int("files", len(files)),
		zap.Int("jobs", r.cfg.Jobs))

	st := &runState{summary: Summary{Files: len(files), Failed: roaring.New()}}
	for _, f := range files {
		st.sizeTotal += f.size
	}

	var wg sync.WaitGroup
	for _, f := range files {
		if err = ctx.Err(); err != nil {
			break
		}
		f := f
		wg.Add(1)
		if err = r.pool.Submit(func() {
			defer wg.Done()
			r.checkFile(ctx, st, f)
		}); err != nil {
			wg.Done()
			break
		}
	}
	wg.Wait()

	if st.defect != nil {
		panic(st.defect)
	}
	if err != nil {
		return st.summary, moerr.ConvertGoError(ctx, err)
	}

	logutil.Info("check finished",
		zap.String("run", runID),
		zap.Int("expressions", st.summary.Expressions),
		zap.Int("diagnostics", st.summary.Diagnostics),
		zap.Uint64("failed-files", st.summary.Failed.GetCardinality()))
	return st.summary, nil
}

func collectFiles(ctx context.Context, paths []string) ([]fileTask, error) {
	var names []string
	sizes := make(map[string]int64)
	for _, p := range paths {
		err := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if errors.Is(err, fs.ErrNotExist) {
				return moerr.NewFileNotFound(ctx, path)
			}
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			if _, ok := sizes[path]; !ok {
				names = append(names, path)
			}
			sizes[path] = info.Size()
			return nil
		})
		if err != nil {
			return nil, moerr.ConvertGoError(ctx, err)
		}
	}
	slices.Sort(names)
	files := make([]fileTask, 0, len(names))
	for i, name := range names {
		files = append(files, fileTask{index: i, path: name, size: sizes[name]})
	}
	return files, nil
}

func (r *Runner) checkFile(ctx context.Context, st *runState, f fileTask) {
	start := time.Now()
	defer func() {
		if v := recover(); v != nil {
			st.Lock()
			if st.defect == nil {
				st.defect = moerr.ConvertPanicError(ctx, v)
			}
			st.Unlock()
		}
	}()

	exprs, diags := r.checkLines(ctx, f)

	v2.CheckFileDurationHistogram.Observe(time.Since(start).Seconds())
	st.Lock()
	defer st.Unlock()
	st.summary.Expressions += exprs
	st.summary.Diagnostics += diags
	if diags > 0 {
		st.summary.Failed.Add(uint32(f.index))
	}
	st.checked++
	st.sizeDone += f.size
	if r.cfg.ReportProgress {
		logutil.Info("file checked",
			zap.String("file", f.path),
			zap.Int("expressions", exprs),
			zap.Int("diagnostics", diags),
			zap.Duration("cost", time.Since(start)))
	}
	if !r.cfg.ErrorsOnly {
		r.reporter.ReportStatus(st.checked, st.summary.Files, st.sizeDone, st.sizeTotal)
	}
}

// checkLines returns the number of expressions and of diagnostics in f.
func (r *Runner) checkLines(ctx context.Context, f fileTask) (exprs, diags int) {
	file, err := os.Open(f.path)
	if err != nil {
		r.reporter.ReportErr(moerr.ConvertGoError(ctx, err).Error())
		return 0, 1
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line++
		location := fmt.Sprintf("%s:%d", f.path, line)
		expr, ok, err := ParseExpression(moerr.AttachDetail(ctx, location), scanner.Text())
		if err != nil {
			v2.DiagnosticSyntaxCounter.Inc()
			r.reporter.ReportErr(fmt.Sprintf("[%s]: (error) %s", location, err.Error()))
			diags++
			continue
		}
		if !ok {
			continue
		}
		exprs++
		res := Evaluate(ctx, expr)
		if res.Diagnostic != nil {
			diags++
			msg := fmt.Sprintf("[%s]: (error) %s", location, res.Diagnostic.Message)
			if r.cfg.Verbose {
				msg = fmt.Sprintf("%s %s = %s", msg, expr, displayValue(res))
			}
			r.reporter.ReportErr(msg)
			continue
		}
		if r.cfg.Verbose {
			r.reporter.ReportOut(fmt.Sprintf("[%s]: %s = %s", location, expr, res.Value))
		}
	}
	if err = scanner.Err(); err != nil {
		r.reporter.ReportErr(fmt.Sprintf("[%s]: (error) %s", f.path, moerr.ConvertGoError(ctx, err).Error()))
		diags++
	}
	return
}

func displayValue(res Result) string {
	if res.Value == "" {
		return "<none>"
	}
	return res.Value
}
