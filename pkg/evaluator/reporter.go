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
	"fmt"
	"io"
	"sync"

	"golang.org/x/exp/constraints"
)

//go:generate mockgen -source=reporter.go -destination=mock_evaluator/reporter.go -package=mock_evaluator

// Reporter receives everything the runner prints. Implementations must
// be safe for concurrent use.
type Reporter interface {
	// ReportOut prints results.
	ReportOut(msg string)
	// ReportErr prints diagnostics.
	ReportErr(msg string)
	// ReportStatus prints the progress after a file is checked.
	ReportStatus(fileIndex, fileCount int, sizeDone, sizeTotal int64)
}

type textReporter struct {
	sync.Mutex
	out io.Writer
	err io.Writer
}

func NewTextReporter(out, err io.Writer) Reporter {
	return &textReporter{out: out, err: err}
}

func (r *textReporter) ReportOut(msg string) {
	r.Lock()
	defer r.Unlock()
	fmt.Fprintln(r.out, msg)
}

func (r *textReporter) ReportErr(msg string) {
	r.Lock()
	defer r.Unlock()
	fmt.Fprintln(r.err, msg)
}

func (r *textReporter) ReportStatus(fileIndex, fileCount int, sizeDone, sizeTotal int64) {
	if fileCount <= 1 {
		return
	}
	r.ReportOut(fmt.Sprintf("%d/%d files checked %d%% done", fileIndex, fileCount, percent(sizeDone, sizeTotal)))
}

func percent[T constraints.Integer](done, total T) int64 {
	if total <= 0 {
		return 0
	}
	return int64(float64(done) / float64(total) * 100)
}
