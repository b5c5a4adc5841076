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

package v2

import "github.com/prometheus/client_golang/prometheus"

var (
	evalCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mathlib",
			Subsystem: "eval",
			Name:      "count",
			Help:      "Total number of evaluated literal expressions.",
		}, []string{"path"})
	EvalIntCounter     = evalCounter.WithLabelValues("int")
	EvalFloatCounter   = evalCounter.WithLabelValues("float")
	EvalUnaryCounter   = evalCounter.WithLabelValues("unary")
	EvalCompareCounter = evalCounter.WithLabelValues("compare")

	diagnosticCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mathlib",
			Subsystem: "eval",
			Name:      "diagnostic_count",
			Help:      "Total number of diagnostics reported.",
		}, []string{"kind"})
	DiagnosticZeroDivCounter = diagnosticCounter.WithLabelValues("zerodiv")
	DiagnosticSyntaxCounter  = diagnosticCounter.WithLabelValues("syntax")

	DefectCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mathlib",
			Subsystem: "eval",
			Name:      "defect_count",
			Help:      "Total number of internal defects raised by the engine.",
		})

	CheckFileDurationHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mathlib",
			Subsystem: "check",
			Name:      "file_duration_seconds",
			Help:      "Bucketed histogram of checking one file.",
			Buckets:   getDurationBuckets(),
		})
)

func initEvalMetrics() {
	registry.MustRegister(evalCounter)
	registry.MustRegister(diagnosticCounter)
	registry.MustRegister(DefectCounter)
	registry.MustRegister(CheckFileDurationHistogram)
}
