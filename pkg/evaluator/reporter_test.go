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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextReporter(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewTextReporter(&out, &errOut)

	r.ReportOut("[a.txt:1]: 1 + 2 = 3")
	r.ReportErr("[a.txt:2]: (error) Division by zero.")
	r.ReportStatus(1, 1, 10, 10)
	r.ReportStatus(1, 4, 25, 100)
	r.ReportStatus(2, 4, 0, 0)

	require.Equal(t, "[a.txt:1]: 1 + 2 = 3\n1/4 files checked 25% done\n2/4 files checked 0% done\n", out.String())
	require.Equal(t, "[a.txt:2]: (error) Division by zero.\n", errOut.String())
}

func TestPercent(t *testing.T) {
	require.Equal(t, int64(0), percent(0, 0))
	require.Equal(t, int64(50), percent(1, 2))
	require.Equal(t, int64(100), percent(int64(7), int64(7)))
	require.Equal(t, int64(33), percent(uint8(1), uint8(3)))
}
