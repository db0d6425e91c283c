// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matrix

import (
	"io"
	"strconv"
	"strings"
)

// WriteTo writes the matrix in logical order:
//
//	Matrix (2x2) [RowRank]:
//	  [ 1 2 ]
//	  [ 3 4 ]
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	return int64(n), err
}

// String implements fmt.Stringer using the WriteTo layout.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("Matrix (")
	sb.WriteString(strconv.Itoa(m.rows))
	sb.WriteByte('x')
	sb.WriteString(strconv.Itoa(m.cols))
	sb.WriteString(") [")
	sb.WriteString(m.rank.String())
	sb.WriteString("]:\n")
	for r := range m.rows {
		sb.WriteString("  [ ")
		for c := range m.cols {
			sb.WriteString(strconv.FormatFloat(float64(m.At(r, c)), 'g', 6, 32))
			sb.WriteByte(' ')
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
