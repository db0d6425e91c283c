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

// Rank is the physical storage order of a Matrix. It is not the
// mathematical rank.
type Rank int

const (
	// RowMajor stores each row contiguously.
	RowMajor Rank = iota

	// ColumnMajor stores each column contiguously.
	ColumnMajor
)

// String returns "RowRank" or "ColRank".
func (r Rank) String() string {
	if r == RowMajor {
		return "RowRank"
	}
	return "ColRank"
}

// Flip returns the other rank.
func (r Rank) Flip() Rank {
	if r == RowMajor {
		return ColumnMajor
	}
	return RowMajor
}

// strides returns the buffer step for one row and for one column.
func (r Rank) strides(rows, cols int) (rowStride, colStride int) {
	if r == RowMajor {
		return cols, 1
	}
	return 1, rows
}
