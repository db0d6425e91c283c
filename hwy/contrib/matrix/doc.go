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

// Package matrix provides a dense float32 matrix whose flat buffer is
// interpreted through a rank tag: RowMajor or ColumnMajor.
//
// The rank decides how a logical (r, c) index maps onto the buffer:
//
//	RowMajor:    r*cols + c
//	ColumnMajor: c*rows + r
//
// Two operations deliberately work on the physical layout rather than the
// logical values:
//
//   - Transpose only flips the rank tag. The buffer and the dimensions are
//     left alone, so the same storage is reread through the other mapping.
//     It is a view change, not a logical transpose.
//   - Equal compares the buffers position by position. Two matrices holding
//     the same logical values in different ranks are generally not Equal.
//
// Example usage:
//
//	a := matrix.MustNewFromData(2, 2, matrix.RowMajor, []float32{1, 2, 3, 4})
//	b := matrix.MustNewFromData(2, 2, matrix.ColumnMajor, []float32{5, 7, 6, 8})
//	c, err := matmul.Multiply(a, b)
package matrix
