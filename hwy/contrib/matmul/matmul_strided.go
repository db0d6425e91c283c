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

package matmul

import "github.com/ajroetker/go-sgemm/hwy/contrib/matrix"

// stridedRows fills rows [rowStart, rowEnd) of the row-major result c with
// C[i,j] = sum_p A(i,p) * B(p,j), summed strictly from p = 0 upwards.
//
// It works for any pair of ranks: element offsets come from each operand's
// strides, which is the rank-aware logical accessor without the per-element
// branch.
func stridedRows(a, b *matrix.Matrix, c []float32, rowStart, rowEnd int) {
	aData, bData := a.Data(), b.Data()
	aRowStride, aColStride := a.Strides()
	bRowStride, bColStride := b.Strides()
	k, n := a.Cols(), b.Cols()

	for i := rowStart; i < rowEnd; i++ {
		aBase := i * aRowStride
		cRow := c[i*n : (i+1)*n]
		for j := range n {
			bBase := j * bColStride
			var sum float32
			for p := range k {
				sum += aData[aBase+p*aColStride] * bData[p*bRowStride+bBase]
			}
			cRow[j] = sum
		}
	}
}
