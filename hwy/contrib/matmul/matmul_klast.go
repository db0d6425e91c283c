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

// blockedKLast fills rows [rowStart, rowEnd) of c = a * b when both
// operands are K-last: a is M×K row-major and b is K×N column-major, so
// row i of a is a[i*k:(i+1)*k] and column j of b is b[j*k:(j+1)*k].
// c is M×N row-major.
//
// Loop order:
//  1. Column blocks of p.BlockCols keep one block of b resident while every
//     row of the range is run against it.
//  2. Inside a block, p.TileRows × p.TileCols register tiles.
//  3. Rows and columns left over at the tile edges get single dot products,
//     so every (i, j) of the range and block is written exactly once.
func blockedKLast(kern *Kernel, p Params, a, b, c []float32, k, n, rowStart, rowEnd int) {
	tile := kern.tileFor(p)
	tr, tc := p.TileRows, p.TileCols

	var aRows [MaxTileRows][]float32
	var bCols [MaxTileCols][]float32
	var out [maxTile]float32

	for jb := 0; jb < n; jb += p.BlockCols {
		je := min(jb+p.BlockCols, n)

		i := rowStart
		for ; i+tr <= rowEnd; i += tr {
			for r := range tr {
				aRows[r] = a[(i+r)*k : (i+r+1)*k]
			}

			j := jb
			for ; j+tc <= je; j += tc {
				for q := range tc {
					bCols[q] = b[(j+q)*k : (j+q+1)*k]
				}
				tile(aRows[:tr], bCols[:tc], k, out[:tr*tc])
				for r := range tr {
					copy(c[(i+r)*n+j:(i+r)*n+j+tc], out[r*tc:(r+1)*tc])
				}
			}

			// Columns left over at the block edge
			for ; j < je; j++ {
				bj := b[j*k : (j+1)*k]
				for r := range tr {
					c[(i+r)*n+j] = kern.dot(aRows[r], bj, k)
				}
			}
		}

		// Rows left over at the range edge
		for ; i < rowEnd; i++ {
			ai := a[i*k : (i+1)*k]
			cRow := c[i*n : (i+1)*n]
			for j := jb; j < je; j++ {
				cRow[j] = kern.dot(ai, b[j*k:(j+1)*k], k)
			}
		}
	}
}
