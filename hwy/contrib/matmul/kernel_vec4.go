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

import "github.com/ajroetker/go-sgemm/hwy"

func dotVec4(a, b []float32, k int) float32 {
	a, b = a[:k], b[:k]
	var acc hwy.Float32x4
	p := 0
	for ; p+4 <= k; p += 4 {
		acc = hwy.LoadFloat32x4(a[p:]).MulAdd(hwy.LoadFloat32x4(b[p:]), acc)
	}
	return scalarTail(acc.ReduceSum(), a, b, p)
}

// tileVec4 has the same structure as tileVec8 with 128-bit accumulators.
// It also serves the 2×6 shape.
func tileVec4(a, b [][]float32, k int, out []float32) {
	var acc [maxTile]hwy.Float32x4
	var va [MaxTileRows]hwy.Float32x4
	nb := len(b)

	p := 0
	for ; p+4 <= k; p += 4 {
		for i, ai := range a {
			va[i] = hwy.LoadFloat32x4(ai[p:])
		}
		for j, bj := range b {
			vb := hwy.LoadFloat32x4(bj[p:])
			for i := range a {
				acc[i*nb+j] = va[i].MulAdd(vb, acc[i*nb+j])
			}
		}
	}

	for i, ai := range a {
		ai = ai[:k]
		for j, bj := range b {
			out[i*nb+j] = scalarTail(acc[i*nb+j].ReduceSum(), ai, bj[:k], p)
		}
	}
}
