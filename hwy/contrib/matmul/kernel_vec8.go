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

// dotVec8 reduces eight products per step into one vector accumulator,
// collapses it with a pairwise horizontal add, then adds the scalar tail.
func dotVec8(a, b []float32, k int) float32 {
	a, b = a[:k], b[:k]
	var acc hwy.Float32x8
	p := 0
	for ; p+8 <= k; p += 8 {
		acc = hwy.LoadFloat32x8(a[p:]).MulAdd(hwy.LoadFloat32x8(b[p:]), acc)
	}
	return scalarTail(acc.ReduceSum(), a, b, p)
}

// tileVec8 is the register tile for any shape up to MaxTileRows×MaxTileCols.
// Each A vector is loaded once per step and reused against every B column.
func tileVec8(a, b [][]float32, k int, out []float32) {
	var acc [maxTile]hwy.Float32x8
	var va [MaxTileRows]hwy.Float32x8
	nb := len(b)

	p := 0
	for ; p+8 <= k; p += 8 {
		for i, ai := range a {
			va[i] = hwy.LoadFloat32x8(ai[p:])
		}
		for j, bj := range b {
			vb := hwy.LoadFloat32x8(bj[p:])
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

// tile2x6Vec8 is tileVec8 unrolled for the default 2×6 tile: twelve named
// accumulators, two A loads and six B loads per step.
func tile2x6Vec8(a0, a1 []float32, b *[6][]float32, k int, out *[12]float32) {
	a0, a1 = a0[:k], a1[:k]
	b0, b1, b2 := b[0][:k], b[1][:k], b[2][:k]
	b3, b4, b5 := b[3][:k], b[4][:k], b[5][:k]

	var c00, c01, c02, c03, c04, c05 hwy.Float32x8
	var c10, c11, c12, c13, c14, c15 hwy.Float32x8

	p := 0
	for ; p+8 <= k; p += 8 {
		x0 := hwy.LoadFloat32x8(a0[p:])
		x1 := hwy.LoadFloat32x8(a1[p:])

		y := hwy.LoadFloat32x8(b0[p:])
		c00 = x0.MulAdd(y, c00)
		c10 = x1.MulAdd(y, c10)
		y = hwy.LoadFloat32x8(b1[p:])
		c01 = x0.MulAdd(y, c01)
		c11 = x1.MulAdd(y, c11)
		y = hwy.LoadFloat32x8(b2[p:])
		c02 = x0.MulAdd(y, c02)
		c12 = x1.MulAdd(y, c12)
		y = hwy.LoadFloat32x8(b3[p:])
		c03 = x0.MulAdd(y, c03)
		c13 = x1.MulAdd(y, c13)
		y = hwy.LoadFloat32x8(b4[p:])
		c04 = x0.MulAdd(y, c04)
		c14 = x1.MulAdd(y, c14)
		y = hwy.LoadFloat32x8(b5[p:])
		c05 = x0.MulAdd(y, c05)
		c15 = x1.MulAdd(y, c15)
	}

	*out = [12]float32{
		scalarTail(c00.ReduceSum(), a0, b0, p),
		scalarTail(c01.ReduceSum(), a0, b1, p),
		scalarTail(c02.ReduceSum(), a0, b2, p),
		scalarTail(c03.ReduceSum(), a0, b3, p),
		scalarTail(c04.ReduceSum(), a0, b4, p),
		scalarTail(c05.ReduceSum(), a0, b5, p),
		scalarTail(c10.ReduceSum(), a1, b0, p),
		scalarTail(c11.ReduceSum(), a1, b1, p),
		scalarTail(c12.ReduceSum(), a1, b2, p),
		scalarTail(c13.ReduceSum(), a1, b3, p),
		scalarTail(c14.ReduceSum(), a1, b4, p),
		scalarTail(c15.ReduceSum(), a1, b5, p),
	}
}
