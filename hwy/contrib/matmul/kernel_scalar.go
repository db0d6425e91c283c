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

// dotScalar is a strict left-to-right sum of a[p]*b[p].
func dotScalar(a, b []float32, k int) float32 {
	a, b = a[:k], b[:k]
	var sum float32
	for p := range a {
		sum += a[p] * b[p]
	}
	return sum
}

// tileScalar keeps one scalar accumulator per tile output and walks the
// reduction once, so each A and B element is loaded once per tile.
func tileScalar(a, b [][]float32, k int, out []float32) {
	var acc [maxTile]float32
	nb := len(b)
	for p := range k {
		for i, ai := range a {
			x := ai[p]
			for j, bj := range b {
				acc[i*nb+j] += x * bj[p]
			}
		}
	}
	copy(out[:len(a)*nb], acc[:])
}

func tile2x6Scalar(a0, a1 []float32, b *[6][]float32, k int, out *[12]float32) {
	a0, a1 = a0[:k], a1[:k]
	b0, b1, b2 := b[0][:k], b[1][:k], b[2][:k]
	b3, b4, b5 := b[3][:k], b[4][:k], b[5][:k]

	var c00, c01, c02, c03, c04, c05 float32
	var c10, c11, c12, c13, c14, c15 float32
	for p := range a0 {
		x0, x1 := a0[p], a1[p]

		y := b0[p]
		c00 += x0 * y
		c10 += x1 * y
		y = b1[p]
		c01 += x0 * y
		c11 += x1 * y
		y = b2[p]
		c02 += x0 * y
		c12 += x1 * y
		y = b3[p]
		c03 += x0 * y
		c13 += x1 * y
		y = b4[p]
		c04 += x0 * y
		c14 += x1 * y
		y = b5[p]
		c05 += x0 * y
		c15 += x1 * y
	}

	*out = [12]float32{
		c00, c01, c02, c03, c04, c05,
		c10, c11, c12, c13, c14, c15,
	}
}

// scalarTail adds the reduction elements past the last full vector.
func scalarTail(sum float32, a, b []float32, p int) float32 {
	for ; p < len(a); p++ {
		sum += a[p] * b[p]
	}
	return sum
}
