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

import (
	"fmt"
	"math"
	"testing"

	"github.com/ajroetker/go-sgemm/hwy"
	"github.com/ajroetker/go-sgemm/hwy/contrib/matrix"
	"github.com/stretchr/testify/require"
)

func TestKernelFor(t *testing.T) {
	wide := KernelScalar
	if hwy.NativeFloat32x8 && hwy.Float32x8Supported() {
		wide = KernelVec8
	}
	testCases := []struct {
		level hwy.DispatchLevel
		want  *Kernel
	}{
		{hwy.DispatchScalar, KernelScalar},
		{hwy.DispatchSSE2, KernelScalar},
		{hwy.DispatchNEON, KernelScalar},
		{hwy.DispatchSVE, KernelScalar},
		{hwy.DispatchAVX2, wide},
		{hwy.DispatchAVX512, wide},
	}
	for _, tc := range testCases {
		require.Same(t, tc.want, KernelFor(tc.level), "level %s", tc.level)
	}
}

// Array-backed kernels must never be chosen over the scalar one.
func TestKernelForSkipsArrayKernels(t *testing.T) {
	for _, level := range []hwy.DispatchLevel{
		hwy.DispatchScalar, hwy.DispatchSSE2, hwy.DispatchAVX2,
		hwy.DispatchAVX512, hwy.DispatchNEON, hwy.DispatchSVE,
	} {
		k := KernelFor(level)
		require.NotSame(t, KernelVec4, k, "level %s", level)
		if !hwy.NativeFloat32x8 {
			require.Same(t, KernelScalar, k, "level %s", level)
		}
	}
}

func TestKernelsSupported(t *testing.T) {
	names := make([]string, 0, 3)
	for _, k := range Kernels() {
		names = append(names, k.Name())
	}
	want := []string{"scalar", "vec4"}
	if hwy.Float32x8Supported() {
		want = append(want, "vec8")
	}
	require.Equal(t, want, names)
}

func TestKernelByName(t *testing.T) {
	for _, k := range Kernels() {
		got, ok := KernelByName(k.Name())
		require.True(t, ok)
		require.Same(t, k, got)
		require.Equal(t, k.Name(), k.String())
	}
	_, ok := KernelByName("vec16")
	require.False(t, ok)
	_, ok = KernelByName("vec8")
	require.Equal(t, hwy.Float32x8Supported(), ok)

	require.Equal(t, 1, KernelScalar.Lanes())
	require.Equal(t, 4, KernelVec4.Lanes())
	require.Equal(t, 8, KernelVec8.Lanes())
}

func TestKernelDot(t *testing.T) {
	for _, kern := range Kernels() {
		for _, n := range []int{0, 1, 3, 4, 7, 8, 9, 15, 16, 17, 100} {
			t.Run(fmt.Sprintf("%s/n=%d", kern.Name(), n), func(t *testing.T) {
				a := make([]float32, n)
				b := make([]float32, n)
				var want float64
				for i := range n {
					a[i] = float32(i%5) - 2
					b[i] = float32(i%3) + 1
					want += float64(a[i]) * float64(b[i])
				}
				require.Equal(t, float32(want), kern.Dot(a, b))
			})
		}
	}
}

func TestKernelDotUnequalLengths(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5}
	b := []float32{1, 1, 1}
	for _, kern := range Kernels() {
		require.Equal(t, float32(6), kern.Dot(a, b), kern.Name())
	}
}

func TestKernelDotRandom(t *testing.T) {
	a := randMatrix(1, 1000, matrix.RowMajor, 61).Data()
	b := randMatrix(1, 1000, matrix.RowMajor, 62).Data()
	var want float64
	for i := range a {
		want += float64(a[i]) * float64(b[i])
	}
	for _, kern := range Kernels() {
		got := kern.Dot(a, b)
		if diff := math.Abs(float64(got) - want); diff > 1e-3 {
			t.Errorf("%s: Dot = %v, want %v (diff %e)", kern.Name(), got, want, diff)
		}
	}
}

// TestKernelTiles checks every tile shape of every kernel against the
// kernel's own dot product on integer data.
func TestKernelTiles(t *testing.T) {
	const k = 19
	a := intMatrix(MaxTileRows, k, matrix.RowMajor, 71).Data()
	b := intMatrix(k, MaxTileCols, matrix.ColumnMajor, 72).Data()

	for _, kern := range Kernels() {
		for tr := 1; tr <= MaxTileRows; tr++ {
			for tc := 1; tc <= MaxTileCols; tc++ {
				p := Params{BlockCols: 256, TileRows: tr, TileCols: tc}
				aRows := make([][]float32, tr)
				for i := range aRows {
					aRows[i] = a[i*k : (i+1)*k]
				}
				bCols := make([][]float32, tc)
				for j := range bCols {
					bCols[j] = b[j*k : (j+1)*k]
				}
				out := make([]float32, tr*tc)
				kern.tileFor(p)(aRows, bCols, k, out)

				for i := range tr {
					for j := range tc {
						want := kern.Dot(aRows[i], bCols[j])
						require.Equal(t, want, out[i*tc+j], "%s %dx%d at (%d,%d)", kern.Name(), tr, tc, i, j)
					}
				}
			}
		}
	}
}

func TestBlockedKLastParams(t *testing.T) {
	const m, k, n = 11, 13, 29
	aMat := intMatrix(m, k, matrix.RowMajor, 81)
	bMat := intMatrix(k, n, matrix.ColumnMajor, 82)
	want := matmulReference(aMat, bMat)

	paramSets := []Params{
		DefaultParams(),
		{BlockCols: 1, TileRows: 1, TileCols: 1},
		{BlockCols: 5, TileRows: 2, TileCols: 6},
		{BlockCols: 7, TileRows: 3, TileCols: 4},
		{BlockCols: 16, TileRows: 4, TileCols: 8},
		{BlockCols: 1000, TileRows: 4, TileCols: 1},
	}
	for _, kern := range Kernels() {
		for _, p := range paramSets {
			name := fmt.Sprintf("%s/B%d_%dx%d", kern.Name(), p.BlockCols, p.TileRows, p.TileCols)
			t.Run(name, func(t *testing.T) {
				c := make([]float32, m*n)
				blockedKLast(kern, p, aMat.Data(), bMat.Data(), c, k, n, 0, m)
				for i := range c {
					require.Equal(t, float32(want[i]), c[i], "element %d", i)
				}
			})
		}
	}
}

func TestBlockedKLastRowRange(t *testing.T) {
	const m, k, n = 9, 8, 14
	a := intMatrix(m, k, matrix.RowMajor, 91)
	b := intMatrix(k, n, matrix.ColumnMajor, 92)
	want := matmulReference(a, b)

	const sentinel = float32(-12345)
	for _, kern := range Kernels() {
		c := make([]float32, m*n)
		for i := range c {
			c[i] = sentinel
		}
		blockedKLast(kern, DefaultParams(), a.Data(), b.Data(), c, k, n, 3, 8)

		for i := range m {
			for j := range n {
				got := c[i*n+j]
				if i >= 3 && i < 8 {
					require.Equal(t, float32(want[i*n+j]), got, "%s (%d,%d)", kern.Name(), i, j)
				} else {
					require.Equal(t, sentinel, got, "%s wrote outside its rows at (%d,%d)", kern.Name(), i, j)
				}
			}
		}
	}
}

func TestStridedRows(t *testing.T) {
	const m, k, n = 5, 7, 6
	for _, ra := range []matrix.Rank{matrix.RowMajor, matrix.ColumnMajor} {
		for _, rb := range []matrix.Rank{matrix.RowMajor, matrix.ColumnMajor} {
			a := intMatrix(m, k, ra, 101)
			b := intMatrix(k, n, rb, 102)
			want := matmulReference(a, b)

			c := make([]float32, m*n)
			stridedRows(a, b, c, 0, m)
			for i := range c {
				require.Equal(t, float32(want[i]), c[i], "%s x %s element %d", ra, rb, i)
			}
		}
	}
}

// TestStridedRowsOrder checks the left-to-right summation: the large
// terms cancel first, so the small one survives.
func TestStridedRowsOrder(t *testing.T) {
	a := matrix.MustNewFromData(1, 3, matrix.RowMajor, []float32{1 << 25, -(1 << 25), 1})
	b := matrix.MustNewFromData(3, 1, matrix.RowMajor, []float32{1, 1, 1})
	c := make([]float32, 1)
	stridedRows(a, b, c, 0, 1)
	require.Equal(t, float32(1), c[0])
}
