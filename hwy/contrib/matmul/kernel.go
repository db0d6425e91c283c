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

// tileFunc computes out[i*len(b)+j] = dot(a[i][:k], b[j][:k]) for a
// register tile. len(a) <= MaxTileRows, len(b) <= MaxTileCols.
type tileFunc func(a, b [][]float32, k int, out []float32)

// Kernel is one implementation of the fast-path inner loops. All of its
// functions reduce along contiguous slices: a row of a RowMajor A and a
// column of a ColumnMajor B.
//
// For a given kernel, dot, tile and tile2x6 accumulate in exactly the same
// order, so an output element does not depend on whether it was computed
// inside a register tile or by tile-edge cleanup.
type Kernel struct {
	name  string
	lanes int

	dot     func(a, b []float32, k int) float32
	tile    tileFunc
	tile2x6 func(a0, a1 []float32, b *[6][]float32, k int, out *[12]float32)
}

// Name returns the kernel's short name: "scalar", "vec4" or "vec8".
func (k *Kernel) Name() string { return k.name }

// Lanes returns how many reduction elements each accumulator consumes per step.
func (k *Kernel) Lanes() int { return k.lanes }

// String implements fmt.Stringer.
func (k *Kernel) String() string { return k.name }

// Dot returns the dot product of a[:n] and b[:n] with the kernel's
// accumulation order.
func (k *Kernel) Dot(a, b []float32) float32 {
	n := min(len(a), len(b))
	return k.dot(a, b, n)
}

// tileFor returns the tile function for p, preferring the unrolled 2×6
// variant when the shape matches.
func (k *Kernel) tileFor(p Params) tileFunc {
	if p.is2x6() && k.tile2x6 != nil {
		tile2x6 := k.tile2x6
		return func(a, b [][]float32, kk int, out []float32) {
			tile2x6(a[0], a[1], (*[6][]float32)(b), kk, (*[12]float32)(out))
		}
	}
	return k.tile
}

var (
	// KernelScalar uses plain float32 multiply-adds, one accumulator per output.
	KernelScalar = &Kernel{
		name:    "scalar",
		lanes:   1,
		dot:     dotScalar,
		tile:    tileScalar,
		tile2x6: tile2x6Scalar,
	}

	// KernelVec4 uses 4-lane hwy.Float32x4 accumulators. Float32x4 is a Go
	// array in every build, so this kernel is never selected automatically.
	KernelVec4 = &Kernel{
		name:  "vec4",
		lanes: 4,
		dot:   dotVec4,
		tile:  tileVec4,
	}

	// KernelVec8 uses 8-lane hwy.Float32x8 accumulators. With
	// hwy.NativeFloat32x8 each accumulator is one AVX2 register and the 2×6
	// tile fits the 16 YMM registers; otherwise it runs on Go arrays.
	KernelVec8 = &Kernel{
		name:    "vec8",
		lanes:   8,
		dot:     dotVec8,
		tile:    tileVec8,
		tile2x6: tile2x6Vec8,
	}
)

// Kernels lists every kernel that can run on this CPU, for tests and
// benchmarks.
func Kernels() []*Kernel {
	kernels := []*Kernel{KernelScalar, KernelVec4}
	if hwy.Float32x8Supported() {
		kernels = append(kernels, KernelVec8)
	}
	return kernels
}

// KernelFor returns the fastest kernel for a dispatch level.
//
// Only hardware-backed vectors beat the scalar kernel: on AVX2 and AVX-512
// levels KernelVec8 is chosen when hwy.NativeFloat32x8 is set and the CPU
// supports it. Every other case gets KernelScalar.
func KernelFor(level hwy.DispatchLevel) *Kernel {
	wide := level == hwy.DispatchAVX2 || level == hwy.DispatchAVX512
	if wide && hwy.NativeFloat32x8 && hwy.Float32x8Supported() {
		return KernelVec8
	}
	return KernelScalar
}

// KernelByName looks a kernel up by its Name among Kernels.
func KernelByName(name string) (*Kernel, bool) {
	for _, k := range Kernels() {
		if k.name == name {
			return k, true
		}
	}
	return nil, false
}
