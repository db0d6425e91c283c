//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

// NativeFloat32x8 reports whether Float32x8 is backed by a hardware vector
// register. In this build it is an AVX2 YMM register.
const NativeFloat32x8 = true

// Float32x8 is an eight-lane float32 vector in one AVX2 register.
//
// Its operations execute AVX2 and FMA instructions: callers must check
// Float32x8Supported before using it.
type Float32x8 struct {
	v archsimd.Float32x8
}

// Float32x8Supported reports whether Float32x8 operations can run on this
// CPU.
func Float32x8Supported() bool { return archsimd.X86.AVX2() }

// LoadFloat32x8 loads the first eight elements of src.
// Panics if len(src) < 8.
func LoadFloat32x8(src []float32) Float32x8 {
	_ = src[7]
	return Float32x8{archsimd.LoadFloat32x8Slice(src[:8])}
}

// Add performs element-wise addition.
func (v Float32x8) Add(y Float32x8) Float32x8 {
	return Float32x8{v.v.Add(y.v)}
}

// MulAdd returns v*y + z per lane with one fused multiply-add.
func (v Float32x8) MulAdd(y, z Float32x8) Float32x8 {
	return Float32x8{v.v.MulAdd(y.v, z.v)}
}

// ReduceSum folds the high 128 bits onto the low 128 bits, then adds the
// remaining lanes pairwise, matching the array form's order.
func (v Float32x8) ReduceSum() float32 {
	var s [4]float32
	v.v.GetLo().Add(v.v.GetHi()).StoreSlice(s[:])
	return (s[0] + s[1]) + (s[2] + s[3])
}
