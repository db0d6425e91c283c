// Package hwy provides small float32 vector types and runtime CPU dispatch
// detection.
//
// It follows the Highway C++ library's design philosophy: write the kernel
// once against small vector types, then pick the variant that matches the
// CPU detected at startup.
//
//	var acc hwy.Float32x8
//	for p := 0; p+8 <= k; p += 8 {
//		acc = hwy.LoadFloat32x8(a[p:]).MulAdd(hwy.LoadFloat32x8(b[p:]), acc)
//	}
//	sum := acc.ReduceSum()
//
// Float32x4 is always a plain Go array. Float32x8 is a plain Go array too,
// except on amd64 builds with GOEXPERIMENT=simd, where it wraps an AVX2
// archsimd.Float32x8 register; NativeFloat32x8 reports which one was built.
// The array forms are portable fallbacks: Go does not vectorize them, so
// callers should prefer scalar loops unless NativeFloat32x8 is true.
//
// Set HWY_NO_SIMD=1 to force the scalar level, which callers use to select
// their non-vector kernels.
package hwy

// Float32x4 is a four-lane float32 vector held in a Go array.
type Float32x4 [4]float32
