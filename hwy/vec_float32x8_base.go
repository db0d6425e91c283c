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

//go:build !amd64 || !goexperiment.simd

package hwy

// NativeFloat32x8 reports whether Float32x8 is backed by a hardware vector
// register. In this build it is a Go array.
const NativeFloat32x8 = false

// Float32x8 is an eight-lane float32 vector held in a Go array.
type Float32x8 [8]float32

// Float32x8Supported reports whether Float32x8 operations can run on this
// CPU. The array form runs everywhere.
func Float32x8Supported() bool { return true }

// LoadFloat32x8 loads the first eight elements of src.
// Panics if len(src) < 8.
func LoadFloat32x8(src []float32) Float32x8 {
	_ = src[7] // bounds check elimination
	return Float32x8{src[0], src[1], src[2], src[3], src[4], src[5], src[6], src[7]}
}

// Add performs element-wise addition.
func (v Float32x8) Add(y Float32x8) Float32x8 {
	return Float32x8{
		v[0] + y[0], v[1] + y[1], v[2] + y[2], v[3] + y[3],
		v[4] + y[4], v[5] + y[5], v[6] + y[6], v[7] + y[7],
	}
}

// MulAdd returns v*y + z per lane.
func (v Float32x8) MulAdd(y, z Float32x8) Float32x8 {
	return Float32x8{
		v[0]*y[0] + z[0],
		v[1]*y[1] + z[1],
		v[2]*y[2] + z[2],
		v[3]*y[3] + z[3],
		v[4]*y[4] + z[4],
		v[5]*y[5] + z[5],
		v[6]*y[6] + z[6],
		v[7]*y[7] + z[7],
	}
}

// ReduceSum collapses the lanes the way an AVX horizontal reduction does:
// fold the high half onto the low half, then two pairwise adds.
func (v Float32x8) ReduceSum() float32 {
	s0, s1 := v[0]+v[4], v[1]+v[5]
	s2, s3 := v[2]+v[6], v[3]+v[7]
	return (s0 + s1) + (s2 + s3)
}
