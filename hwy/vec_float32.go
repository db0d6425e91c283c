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

package hwy

// LoadFloat32x4 loads the first four elements of src.
// Panics if len(src) < 4.
func LoadFloat32x4(src []float32) Float32x4 {
	_ = src[3] // bounds check elimination
	return Float32x4{src[0], src[1], src[2], src[3]}
}

// Add performs element-wise addition.
func (v Float32x4) Add(y Float32x4) Float32x4 {
	return Float32x4{v[0] + y[0], v[1] + y[1], v[2] + y[2], v[3] + y[3]}
}

// MulAdd returns v*y + z per lane.
func (v Float32x4) MulAdd(y, z Float32x4) Float32x4 {
	return Float32x4{
		v[0]*y[0] + z[0],
		v[1]*y[1] + z[1],
		v[2]*y[2] + z[2],
		v[3]*y[3] + z[3],
	}
}

// ReduceSum collapses the lanes with pairwise horizontal adds:
// (v0+v1) + (v2+v3).
func (v Float32x4) ReduceSum() float32 {
	lo := v[0] + v[1]
	hi := v[2] + v[3]
	return lo + hi
}
