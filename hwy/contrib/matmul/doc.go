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

// Package matmul provides parallel float32 matrix multiplication for
// matrix.Matrix values.
//
// Example usage:
//
//	// C = A * B where A is MxK, B is KxN, C is MxN (always RowMajor)
//	a, _ := matrix.NewRandom(m, k, matrix.RowMajor, 1)
//	b, _ := matrix.NewRandom(k, n, matrix.ColumnMajor, 2)
//	c, err := matmul.Multiply(a, b)
//
// The implementation selects the path from the operand ranks:
//   - RowMajor × ColumnMajor: both operands are K-last, so every output is
//     a dot product of two contiguous slices. This path is cache blocked
//     over B's columns and register tiled (2×6 by default). The kernel is
//     vec8 on AVX2/AVX-512 when hwy.Float32x8 is hardware backed
//     (GOEXPERIMENT=simd on amd64) and scalar otherwise.
//   - Anything else: a strided triple loop through the rank-aware offsets.
//
// Work is split by output rows across a workerpool.Runner. The package
// level Multiply spawns goroutines per call; use New with WithRunner and a
// workerpool.Pool to reuse workers across many calls.
package matmul
