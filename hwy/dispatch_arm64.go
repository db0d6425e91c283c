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

//go:build arm64

package hwy

import (
	"os"

	"golang.org/x/sys/cpu"
)

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if !cpu.ARM64.HasASIMD {
		// Should never happen on ARMv8+
		setScalarMode()
		return
	}
	currentLevel = DispatchNEON
	currentWidth = 16 // NEON is 128-bit (16 bytes)

	// SVE width is implementation defined; kernels only rely on the 128-bit minimum.
	if cpu.ARM64.HasSVE && os.Getenv("HWY_NO_SVE") == "" {
		currentLevel = DispatchSVE
	}
}

// HasFMA reports whether fused multiply-add is available.
// FMLA is part of ASIMD.
func HasFMA() bool {
	return cpu.ARM64.HasASIMD
}
