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

import "github.com/cockroachdb/errors"

var (
	// ErrDimensionMismatch is returned when A.Cols() != B.Rows().
	ErrDimensionMismatch = errors.New("matmul: inner dimensions do not match")

	// ErrNilMatrix is returned when an operand is nil.
	ErrNilMatrix = errors.New("matmul: nil matrix")

	// ErrBadParams is returned for blocking parameters the fast path cannot use.
	ErrBadParams = errors.New("matmul: invalid blocking parameters")
)
