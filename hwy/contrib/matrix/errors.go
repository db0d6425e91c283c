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

package matrix

import "github.com/cockroachdb/errors"

// Sentinel errors. Callers match them with errors.Is; the returned errors
// carry the offending dimensions as context.
var (
	// ErrBadShape is returned when rows or cols is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDataLength is returned when supplied data does not hold rows*cols values.
	ErrDataLength = errors.New("matrix: data length does not match shape")

	// ErrOutOfRange is returned by checked accessors for an index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
