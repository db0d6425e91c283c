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

import (
	"math/rand/v2"

	"github.com/cockroachdb/errors"
)

// DefaultTolerance is the absolute per-element tolerance used by Equal.
const DefaultTolerance = 1e-5

// Matrix is a dense rows x cols matrix of float32 values.
//
// The shape is fixed at construction; element values are mutable through
// Set and Ref. len(elements) == rows*cols always holds.
type Matrix struct {
	rows, cols int
	rank       Rank
	elements   []float32
}

// New returns a zero-filled rows x cols matrix with the given rank.
func New(rows, cols int, rank Rank) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrBadShape, "%dx%d", rows, cols)
	}
	return &Matrix{
		rows:     rows,
		cols:     cols,
		rank:     rank,
		elements: make([]float32, rows*cols),
	}, nil
}

// NewFromData returns a rows x cols matrix holding a copy of data.
//
// data must already be in the physical order implied by rank: row after
// row for RowMajor, column after column for ColumnMajor.
func NewFromData(rows, cols int, rank Rank, data []float32) (*Matrix, error) {
	m, err := New(rows, cols, rank)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, errors.Wrapf(ErrDataLength, "got %d values for %dx%d", len(data), rows, cols)
	}
	copy(m.elements, data)
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(rows, cols int, rank Rank) *Matrix {
	m, err := New(rows, cols, rank)
	if err != nil {
		panic(err)
	}
	return m
}

// MustNewFromData is like NewFromData but panics on error.
// It is intended for literals in tests and examples.
func MustNewFromData(rows, cols int, rank Rank, data []float32) *Matrix {
	m, err := NewFromData(rows, cols, rank, data)
	if err != nil {
		panic(err)
	}
	return m
}

// NewRandom returns a rows x cols matrix filled with values drawn uniformly
// from [-1, 1). The same seed always yields the same buffer.
func NewRandom(rows, cols int, rank Rank, seed uint64) (*Matrix, error) {
	m, err := New(rows, cols, rank)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range m.elements {
		m.elements[i] = rng.Float32()*2 - 1
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Rank returns the current storage order.
func (m *Matrix) Rank() Rank { return m.rank }

// Len returns rows*cols.
func (m *Matrix) Len() int { return len(m.elements) }

// Data returns the physical buffer. It is shared with the matrix, not copied.
func (m *Matrix) Data() []float32 { return m.elements }

// Strides returns the buffer distance between consecutive rows and between
// consecutive columns under the current rank.
func (m *Matrix) Strides() (rowStride, colStride int) {
	return m.rank.strides(m.rows, m.cols)
}

// Offset maps a logical index to its buffer position.
// Bounds are not checked.
func (m *Matrix) Offset(r, c int) int {
	if m.rank == RowMajor {
		return r*m.cols + c
	}
	return c*m.rows + r
}

// At returns the element at logical (r, c). Bounds are the caller's
// responsibility; an offset outside the buffer panics.
func (m *Matrix) At(r, c int) float32 {
	return m.elements[m.Offset(r, c)]
}

// Set stores v at logical (r, c). Bounds are not checked.
func (m *Matrix) Set(r, c int, v float32) {
	m.elements[m.Offset(r, c)] = v
}

// Ref returns a pointer to the element at logical (r, c), for in-place
// updates such as *m.Ref(i, j) += v. Bounds are not checked.
func (m *Matrix) Ref(r, c int) *float32 {
	return &m.elements[m.Offset(r, c)]
}

// Lookup is the bounds-checked form of At.
func (m *Matrix) Lookup(r, c int) (float32, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, errors.Wrapf(ErrOutOfRange, "(%d,%d) in %dx%d", r, c, m.rows, m.cols)
	}
	return m.At(r, c), nil
}

// Transpose flips the rank tag in place. It does not move data, allocate,
// or swap rows and cols: the existing buffer is simply read through the
// other index mapping from now on. Calling it twice restores the original
// view.
func (m *Matrix) Transpose() {
	m.rank = m.rank.Flip()
}

// Equal reports whether m and other have the same dimensions and their
// buffers match position by position within DefaultTolerance.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.EqualTol(other, DefaultTolerance)
}

// EqualTol is Equal with an explicit absolute tolerance.
//
// The comparison walks the physical buffers, not logical (r, c) values,
// and ignores rank. A RowMajor matrix and a ColumnMajor matrix with the
// same logical contents are therefore usually not equal.
func (m *Matrix) EqualTol(other *Matrix, tol float32) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.elements {
		d := v - other.elements[i]
		if d > tol || d < -tol {
			return false
		}
	}
	return true
}

// Clone returns an independent copy with the same shape, rank and values.
func (m *Matrix) Clone() *Matrix {
	elements := make([]float32, len(m.elements))
	copy(elements, m.elements)
	return &Matrix{rows: m.rows, cols: m.cols, rank: m.rank, elements: elements}
}
