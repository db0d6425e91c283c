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

import (
	"sync"

	"github.com/ajroetker/go-sgemm/hwy"
	"github.com/ajroetker/go-sgemm/hwy/contrib/matrix"
	"github.com/ajroetker/go-sgemm/hwy/contrib/workerpool"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Path identifies which algorithm computes a product.
type Path int

const (
	// PathFallback walks both operands through their strides. Used for
	// every rank combination except RowMajor × ColumnMajor.
	PathFallback Path = iota

	// PathFast is the blocked, register-tiled kernel used when
	// A is RowMajor and B is ColumnMajor.
	PathFast
)

// String returns "fast" or "fallback".
func (p Path) String() string {
	if p == PathFast {
		return "fast"
	}
	return "fallback"
}

// SelectPath returns the path used for a * b. It depends only on the ranks.
func SelectPath(a, b *matrix.Matrix) Path {
	if a.Rank() == matrix.RowMajor && b.Rank() == matrix.ColumnMajor {
		return PathFast
	}
	return PathFallback
}

// Engine multiplies matrices on a Runner with a fixed kernel and blocking
// shape. An Engine holds no per-call state and may be used concurrently if
// its Runner allows it (both workerpool runners do).
type Engine struct {
	runner workerpool.Runner
	params Params
	kernel *Kernel
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers runs each multiplication on a fresh set of at most n
// goroutines. n <= 0 means workerpool.DefaultWorkers.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.runner = workerpool.NewSpawner(n) }
}

// WithRunner runs multiplications on r, for example a persistent
// *workerpool.Pool shared across many calls. The Engine does not close it.
func WithRunner(r workerpool.Runner) Option {
	return func(e *Engine) { e.runner = r }
}

// WithParams sets the fast-path blocking shape.
func WithParams(p Params) Option {
	return func(e *Engine) { e.params = p }
}

// WithKernel overrides the kernel chosen from the detected dispatch level.
func WithKernel(k *Kernel) Option {
	return func(e *Engine) { e.kernel = k }
}

// WithLogger logs each multiplication's shape and path at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New returns an Engine. Without options it uses a per-call Spawner with
// workerpool.DefaultWorkers, DefaultParams and KernelFor(hwy.CurrentLevel()).
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		params: DefaultParams(),
		kernel: KernelFor(hwy.CurrentLevel()),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.runner == nil {
		e.runner = workerpool.NewSpawner(0)
	}
	if e.kernel == nil {
		return nil, errors.Wrap(ErrBadParams, "nil kernel")
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if err := e.params.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Params returns the engine's blocking shape.
func (e *Engine) Params() Params { return e.params }

// Kernel returns the fast-path kernel.
func (e *Engine) Kernel() *Kernel { return e.kernel }

// NumWorkers returns the maximum number of row ranges computed at once.
func (e *Engine) NumWorkers() int { return e.runner.NumWorkers() }

// Multiply returns C = A * B as a new RowMajor matrix of shape
// (a.Rows(), b.Cols()).
//
// The output rows are split into min(NumWorkers(), a.Rows()) contiguous
// ranges, each filled by one worker. A RowMajor A with a ColumnMajor B
// takes the fast path; every other combination takes the fallback. The two
// paths accumulate in different orders and agree to within float32
// rounding, not bit for bit.
func (e *Engine) Multiply(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.Cols() != b.Rows() {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%dx%d * %dx%d",
			a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	m, k, n := a.Rows(), a.Cols(), b.Cols()
	c, err := matrix.New(m, n, matrix.RowMajor)
	if err != nil {
		return nil, err
	}
	cData := c.Data()

	path := SelectPath(a, b)
	if ce := e.logger.Check(zap.DebugLevel, "multiply"); ce != nil {
		ce.Write(
			zap.Int("m", m), zap.Int("k", k), zap.Int("n", n),
			zap.Stringer("path", path),
			zap.Stringer("kernel", e.kernel),
			zap.Int("workers", min(e.runner.NumWorkers(), m)),
		)
	}

	var rows func(start, end int)
	if path == PathFast {
		aData, bData := a.Data(), b.Data()
		rows = func(start, end int) {
			blockedKLast(e.kernel, e.params, aData, bData, cData, k, n, start, end)
		}
	} else {
		rows = func(start, end int) {
			stridedRows(a, b, cData, start, end)
		}
	}

	if err := e.runner.ParallelFor(m, rows); err != nil {
		return nil, errors.Wrapf(err, "matmul: %dx%d * %dx%d", m, k, k, n)
	}
	return c, nil
}

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := New()
	if err != nil {
		panic(err)
	}
	return e
})

// Multiply computes C = A * B with the default Engine: goroutines spawned
// per call, one per row range, joined before returning.
func Multiply(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	return defaultEngine().Multiply(a, b)
}
