// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"os"
	"runtime"
	"strconv"

	"github.com/cockroachdb/errors"
)

// fallbackWorkers is used when the hardware concurrency cannot be determined.
const fallbackWorkers = 2

// ErrWorkerPanic is matched (via errors.Is) by the error returned when fn
// panics inside ParallelFor.
var ErrWorkerPanic = errors.New("workerpool: worker panicked")

// Range is the half-open index interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Partition splits [0, n) into T = min(workers, n) contiguous ranges.
// Every range has n/T elements except the last, which also absorbs the
// remainder. Returns nil for n <= 0; workers < 1 is treated as 1.
func Partition(n, workers int) []Range {
	if n <= 0 {
		return nil
	}
	t := min(max(workers, 1), n)
	size := n / t

	ranges := make([]Range, t)
	for i := range t {
		ranges[i] = Range{Start: i * size, End: (i + 1) * size}
	}
	ranges[t-1].End = n
	return ranges
}

// DefaultWorkers returns the worker count used when none is configured:
// SGEMM_WORKERS if it holds a positive integer, otherwise the number of
// logical CPUs, otherwise 2.
func DefaultWorkers() int {
	if v := os.Getenv("SGEMM_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return fallbackWorkers
}

// runRange calls fn on r, converting a panic into an error.
func runRange(fn func(start, end int), r Range) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Wrapf(ErrWorkerPanic, "range [%d, %d): %v", r.Start, r.End, rec)
		}
	}()
	fn(r.Start, r.End)
	return nil
}
