// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import "golang.org/x/sync/errgroup"

// Spawner is a Runner that starts one goroutine per range on every call and
// joins them before returning. It holds no goroutines between calls, so it
// needs no Close.
type Spawner struct {
	numWorkers int
}

var _ Runner = (*Spawner)(nil)

// NewSpawner returns a Spawner running at most numWorkers ranges per call.
// If numWorkers <= 0, uses DefaultWorkers.
func NewSpawner(numWorkers int) *Spawner {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkers()
	}
	return &Spawner{numWorkers: numWorkers}
}

// NumWorkers returns the configured worker count.
func (s *Spawner) NumWorkers() int {
	return s.numWorkers
}

// ParallelFor executes fn over Partition(n, NumWorkers()), one goroutine per
// range, and blocks until all of them finish.
func (s *Spawner) ParallelFor(n int, fn func(start, end int)) error {
	ranges := Partition(n, s.numWorkers)
	switch len(ranges) {
	case 0:
		return nil
	case 1:
		return runRange(fn, ranges[0])
	}

	var g errgroup.Group
	for _, r := range ranges {
		g.Go(func() error {
			return runRange(fn, r)
		})
	}
	return g.Wait()
}
