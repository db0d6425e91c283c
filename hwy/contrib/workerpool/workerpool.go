// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs row-range parallel loops for the matmul engine.
//
// Two Runner implementations are provided:
//   - Pool is persistent: workers are spawned once at creation and reused
//     across many operations, eliminating per-call spawn overhead.
//   - Spawner starts fresh goroutines for every call and joins them before
//     returning, so nothing outlives the call.
//
// Both split [0, n) with Partition and block until every range is done.
// A panic inside fn does not crash the process: it is recovered on the
// worker and returned from ParallelFor as an error matching ErrWorkerPanic.
//
// Usage:
//
//	pool := workerpool.New(runtime.NumCPU())
//	defer pool.Close()
//
//	// Reuse pool across many operations
//	for _, layer := range layers {
//	    if err := pool.ParallelFor(m, func(start, end int) {
//	        processRows(start, end)
//	    }); err != nil {
//	        return err
//	    }
//	}
package workerpool

import "sync"

// Runner executes fn over disjoint contiguous ranges that together cover
// [0, n), blocking until all of them complete.
type Runner interface {
	// NumWorkers returns the maximum number of ranges run concurrently.
	NumWorkers() int

	// ParallelFor calls fn(start, end) once per range. It returns the first
	// worker panic as an error; the remaining ranges still run to completion.
	ParallelFor(n int, fn func(start, end int)) error
}

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu is held for reading while a call sends on workC and for writing
	// by Close, so workC is never closed under a pending send.
	mu     sync.RWMutex
	closed bool
}

var _ Runner = (*Pool)(nil)

// workItem represents a single range of a parallel operation.
type workItem struct {
	fn   func(start, end int)
	r    Range
	call *call
}

// call tracks completion and the first failure of one ParallelFor.
type call struct {
	wg   sync.WaitGroup
	once sync.Once
	err  error
}

func (c *call) fail(err error) {
	c.once.Do(func() { c.err = err })
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses DefaultWorkers.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkers()
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	// Spawn persistent workers
	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		if err := runRange(item.fn, item.r); err != nil {
			item.call.fail(err)
		}
		item.call.wg.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe, and so is calling it while other
// goroutines are inside ParallelFor: calls that have not yet dispatched
// fall back to running sequentially.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// ParallelFor executes fn over the ranges returned by
// Partition(n, NumWorkers()) using the pool's workers.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) error {
	if n <= 0 {
		return nil
	}

	ranges := Partition(n, p.numWorkers)

	// A single range runs on the caller's goroutine
	if len(ranges) == 1 {
		return runRange(fn, ranges[0])
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		// Fallback to sequential if pool is closed
		return runSequential(n, p.numWorkers, fn)
	}
	c := &call{}
	c.wg.Add(len(ranges))
	for _, r := range ranges {
		p.workC <- workItem{fn: fn, r: r, call: c}
	}
	p.mu.RUnlock()

	c.wg.Wait()

	return c.err
}

// runSequential runs the same ranges a parallel call would, one after the
// other, so results do not depend on whether the pool is still open.
func runSequential(n, workers int, fn func(start, end int)) error {
	var first error
	for _, r := range Partition(n, workers) {
		if err := runRange(fn, r); err != nil && first == nil {
			first = err
		}
	}
	return first
}
