// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestSpawnerParallelFor(t *testing.T) {
	s := NewSpawner(4)
	require.Equal(t, 4, s.NumWorkers())

	n := 103
	results := make([]int, n)
	var calls atomic.Int32
	err := s.ParallelFor(n, func(start, end int) {
		calls.Add(1)
		for i := start; i < end; i++ {
			results[i]++
		}
	})
	require.NoError(t, err)
	require.Equal(t, int32(4), calls.Load())
	for i, v := range results {
		require.Equal(t, 1, v, "row %d visited %d times", i, v)
	}
}

func TestSpawnerSingleRange(t *testing.T) {
	s := NewSpawner(8)
	var calls atomic.Int32
	require.NoError(t, s.ParallelFor(1, func(start, end int) {
		calls.Add(1)
		require.Equal(t, 0, start)
		require.Equal(t, 1, end)
	}))
	require.Equal(t, int32(1), calls.Load())

	require.NoError(t, s.ParallelFor(0, func(start, end int) {
		t.Error("fn called for n=0")
	}))
}

func TestSpawnerPanic(t *testing.T) {
	s := NewSpawner(3)
	err := s.ParallelFor(9, func(start, end int) {
		if start == 3 {
			panic(errors.New("kernel fault"))
		}
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrWorkerPanic))
	require.Contains(t, err.Error(), "kernel fault")
}

func TestSpawnerDefault(t *testing.T) {
	t.Setenv("SGEMM_WORKERS", "5")
	require.Equal(t, 5, NewSpawner(0).NumWorkers())
}
