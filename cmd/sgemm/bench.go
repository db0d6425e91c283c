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

package main

import (
	"fmt"
	"time"

	"github.com/ajroetker/go-sgemm/hwy/contrib/matmul"
	"github.com/ajroetker/go-sgemm/hwy/contrib/matrix"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBenchCmd(flags *engineFlags) *cobra.Command {
	var (
		sizes string
		runs  int
		seed  uint64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "time Row*Col (fast path) against Row*Row (fallback)",
		Args:  cobra.NoArgs,
		RunE: runWithEnv(flags, func(cmd *cobra.Command, e *env) error {
			shapes, err := parseShapes(sizes)
			if err != nil {
				return errors.Wrap(err, "--sizes")
			}
			if runs < 1 {
				return errors.Newf("--runs=%d, want >= 1", runs)
			}
			w := cmd.OutOrStdout()
			for _, s := range shapes {
				r, err := benchShape(e.engine, s, runs, seed)
				if err != nil {
					return err
				}
				e.logger.Info("bench",
					zap.Int("m", s.m), zap.Int("k", s.k), zap.Int("n", s.n),
					zap.Duration("rowCol", r.rowCol), zap.Duration("rowRow", r.rowRow),
				)
				fmt.Fprintf(w, "Matrix size: %dx%dx%d\n", s.m, s.k, s.n)
				fmt.Fprintf(w, "  Row * Col: %v (%.2f GFLOPS)\n", r.rowCol, gflops(s, r.rowCol))
				fmt.Fprintf(w, "  Row * Row: %v (%.2f GFLOPS)\n", r.rowRow, gflops(s, r.rowRow))
				if r.rowCol < r.rowRow {
					fmt.Fprintf(w, "  Row*Col was %.1fx faster.\n", float64(r.rowRow)/float64(r.rowCol))
				} else {
					fmt.Fprintln(w, "  Row*Row was faster or equal.")
				}
				if !r.equal {
					fmt.Fprintln(w, "  WARNING: results differ beyond tolerance.")
				}
			}
			return nil
		}),
	}
	fs := cmd.Flags()
	fs.StringVar(&sizes, "sizes", "512", "comma-separated sizes: N or MxKxN")
	fs.IntVar(&runs, "runs", 3, "runs per product; the fastest is reported")
	fs.Uint64Var(&seed, "seed", 1, "random seed for the operands")
	return cmd
}

type benchResult struct {
	rowCol, rowRow time.Duration
	equal          bool
}

// benchShape times A*B for a RowMajor A against the same logical B stored
// ColumnMajor and RowMajor.
func benchShape(e *matmul.Engine, s shape, runs int, seed uint64) (benchResult, error) {
	a, err := matrix.NewRandom(s.m, s.k, matrix.RowMajor, seed)
	if err != nil {
		return benchResult{}, err
	}
	bCol, err := matrix.NewRandom(s.k, s.n, matrix.ColumnMajor, seed+1)
	if err != nil {
		return benchResult{}, err
	}
	bRow := matrix.MustNew(s.k, s.n, matrix.RowMajor)
	for r := range s.k {
		for c := range s.n {
			bRow.Set(r, c, bCol.At(r, c))
		}
	}

	fast, rowCol, err := timeBest(e, a, bCol, runs)
	if err != nil {
		return benchResult{}, err
	}
	slow, rowRow, err := timeBest(e, a, bRow, runs)
	if err != nil {
		return benchResult{}, err
	}
	return benchResult{rowCol: rowCol, rowRow: rowRow, equal: fast.Equal(slow)}, nil
}

func timeBest(e *matmul.Engine, a, b *matrix.Matrix, runs int) (*matrix.Matrix, time.Duration, error) {
	var (
		c    *matrix.Matrix
		best time.Duration
	)
	for i := range runs {
		start := time.Now()
		out, err := e.Multiply(a, b)
		elapsed := time.Since(start)
		if err != nil {
			return nil, 0, err
		}
		if i == 0 || elapsed < best {
			best = elapsed
		}
		c = out
	}
	return c, best, nil
}

func gflops(s shape, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(2*s.m*s.k*s.n) / d.Seconds() / 1e9
}
