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

	"github.com/ajroetker/go-sgemm/examples/neuralnet"
	"github.com/ajroetker/go-sgemm/hwy/contrib/matrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newNNCmd(flags *engineFlags) *cobra.Command {
	var (
		batch, input, hidden, output int
		seed                         uint64
		printOut                     bool
	)
	cmd := &cobra.Command{
		Use:   "nn",
		Short: "run a forward pass of a random two-layer linear network",
		Args:  cobra.NoArgs,
		RunE: runWithEnv(flags, func(cmd *cobra.Command, e *env) error {
			net, err := neuralnet.NewRandom(input, hidden, output, seed, e.engine)
			if err != nil {
				return err
			}
			in, err := matrix.NewRandom(batch, input, matrix.RowMajor, seed+2)
			if err != nil {
				return err
			}
			out, err := net.Forward(in)
			if err != nil {
				return err
			}
			e.logger.Info("forward",
				zap.Int("batch", batch), zap.Int("input", input),
				zap.Int("hidden", hidden), zap.Int("output", output),
			)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "output: %dx%d\n", out.Rows(), out.Cols())
			if printOut {
				fmt.Fprint(w, out)
			}
			return nil
		}),
	}
	fs := cmd.Flags()
	fs.IntVar(&batch, "batch", 1, "input rows")
	fs.IntVar(&input, "input", 64, "input layer size")
	fs.IntVar(&hidden, "hidden", 128, "hidden layer size")
	fs.IntVar(&output, "output", 10, "output layer size")
	fs.Uint64Var(&seed, "seed", 1, "random seed for weights and input")
	fs.BoolVar(&printOut, "print", false, "print the output matrix")
	return cmd
}
