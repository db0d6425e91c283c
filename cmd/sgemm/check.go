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
	"io"

	"github.com/ajroetker/go-sgemm/hwy/contrib/matmul"
	"github.com/ajroetker/go-sgemm/hwy/contrib/matrix"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// errAssociativity is returned by check when (AB)C and A(BC) differ.
var errAssociativity = errors.New("associativity does not hold")

func newCheckCmd(flags *engineFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "run the commutativity and associativity demonstrations",
		Args:  cobra.NoArgs,
		RunE: runWithEnv(flags, func(cmd *cobra.Command, e *env) error {
			w := cmd.OutOrStdout()
			if err := checkCommutativity(w, e.engine); err != nil {
				return err
			}
			return checkAssociativity(w, e.engine)
		}),
	}
}

func printNamed(w io.Writer, name string, m *matrix.Matrix) {
	fmt.Fprintf(w, "%s:\n", name)
	fmt.Fprint(w, m)
}

// checkCommutativity shows that A*B and B*A differ, and that the same
// buffer read as ColumnMajor is a different operand.
func checkCommutativity(w io.Writer, e *matmul.Engine) error {
	fmt.Fprintln(w, "Testing commutativity (A * B != B * A usually)...")
	dataA := []float32{1, 2, 3, 4}
	dataB := []float32{5, 6, 7, 8}
	a := matrix.MustNewFromData(2, 2, matrix.RowMajor, dataA)
	b := matrix.MustNewFromData(2, 2, matrix.RowMajor, dataB)
	c := matrix.MustNewFromData(2, 2, matrix.ColumnMajor, dataA)

	ab, err := e.Multiply(a, b)
	if err != nil {
		return err
	}
	printNamed(w, "C", c)
	printNamed(w, "AB", ab)

	cb, err := e.Multiply(c, b)
	if err != nil {
		return err
	}
	printNamed(w, "CB", cb)

	ba, err := e.Multiply(b, a)
	if err != nil {
		return err
	}
	printNamed(w, "BA", ba)

	if ab.Equal(ba) {
		fmt.Fprintln(w, "  Commutativity holds (unexpected for general matrices).")
	} else {
		fmt.Fprintln(w, "  Commutativity does not hold (as expected).")
	}
	return nil
}

func checkAssociativity(w io.Writer, e *matmul.Engine) error {
	fmt.Fprintln(w, "Testing associativity ((A * B) * C == A * (B * C))...")
	a := matrix.MustNewFromData(2, 2, matrix.RowMajor, []float32{1, 2, 3, 4})
	b := matrix.MustNewFromData(2, 2, matrix.RowMajor, []float32{5, 6, 7, 8})
	c := matrix.MustNewFromData(2, 2, matrix.RowMajor, []float32{9, 1, 2, 3})

	ab, err := e.Multiply(a, b)
	if err != nil {
		return err
	}
	left, err := e.Multiply(ab, c)
	if err != nil {
		return err
	}
	printNamed(w, "(AB)C", left)

	bc, err := e.Multiply(b, c)
	if err != nil {
		return err
	}
	right, err := e.Multiply(a, bc)
	if err != nil {
		return err
	}
	printNamed(w, "A(BC)", right)

	if !left.Equal(right) {
		return errAssociativity
	}
	fmt.Fprintln(w, "  Associativity holds.")
	return nil
}
