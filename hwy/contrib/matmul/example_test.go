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

package matmul_test

import (
	"fmt"

	"github.com/ajroetker/go-sgemm/hwy/contrib/matmul"
	"github.com/ajroetker/go-sgemm/hwy/contrib/matrix"
	"github.com/ajroetker/go-sgemm/hwy/contrib/workerpool"
)

func ExampleMultiply() {
	a := matrix.MustNewFromData(2, 2, matrix.RowMajor, []float32{1, 2, 3, 4})
	b := matrix.MustNewFromData(2, 2, matrix.RowMajor, []float32{5, 6, 7, 8})

	c, err := matmul.Multiply(a, b)
	if err != nil {
		panic(err)
	}
	fmt.Print(c)
	// Output:
	// Matrix (2x2) [RowRank]:
	//   [ 19 22 ]
	//   [ 43 50 ]
}

func ExampleEngine_Multiply() {
	pool := workerpool.New(4)
	defer pool.Close()

	e, err := matmul.New(matmul.WithRunner(pool))
	if err != nil {
		panic(err)
	}

	a := matrix.MustNewFromData(2, 3, matrix.RowMajor, []float32{1, 2, 3, 4, 5, 6})
	// [[1,0],[0,1],[1,1]] stored column by column
	b := matrix.MustNewFromData(3, 2, matrix.ColumnMajor, []float32{1, 0, 1, 0, 1, 1})

	fmt.Println(matmul.SelectPath(a, b))
	c, err := e.Multiply(a, b)
	if err != nil {
		panic(err)
	}
	fmt.Print(c)
	// Output:
	// fast
	// Matrix (2x2) [RowRank]:
	//   [ 4 5 ]
	//   [ 10 11 ]
}
