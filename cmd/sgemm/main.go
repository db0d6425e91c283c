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

// Command sgemm drives the matmul engine from the command line.
//
// Usage:
//
//	sgemm info                         # dispatch level and selected kernel
//	sgemm check                        # commutativity and associativity demos
//	sgemm bench --sizes 256,512        # Row*Col vs Row*Row timing
//	sgemm nn --input 64 --hidden 128   # forward pass of a two-layer net
//
// Engine flags (--workers, --kernel, --pool) and --log-level apply to
// every subcommand.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
