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

	"github.com/ajroetker/go-sgemm/hwy"
	"github.com/spf13/cobra"
)

func newInfoCmd(flags *engineFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "show the dispatch level and the engine configuration",
		Args:  cobra.NoArgs,
		RunE: runWithEnv(flags, func(cmd *cobra.Command, e *env) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "dispatch level: %s\n", hwy.CurrentName())
			fmt.Fprintf(w, "vector width:   %d bytes (%d float32 lanes)\n", hwy.CurrentWidth(), hwy.Float32Lanes())
			fmt.Fprintf(w, "fma:            %t\n", hwy.HasFMA())
			fmt.Fprintf(w, "kernel:         %s\n", e.engine.Kernel())
			fmt.Fprintf(w, "workers:        %d\n", e.engine.NumWorkers())
			p := e.engine.Params()
			fmt.Fprintf(w, "blocking:       %d columns, %dx%d tile\n", p.BlockCols, p.TileRows, p.TileCols)
			return nil
		}),
	}
}
