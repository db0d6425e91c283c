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

package matmul

import "github.com/cockroachdb/errors"

// Upper bounds for the register tile. Kernels keep one accumulator per
// output of the tile on the stack.
const (
	MaxTileRows = 4
	MaxTileCols = 8

	maxTile = MaxTileRows * MaxTileCols
)

// Params defines the blocking shape of the fast path.
//
//   - BlockCols: columns of B per cache block. A block of B is reused by
//     every row of A in the range before moving on.
//   - TileRows × TileCols: register tile. Each tile keeps
//     TileRows*TileCols vector accumulators live across the reduction.
type Params struct {
	BlockCols int // N-blocking (L2 cache)
	TileRows  int // Micro-tile rows (register blocking)
	TileCols  int // Micro-tile columns (register blocking)
}

// DefaultParams returns the 256-column block with a 2×6 register tile.
//
// With 8-lane vectors the tile uses 12 accumulators plus 2 A loads and
// 1 B load, which fits the 16 AVX2 registers. A 256-column block of B
// with K=512 is 512KB, sized for a typical L2.
func DefaultParams() Params {
	return Params{
		BlockCols: 256,
		TileRows:  2,
		TileCols:  6,
	}
}

// Validate reports whether p can drive the fast path.
func (p Params) Validate() error {
	if p.BlockCols < 1 {
		return errors.Wrapf(ErrBadParams, "BlockCols=%d, want >= 1", p.BlockCols)
	}
	if p.TileRows < 1 || p.TileRows > MaxTileRows {
		return errors.Wrapf(ErrBadParams, "TileRows=%d, want 1..%d", p.TileRows, MaxTileRows)
	}
	if p.TileCols < 1 || p.TileCols > MaxTileCols {
		return errors.Wrapf(ErrBadParams, "TileCols=%d, want 1..%d", p.TileCols, MaxTileCols)
	}
	return nil
}

func (p Params) is2x6() bool {
	return p.TileRows == 2 && p.TileCols == 6
}
