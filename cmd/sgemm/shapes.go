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
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// shape is an M×K×N product.
type shape struct {
	m, k, n int
}

// parseShapes parses a comma-separated list of sizes. Each entry is either
// N (a square N×N×N product) or MxKxN. Duplicates are dropped.
func parseShapes(s string) ([]shape, error) {
	parts := lo.Compact(lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))
	if len(parts) == 0 {
		return nil, errors.Newf("no sizes in %q", s)
	}

	shapes := make([]shape, 0, len(parts))
	for _, p := range parts {
		dims := strings.Split(strings.ToLower(p), "x")
		if len(dims) != 1 && len(dims) != 3 {
			return nil, errors.Newf("size %q: want N or MxKxN", p)
		}
		vals := make([]int, len(dims))
		for i, d := range dims {
			v, err := strconv.Atoi(d)
			if err != nil {
				return nil, errors.Wrapf(err, "size %q", p)
			}
			if v <= 0 {
				return nil, errors.Newf("size %q: dimensions must be positive", p)
			}
			vals[i] = v
		}
		if len(vals) == 1 {
			shapes = append(shapes, shape{vals[0], vals[0], vals[0]})
		} else {
			shapes = append(shapes, shape{vals[0], vals[1], vals[2]})
		}
	}
	return lo.Uniq(shapes), nil
}
