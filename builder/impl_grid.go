// SPDX-License-Identifier: MIT
// Package: markovwalk/builder
//
// impl_grid.go - Grid(rows, cols): moves between orthogonal neighbours.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell names are "r,c" (fixed scheme, cfg.idFn is not used).
//   • For each cell in row-major order, emit Right then Down, each in both
//     directions (u→v then v→u).
//   • A 1×1 grid declares its single cell terminal.

package builder

import (
	"fmt"

	"github.com/katalvlaran/markovwalk/markov"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols lattice walk.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *markov.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if rows == 1 && cols == 1 {
			g.Connect(fmt.Sprintf(gridIDFmt, 0, 0))
			return nil
		}

		both := func(u, v string) {
			g.NewEdge(u).Towards(cfg.weight(), v)
			g.NewEdge(v).Towards(cfg.weight(), u)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					both(u, fmt.Sprintf(gridIDFmt, r, c+1))
				}
				if r+1 < rows {
					both(u, fmt.Sprintf(gridIDFmt, r+1, c))
				}
			}
		}

		return nil
	}
}
