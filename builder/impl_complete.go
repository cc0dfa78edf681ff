// SPDX-License-Identifier: MIT
// Package: markovwalk/builder
//
// impl_complete.go - Complete(n): every state may move to every other state.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits ordered pairs (i,j), i≠j, in lexicographic order.
//   • n == 1 yields a single state with an empty (terminal) Link.

package builder

import (
	"fmt"

	"github.com/katalvlaran/markovwalk/markov"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete chain on n states.
// Complexity: O(n²) transitions.
func Complete(n int) Constructor {
	return func(g *markov.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
		}
		if n == 1 {
			g.Connect(ids[0])
			return nil
		}
		for i, u := range ids {
			e := g.NewEdge(u)
			for j, v := range ids {
				if i != j {
					e.Towards(cfg.weight(), v)
				}
			}
		}

		return nil
	}
}
