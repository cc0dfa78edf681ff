// SPDX-License-Identifier: MIT
// Package: markovwalk/builder
//
// impl_path.go - Path(n): a one-way chain 0→1→…→n-1.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits transitions in ascending i; the tail state is declared terminal
//     with an empty Link so it shows up in Graph.States().

package builder

import (
	"fmt"

	"github.com/katalvlaran/markovwalk/markov"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the chain 0→1→…→n-1.
func Path(n int) Constructor {
	return func(g *markov.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			g.NewEdge(cfg.idFn(i)).Towards(cfg.weight(), cfg.idFn(i+1))
		}
		g.Connect(cfg.idFn(n - 1))

		return nil
	}
}
