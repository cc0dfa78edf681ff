// SPDX-License-Identifier: MIT
// Package: markovwalk/builder
//
// impl_cycle.go - Cycle(n): a closed ring i→(i+1) mod n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits transitions in ascending i; weights drawn in the same order.
//   • Every state has exactly one way out, so a walk never terminates.

package builder

import (
	"fmt"

	"github.com/katalvlaran/markovwalk/markov"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-state ring.
func Cycle(n int) Constructor {
	return func(g *markov.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.NewEdge(cfg.idFn(i)).Towards(cfg.weight(), cfg.idFn((i+1)%n))
		}

		return nil
	}
}
