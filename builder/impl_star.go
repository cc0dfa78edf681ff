// SPDX-License-Identifier: MIT
// Package: markovwalk/builder
//
// impl_star.go - Star(n): hub "Center" with n-1 leaves.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Leaves are named via cfg.idFn for i = 1..n-1.
//   • For each leaf in ascending order: Center→leaf, then leaf→Center, each
//     with its own weight draw.

package builder

import (
	"fmt"

	"github.com/katalvlaran/markovwalk/markov"
)

const (
	methodStar     = "Star"
	minStarNodes   = 2
	centerVertexID = "Center"
)

// Star returns a Constructor that builds a hub-and-spoke chain.
func Star(n int) Constructor {
	return func(g *markov.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		spokes(g, cfg, 1, n)

		return nil
	}
}

// spokes links Center with every leaf idFn(from)..idFn(to-1), both ways.
func spokes(g *markov.Graph[string], cfg builderConfig, from, to int) {
	hub := g.NewEdge(centerVertexID)
	for i := from; i < to; i++ {
		leaf := cfg.idFn(i)
		hub.Towards(cfg.weight(), leaf)
		g.NewEdge(leaf).Towards(cfg.weight(), centerVertexID)
	}
}
