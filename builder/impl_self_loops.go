// SPDX-License-Identifier: MIT
// Package: markovwalk/builder
//
// impl_self_loops.go - SelfLoops(): let every declared state stay put.
//
// Contract:
//   • Applies to the states already present in g (Link entry exists).
//   • States are processed in ascending name order so weight draws are
//     deterministic for a fixed seed.

package builder

import (
	"sort"

	"github.com/katalvlaran/markovwalk/markov"
)

// SelfLoops returns a Constructor that adds s→s to every declared state s.
// Compose it after the topology constructors.
func SelfLoops() Constructor {
	return func(g *markov.Graph[string], cfg builderConfig) error {
		states := g.States()
		sort.Strings(states)
		for _, s := range states {
			g.NewEdge(s).Towards(cfg.weight(), s)
		}

		return nil
	}
}
