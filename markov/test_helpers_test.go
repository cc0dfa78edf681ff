// SPDX-License-Identifier: MIT
// Package markov_test contains shared fixtures for markov tests.

package markov_test

import (
	"github.com/katalvlaran/markovwalk/markov"
)

// Common state names used across tests.
const (
	StateStart    = "Start"
	StateCorridor = "Corridor"
	StateCorner   = "Corner"
	StateEnd      = "End"
)

// Common weights used across tests (avoid magic numbers in test bodies).
const (
	Weight1   = 1
	Weight2   = 2
	Weight5   = 5
	Weight10  = 10
	Weight15  = 15
	Weight100 = 100
	Weight200 = 200
)

// constant returns a generator that always yields v.
func constant(v float64) markov.Generator {
	return func() float64 { return v }
}

// counting wraps gen and records how many samples were drawn.
func counting(gen markov.Generator, calls *int) markov.Generator {
	return func() float64 {
		*calls++
		return gen()
	}
}

// buildFanOut returns the graph 2 → {15→15, 10→10, 5→5} (total 30) keyed by int.
func buildFanOut() *markov.Graph[int] {
	g := markov.NewGraph[int]()
	g.NewEdge(2).
		Towards(Weight15, 15).
		Towards(Weight10, 10).
		Towards(Weight5, 5)

	return g
}

// buildDungeon returns the Start/Corridor/Corner/End graph.
func buildDungeon() *markov.Graph[string] {
	g := markov.NewGraph[string]()
	g.NewEdge(StateStart).
		Towards(Weight2, StateCorridor).
		Towards(Weight1, StateCorner)
	g.NewEdge(StateCorridor).
		Towards(Weight100, StateCorridor).
		Towards(Weight200, StateCorner).
		Towards(Weight5, StateEnd)
	g.NewEdge(StateCorner).
		Towards(Weight1, StateCorridor)

	return g
}
