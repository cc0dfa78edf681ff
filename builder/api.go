// SPDX-License-Identifier: MIT
// Package: markovwalk/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   • One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg,
//     runs cons in order.
//   • Determinism: same options/seed and constructor order ⇒ identical graphs.
//   • Constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/markovwalk/markov"
)

// Constructor declares transitions on g using the resolved configuration.
// Constructors MUST validate parameters before touching g.
type Constructor func(g *markov.Graph[string], cfg builderConfig) error

// BuildGraph creates a new markov.Graph[string], resolves the builder
// configuration from bopts and applies all constructors in order. The first
// constructor error is returned wrapped as "BuildGraph: %w"; no partial
// cleanup is attempted.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*markov.Graph[string], error) {
	g := markov.NewGraph[string]()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph, so generated topology can
// be layered over hand-declared transitions.
func Apply(g *markov.Graph[string], bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}
