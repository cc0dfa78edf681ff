// SPDX-License-Identifier: MIT
// Package: markovwalk/builder
//
// impl_wheel.go - Wheel(n) = Cycle(n-1) + "Center" spokes.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): the rim is a cycle of n-1 ≥ 3 states.
//   • Rim states are idFn(0..n-2); each gets its ring transition first, then
//     the spoke transitions in ascending rim order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/markovwalk/markov"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a ring with a central hub.
func Wheel(n int) Constructor {
	return func(g *markov.Graph[string], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		spokes(g, cfg, 0, n-1)

		return nil
	}
}
