// SPDX-License-Identifier: MIT
// Package: markovwalk/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like chain.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//   • Trial order: for each i asc, j asc, j≠i. One Bernoulli draw per trial,
//     then one weight draw per kept transition.
//   • States with no kept transition are declared terminal (empty Link).

package builder

import (
	"fmt"

	"github.com/katalvlaran/markovwalk/markov"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that keeps each ordered transition i→j
// (i≠j) independently with probability p.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *markov.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			g.Connect(u)
			e := g.NewEdge(u)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				keep := p == probMax
				if p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					e.Towards(cfg.weight(), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
