// SPDX-License-Identifier: MIT
// Package: markovwalk/source
//
// source.go - ready-made randomness sources for markov.Traversal.
//
// Contract:
//   • Every constructor returns a markov.Generator: a zero-argument closure
//     producing one float64 sample per call.
//   • Constructors VALIDATE and PANIC on meaningless inputs (nil RNG, empty
//     sequence, non-positive step). The returned generators never panic.
//   • No generator here is safe for concurrent use; give each Traversal its own.
//
// AI-Hints:
//   • Use Constant or Sequence to pin a walk in tests.
//   • Use Seeded for reproducible pseudo-random walks.
//   • Clock mirrors a wall-clock derived sample; it is neither uniform nor
//     reproducible.

package source

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/markovwalk/markov"
)

// clockModulus is the nanosecond window folded into [0,1) by Clock.
const clockModulus = 100000

// Constant returns a generator that always yields v.
// Complexity: O(1) per sample.
func Constant(v float64) markov.Generator {
	return func() float64 { return v }
}

// Sequence returns a generator that yields vs in order and starts over after
// the last value. The slice is copied. Panics if vs is empty.
// Complexity: O(1) per sample.
func Sequence(vs ...float64) markov.Generator {
	if len(vs) == 0 {
		panic("source: Sequence() needs at least one value")
	}
	vals := append([]float64(nil), vs...)
	i := 0

	return func() float64 {
		v := vals[i]
		i = (i + 1) % len(vals)
		return v
	}
}

// FromRand returns a generator drawing r.Float64() in [0,1). Panics on nil.
// Complexity: O(1) per sample.
func FromRand(r *rand.Rand) markov.Generator {
	if r == nil {
		panic("source: FromRand(nil)")
	}

	return r.Float64
}

// Seeded returns a reproducible pseudo-random generator in [0,1).
// Equal seeds yield equal sample streams.
func Seeded(seed int64) markov.Generator {
	return FromRand(rand.New(rand.NewSource(seed)))
}

// Clock returns a generator derived from the wall clock:
// (UnixNano mod 100000) / 100000.
func Clock() markov.Generator {
	return ClockFrom(time.Now)
}

// ClockFrom is Clock with an injectable time source. Panics on nil.
func ClockFrom(now func() time.Time) markov.Generator {
	if now == nil {
		panic("source: ClockFrom(nil)")
	}

	return func() float64 {
		ns := now().UnixNano() % clockModulus
		if ns < 0 {
			ns += clockModulus
		}
		return float64(ns) / clockModulus
	}
}

// Counter returns a stateful generator yielding frac(k*step) for k = 0,1,2,…
// It sweeps [0,1) deterministically. Panics unless step > 0.
func Counter(step float64) markov.Generator {
	if !(step > 0) {
		panic("source: Counter(step<=0)")
	}
	var k float64

	return func() float64 {
		_, frac := math.Modf(k * step)
		k++
		return frac
	}
}
