// SPDX-License-Identifier: MIT
// Package: markovwalk/markov
//
// options.go - functional options for Traversal.
//
// Contract:
//   • Options mutate traversalOptions before the Traversal is returned.
//   • nil arguments are ignored; the defaults stay in place.
//   • Defaults are silent: no logger, no-op hooks.

package markov

import "github.com/sirupsen/logrus"

// Option configures a Traversal.
type Option[T comparable] func(*traversalOptions[T])

// traversalOptions holds the resolved knobs of one Traversal.
type traversalOptions[T comparable] struct {
	// log receives Debug entries for every step; nil disables logging.
	log logrus.FieldLogger

	// onStep runs after each successful move.
	onStep func(from, to T, threshold int64)

	// onTerminal runs whenever Choose yields no next state.
	onTerminal func(at T)
}

func defaultTraversalOptions[T comparable]() traversalOptions[T] {
	return traversalOptions[T]{
		onStep:     func(T, T, int64) {},
		onTerminal: func(T) {},
	}
}

// WithLogger attaches a structured logger. Each step is logged at Debug level
// with the fields from, to, threshold and total_weight.
func WithLogger[T comparable](log logrus.FieldLogger) Option[T] {
	return func(o *traversalOptions[T]) {
		if log != nil {
			o.log = log
		}
	}
}

// WithOnStep registers a callback invoked after each successful move.
func WithOnStep[T comparable](fn func(from, to T, threshold int64)) Option[T] {
	return func(o *traversalOptions[T]) {
		if fn != nil {
			o.onStep = fn
		}
	}
}

// WithOnTerminal registers a callback invoked when Choose finds no next state.
func WithOnTerminal[T comparable](fn func(at T)) Option[T] {
	return func(o *traversalOptions[T]) {
		if fn != nil {
			o.onTerminal = fn
		}
	}
}
