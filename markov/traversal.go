// Package markov: Traversal cursor and the weighted selection scan.
//
// A Traversal borrows its Graph; many traversals may walk one graph at once.
// The cursor only moves when Choose finds a next state.

package markov

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Traversal is a cursor that walks a Graph one weighted step at a time.
// It is not safe for concurrent use.
type Traversal[T comparable] struct {
	current   T
	generator Generator
	graph     *Graph[T]
	steps     int
	opts      traversalOptions[T]
}

// NewTraversal returns a cursor over g positioned at start. gen is called
// exactly once per Choose. Panics if g or gen is nil.
// Complexity: O(len(opts)).
func NewTraversal[T comparable](g *Graph[T], start T, gen Generator, opts ...Option[T]) *Traversal[T] {
	if g == nil {
		panic("markov: NewTraversal(nil graph)")
	}
	if gen == nil {
		panic("markov: NewTraversal(nil generator)")
	}
	o := defaultTraversalOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Traversal[T]{current: start, generator: gen, graph: g, opts: o}
}

// NewTraversal is shorthand for the package-level NewTraversal(g, ...).
func (g *Graph[T]) NewTraversal(start T, gen Generator, opts ...Option[T]) *Traversal[T] {
	return NewTraversal(g, start, gen, opts...)
}

// Current returns the state the cursor is on.
func (t *Traversal[T]) Current() T { return t.current }

// Graph returns the graph this cursor reads from.
func (t *Traversal[T]) Graph() *Graph[T] { return t.graph }

// Steps returns the number of successful moves since creation or Reset.
func (t *Traversal[T]) Steps() int { return t.steps }

// Reset moves the cursor to state and clears the step counter.
func (t *Traversal[T]) Reset(state T) {
	t.current = state
	t.steps = 0
}

// Choose advances the cursor one step and returns the new state.
//
// Algorithm:
//  1. No Link for the current state → (zero, false), no sample drawn.
//  2. Draw one sample r; threshold = floor(r * totalWeight).
//  3. Tentative result = first (lightest) choice, or none if the Link is empty.
//  4. Scan ascending: each choice with Weight <= threshold overwrites the
//     tentative result; the first heavier choice ends the scan.
//  5. On a result, move the cursor and return (value, true); otherwise
//     return (zero, false) and leave the cursor unchanged.
//
// Complexity: O(k) for a Link with k choices.
func (t *Traversal[T]) Choose() (T, bool) {
	var zero T
	from := t.current

	next, threshold, total, ok := t.pick(from)
	if !ok {
		t.logTerminal(from)
		t.opts.onTerminal(from)
		return zero, false
	}

	t.current = next
	t.steps++
	if t.opts.log != nil {
		t.opts.log.WithFields(logrus.Fields{
			"from":         from,
			"to":           next,
			"threshold":    threshold,
			"total_weight": total,
		}).Debug("markov: step")
	}
	t.opts.onStep(from, next, threshold)

	return next, true
}

// pick runs the selection scan for state. The generator is called with no
// lock held, so it may read or extend the graph; Links are never removed, so
// the pointer found by the first lookup stays valid for the scan.
func (t *Traversal[T]) pick(state T) (next T, threshold, total int64, ok bool) {
	g := t.graph
	g.mu.RLock()
	l, found := g.linkOf[state]
	g.mu.RUnlock()
	if !found {
		return next, 0, 0, false
	}

	sample := t.generator()

	g.mu.RLock()
	defer g.mu.RUnlock()

	total = l.total
	threshold = scaleThreshold(sample, total)

	if len(l.list) == 0 {
		return next, threshold, total, false
	}
	next = l.list[0].Value
	for _, c := range l.list {
		if c.Weight > threshold {
			break
		}
		next = c.Value
	}

	return next, threshold, total, true
}

// scaleThreshold returns floor(sample * total) as an int64. NaN maps to 0;
// values beyond the int64 range saturate.
func scaleThreshold(sample float64, total int64) int64 {
	f := math.Floor(sample * float64(total))
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}

	return int64(f)
}

func (t *Traversal[T]) logTerminal(at T) {
	if t.opts.log == nil {
		return
	}
	t.opts.log.WithField("at", at).Debug("markov: no next state")
}

// Walk calls Choose until no next state is found or maxSteps moves were
// made, and returns the visited states in order (the start is not included).
// maxSteps == 0 means no limit; a cyclic graph then never terminates.
// maxSteps < 0 returns nil without drawing.
func (t *Traversal[T]) Walk(maxSteps int) []T {
	if maxSteps < 0 {
		return nil
	}
	var path []T
	for maxSteps == 0 || len(path) < maxSteps {
		next, ok := t.Choose()
		if !ok {
			break
		}
		path = append(path, next)
	}

	return path
}

// String renders the cursor and the graph it walks, for debugging.
func (t *Traversal[T]) String() string {
	return fmt.Sprintf("Traversal{current: %v, steps: %d, graph: %s}", t.current, t.steps, t.graph)
}
