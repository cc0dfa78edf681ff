// SPDX-License-Identifier: MIT
// Package: markovwalk/markov
//
// types.go - Choice, Link and Generator.
//
// Invariants (strict):
//   • Choice is an immutable value; equality is field-wise.
//   • Link.list is always sorted ascending by Weight (stable for ties).
//   • Link.total always equals the sum of the weights in list; it is kept
//     incrementally by Edge.Towards, never recomputed.

package markov

import (
	"fmt"
	"strings"
)

// Generator produces one numeric sample per call. Samples are conventionally
// in [0,1) but the range is not enforced. Generators may be stateful.
type Generator func() float64

// Choice is one weighted alternative destination reachable from a source state.
type Choice[T comparable] struct {
	// Weight is the raw weight compared against the traversal threshold.
	Weight int64

	// Value is the destination state.
	Value T
}

// Equal reports whether c and other have the same weight and value.
func (c Choice[T]) Equal(other Choice[T]) bool {
	return c.Weight == other.Weight && c.Value == other.Value
}

// String renders the choice as "weight→value".
func (c Choice[T]) String() string {
	return fmt.Sprintf("%d→%v", c.Weight, c.Value)
}

// Link holds every outgoing alternative of one source state and the cached
// sum of their weights. The zero value is an empty Link.
type Link[T comparable] struct {
	list  []Choice[T] // ascending by Weight
	total int64       // Σ list[i].Weight
}

// Choices returns a copy of the alternatives in ascending weight order.
// Complexity: O(k).
func (l *Link[T]) Choices() []Choice[T] {
	out := make([]Choice[T], len(l.list))
	copy(out, l.list)

	return out
}

// TotalWeight returns the cached sum of all choice weights.
func (l *Link[T]) TotalWeight() int64 { return l.total }

// Len returns the number of alternatives.
func (l *Link[T]) Len() int { return len(l.list) }

// Empty reports whether the link has no alternatives.
func (l *Link[T]) Empty() bool { return len(l.list) == 0 }

// Equal reports whether both links hold the same choices in the same order
// and the same total weight. Two nil links are equal.
func (l *Link[T]) Equal(other *Link[T]) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.total != other.total || len(l.list) != len(other.list) {
		return false
	}
	for i := range l.list {
		if !l.list[i].Equal(other.list[i]) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the link.
// Complexity: O(k).
func (l *Link[T]) Clone() *Link[T] {
	return &Link[T]{list: l.Choices(), total: l.total}
}

// String renders the link as "{total=3 [1→End 2→Corridor]}".
func (l *Link[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "{total=%d [", l.total)
	for i, c := range l.list {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	sb.WriteString("]}")

	return sb.String()
}
