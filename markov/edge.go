package markov

import "sort"

// Edge is a transient mutation handle bound to one source state. It is used
// only while building a graph and may be discarded after use.
type Edge[T comparable] struct {
	graph  *Graph[T]
	source T
}

// Source returns the state this handle appends to.
func (e *Edge[T]) Source() T { return e.source }

// Towards appends Choice{weight, dest} to the Link of the bound source state,
// creating the Link on first use. The list is re-sorted ascending by weight,
// stable for equal weights, and the total weight is incremented by weight.
// Weights are not validated: zero and negative values are stored as given.
// Returns e for chaining.
// Complexity: O(k log k) for a Link with k choices.
func (e *Edge[T]) Towards(weight int64, dest T) *Edge[T] {
	g := e.graph
	g.mu.Lock()
	defer g.mu.Unlock()

	g.linkFor(e.source).add(Choice[T]{Weight: weight, Value: dest})

	return e
}

// add appends choices, re-sorts once (stable, ascending by weight) and adds
// their weights to the total. Caller must hold the graph write lock.
func (l *Link[T]) add(choices ...Choice[T]) {
	if len(choices) == 0 {
		return
	}
	for _, c := range choices {
		l.list = append(l.list, c)
		l.total += c.Weight
	}
	sort.SliceStable(l.list, func(i, j int) bool { return l.list[i].Weight < l.list[j].Weight })
}
