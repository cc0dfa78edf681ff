// Package markov: Graph storage and read-only views.
//
// The graph owns every Link and, transitively, every Choice. Links are created
// lazily by the first Towards call on a source state, so a state that was only
// ever passed to NewEdge has no entry at all. Connect always creates the entry.

package markov

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Graph maps each source state to its Link.
//
// mu guards linkOf: the Edge mutation path takes the write lock, traversal
// and views take the read lock.
type Graph[T comparable] struct {
	mu     sync.RWMutex
	linkOf map[T]*Link[T]
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[T comparable]() *Graph[T] {
	return &Graph[T]{linkOf: make(map[T]*Link[T])}
}

// NewEdge returns a mutation handle bound to source. It does not create a
// Link; the entry appears on the first Towards call.
// Complexity: O(1).
func (g *Graph[T]) NewEdge(source T) *Edge[T] {
	return &Edge[T]{graph: g, source: source}
}

// Connect appends all choices to the Link of source, in order. It is the
// batch form of NewEdge(source).Towards(...) repeated for each choice.
// Unlike NewEdge, Connect always creates the Link entry, so calling it with
// no choices declares source as an explicitly terminal state.
// The whole batch is applied under one write lock, so readers see either none
// or all of it.
// Complexity: O(m + k log k) for m choices and k choices in the result.
func (g *Graph[T]) Connect(source T, choices ...Choice[T]) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.linkFor(source).add(choices...)
}

// Link returns a copy of the Link stored for state and whether one exists.
// An existing but empty Link returns (empty, true).
// Complexity: O(k).
func (g *Graph[T]) Link(state T) (*Link[T], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	l, ok := g.linkOf[state]
	if !ok {
		return nil, false
	}

	return l.Clone(), true
}

// HasState reports whether state has a Link entry (empty or not).
// Complexity: O(1).
func (g *Graph[T]) HasState(state T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.linkOf[state]

	return ok
}

// Len returns the number of source states with a Link entry.
func (g *Graph[T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.linkOf)
}

// States returns a snapshot of every source state with a Link entry.
// Order is unspecified.
func (g *Graph[T]) States() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]T, 0, len(g.linkOf))
	for s := range g.linkOf {
		out = append(out, s)
	}

	return out
}

// Clone returns a deep copy of the graph. Traversals bound to g are not
// affected by later mutations of the clone and vice versa.
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph[T]{linkOf: make(map[T]*Link[T], len(g.linkOf))}
	for s, l := range g.linkOf {
		out.linkOf[s] = l.Clone()
	}

	return out
}

// String renders the graph one source state per line, ordered by the
// fmt rendering of the state so that output is stable.
func (g *Graph[T]) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	type line struct{ key, text string }
	lines := make([]line, 0, len(g.linkOf))
	for s, l := range g.linkOf {
		key := fmt.Sprint(s)
		lines = append(lines, line{key: key, text: key + " " + l.String()})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].key < lines[j].key })

	var sb strings.Builder
	sb.WriteString("Graph{")
	for _, ln := range lines {
		sb.WriteString("\n  ")
		sb.WriteString(ln.text)
	}
	if len(lines) > 0 {
		sb.WriteByte('\n')
	}
	sb.WriteByte('}')

	return sb.String()
}

// linkFor returns the Link for source, creating an empty one if absent.
// Caller must hold g.mu for writing.
func (g *Graph[T]) linkFor(source T) *Link[T] {
	l, ok := g.linkOf[source]
	if !ok {
		l = &Link[T]{}
		g.linkOf[source] = l
	}

	return l
}
