// Package markov implements a generic weighted-choice graph for Markov-chain
// style random walks.
//
// What
//
//   - Graph[T] maps each source state to a Link: the ordered, weighted set of
//     states reachable from it, plus the cached sum of their weights.
//   - Edge[T] is a transient, chainable handle used while building a graph:
//     g.NewEdge("Start").Towards(2, "Corridor").Towards(1, "End").
//   - Traversal[T] is a cursor over a Graph that advances one weighted step per
//     Choose call, drawing exactly one sample from a caller-supplied Generator.
//
// States
//
//	A state is identified purely by its value. Any comparable type works:
//	strings, integers, small structs. Two equal values are the same state.
//
// Selection
//
//	Choose scales the sample into threshold = floor(sample * totalWeight) and
//	scans the Link in ascending weight order. Every Choice whose own weight is
//	<= threshold overwrites the tentative result; the scan stops at the first
//	weight above the threshold. The first (lightest) Choice is the fallback
//	when nothing qualifies. This is a threshold scan over raw weights, not a
//	cumulative proportional draw:
//
//	    Link "2": [5→"5", 10→"10", 15→"15"], total 30
//	    sample 0.0 → threshold 0  → "5"   (fallback)
//	    sample 0.4 → threshold 12 → "10"
//	    sample 0.9 → threshold 27 → "15"
//
// Odds
//
//	Weights are not proportional probabilities. Link.SelectionProbabilities
//	returns what each choice actually wins under a uniform generator; for the
//	fan-out above that is 1/3, 1/6 and 1/2.
//
// Termination
//
//	A state with no Link, or with an empty Link, yields "no next state":
//	Choose returns (zero, false) and the cursor stays where it is. This is the
//	only non-success signal; nothing in this package returns an error.
//
// Validation
//
//	None. Zero and negative weights, duplicate destinations and out-of-range
//	samples are accepted and flow through the same arithmetic.
//
// Concurrency
//
//	Graph guards its map with a sync.RWMutex: Towards takes the write lock,
//	Choose and the read-only views take the read lock. Many Traversals may
//	share one Graph. A single Traversal is not safe for concurrent use, and
//	neither is a stateful Generator.
//
// Complexity
//
//   - Towards: O(k log k) for a Link with k choices (stable re-sort).
//   - Choose:  O(k) worst case, one generator call.
package markov
