// Package builder provides functional-options building blocks for generating
// whole Markov chains over string states in one call.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        resolves options, creates a markov.Graph[string] and
//     applies constructors in order.
//     – Constructor:       a closure that declares transitions on the graph.
//   - Topologies (Constructor factories):
//     – Path(n):           0→1→…→n-1, tail declared terminal.
//     – Cycle(n):          i→(i+1) mod n.
//     – Star(n):           Center→leaf and leaf→Center.
//     – Wheel(n):          Cycle(n-1) plus Center spokes both ways.
//     – Complete(n):       every ordered pair i≠j.
//     – Grid(rows, cols):  4-neighbourhood moves between "r,c" cells.
//     – RandomSparse(n,p): each ordered pair i≠j kept with probability p.
//     – SelfLoops():       every declared state may also stay where it is.
//   - State-name schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     AlphanumericIDFn, SymbolNumberIDFn(prefix).
//   - Transition weights (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn.
//
// Guarantees:
//
//   - Deterministic: same options, seed and constructor order ⇒ identical
//     graphs (same Links, same choice order, same totals).
//   - Option constructors panic on meaningless input (nil schemes, bad ranges).
//   - Constructors never panic; they return sentinel errors wrapped with the
//     method name, so callers branch with errors.Is.
//
// Constructors only append. Running two constructors over the same states
// accumulates choices in the shared Links, exactly like repeated Towards calls.
package builder
