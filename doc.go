// Package markovwalk is a small toolkit for weighted-choice Markov graphs:
// declare states and weighted transitions, then walk them one sample at a time.
//
// What is markovwalk?
//
//	A generic, thread-safe library built from four subpackages:
//		• markov:  Graph, Edge, Link and Choice types + the Traversal cursor
//		• source:  sample generators (constant, sequence, seeded, clock, counter)
//		• builder: canonical shapes (path, cycle, star, wheel, complete, grid, random)
//		• model:   YAML definitions decoded into (and encoded from) a Graph
//
// Under the hood:
//
//	markov/   - weighted Links sorted ascending, own-weight threshold selection
//	source/   - markov.Generator constructors for tests, demos and seeding
//	builder/  - functional options, ID schemes and weight functions
//	model/    - strict YAML parsing with validation sentinels
//	examples/ - runnable dungeon walk
//
// Quick ASCII example:
//
//	Start ──2──▶ Corridor ──5──▶ End
//	  │            ▲  │
//	  1            1  200
//	  ▼            │  ▼
//	  Corner ◀─────┴──┘
//
//	Start picks Corner or Corridor; End has no outgoing edges and stops a walk.
//
//	go get github.com/katalvlaran/markovwalk/markov
package markovwalk
