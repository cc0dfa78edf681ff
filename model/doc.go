// Package model loads and stores Markov chains as YAML documents.
//
// Format
//
//	start: Start
//	states:
//	  - name: Start
//	    next:
//	      - {weight: 2, to: Corridor}
//	      - {weight: 1, to: End}
//	  - name: Corridor
//	    next:
//	      - {weight: 1, to: End}
//	  - name: End          # no next: declared terminal
//
// Transitions are declared in document order through markov.Edge.Towards, so
// the resulting Links are sorted and summed exactly as if built by hand.
// A state listed without next gets an empty Link; a destination that is never
// listed as a state has no Link at all. Both end a walk.
//
// Validation is structural only (state and target names). Weights are never
// checked: zero and negative values pass through to the graph unchanged.
package model
