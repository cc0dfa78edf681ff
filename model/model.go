// SPDX-License-Identifier: MIT
// Package: markovwalk/model
//
// model.go - YAML definition of a string-keyed Markov chain.
//
// Contract:
//   • Decode/Parse reject unknown fields and validate structure.
//   • Graph declares transitions in document order.
//   • Marshal renders states sorted by name and choices in Link order, so
//     Parse(Marshal(g)) rebuilds an equal graph. An empty graph has no
//     valid document; Marshal rejects it with ErrNoStates.

package model

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/markovwalk/markov"
)

const (
	methodDecode   = "Decode"
	methodValidate = "Validate"
	methodMarshal  = "Marshal"
	yamlIndent     = 2
)

// Transition is one weighted move to another state.
type Transition struct {
	Weight int64  `yaml:"weight"`
	To     string `yaml:"to"`
}

// State lists the outgoing transitions of one source state.
type State struct {
	Name string       `yaml:"name"`
	Next []Transition `yaml:"next,omitempty"`
}

// Definition is a whole chain plus an optional starting state.
type Definition struct {
	Start  string  `yaml:"start,omitempty"`
	States []State `yaml:"states"`
}

// Parse decodes and validates a YAML document held in memory.
func Parse(data []byte) (*Definition, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one YAML document from r and validates it.
// Unknown fields are rejected.
func Decode(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty document: %w", methodDecode, ErrNoStates)
		}
		return nil, fmt.Errorf("%s: %w: %w", methodDecode, ErrDecode, err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// Validate checks the structure of d. It does not look at weights.
func (d *Definition) Validate() error {
	if len(d.States) == 0 {
		return fmt.Errorf("%s: %w", methodValidate, ErrNoStates)
	}
	for i, s := range d.States {
		if s.Name == "" {
			return fmt.Errorf("%s: states[%d]: %w", methodValidate, i, ErrEmptyStateName)
		}
		for j, tr := range s.Next {
			if tr.To == "" {
				return fmt.Errorf("%s: states[%d] (%s) next[%d]: %w", methodValidate, i, s.Name, j, ErrEmptyTarget)
			}
		}
	}

	return nil
}

// StartState returns Start, or the first listed state when Start is empty.
func (d *Definition) StartState() string {
	if d.Start != "" || len(d.States) == 0 {
		return d.Start
	}

	return d.States[0].Name
}

// Graph builds a fresh markov graph from d. A state listed more than once
// accumulates the transitions of every entry.
// Complexity: O(E log k).
func (d *Definition) Graph() *markov.Graph[string] {
	g := markov.NewGraph[string]()
	for _, s := range d.States {
		choices := make([]markov.Choice[string], len(s.Next))
		for i, tr := range s.Next {
			choices[i] = markov.Choice[string]{Weight: tr.Weight, Value: tr.To}
		}
		g.Connect(s.Name, choices...)
	}

	return g
}

// FromGraph captures g as a Definition: states sorted by name, choices in
// Link order.
func FromGraph(g *markov.Graph[string], start string) *Definition {
	names := g.States()
	sort.Strings(names)

	def := &Definition{Start: start, States: make([]State, 0, len(names))}
	for _, name := range names {
		l, ok := g.Link(name)
		if !ok {
			continue
		}
		st := State{Name: name}
		for _, c := range l.Choices() {
			st.Next = append(st.Next, Transition{Weight: c.Weight, To: c.Value})
		}
		def.States = append(def.States, st)
	}

	return def
}

// Marshal renders g as a YAML document in the format read by Parse.
// Returns ErrNoStates for a graph without any state.
func Marshal(g *markov.Graph[string], start string) ([]byte, error) {
	if g.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", methodMarshal, ErrNoStates)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(FromGraph(g, start)); err != nil {
		return nil, fmt.Errorf("%s: %w", methodMarshal, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodMarshal, err)
	}

	return buf.Bytes(), nil
}
