package model

import "errors"

// Sentinel errors for model decoding and validation.
var (
	// ErrDecode wraps a YAML syntax or schema error.
	ErrDecode = errors.New("model: cannot decode document")

	// ErrNoStates indicates a document without any state.
	ErrNoStates = errors.New("model: no states declared")

	// ErrEmptyStateName indicates a state entry with an empty name.
	ErrEmptyStateName = errors.New("model: state name is empty")

	// ErrEmptyTarget indicates a transition with an empty destination.
	ErrEmptyTarget = errors.New("model: transition target is empty")
)
