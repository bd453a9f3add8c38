package runner

import (
	"context"

	"github.com/aretw0/typestate/pkg/either"
)

// Phase names a demonstration flow. Its label prefixes prompts and looped output.
type Phase string

const (
	PhaseStatic     Phase = "static"
	PhaseBranching1 Phase = "branching 1"
	PhaseBranching2 Phase = "branching 2"
	PhaseLooping    Phase = "looping"
)

// Label returns the text shown in parentheses before prompts.
// The static phase never prompts and has no label.
func (p Phase) Label() string {
	if p == PhaseStatic {
		return ""
	}
	return string(p)
}

// TransitionKind classifies how the next state was derived.
type TransitionKind string

const (
	KindToNumber   TransitionKind = "to_number"  // Initial -> Number
	KindToText     TransitionKind = "to_text"    // Initial -> Text, input did not parse
	KindAccumulate TransitionKind = "accumulate" // Number + parsed input
	KindReset      TransitionKind = "reset"      // Text replaced by the parsed input
)

// FromInitial is the From value of transitions that start at a fresh Initial.
const FromInitial = "initial"

// InputEvent is emitted after every line read.
type InputEvent struct {
	Phase  Phase  `json:"phase" yaml:"phase"`
	Step   int    `json:"step" yaml:"step"`
	Raw    string `json:"raw" yaml:"raw"`
	Parsed bool   `json:"parsed" yaml:"parsed"`
}

// TransitionEvent is emitted once per state transition.
type TransitionEvent struct {
	Phase Phase          `json:"phase" yaml:"phase"`
	Step  int            `json:"step" yaml:"step"`
	Input string         `json:"input,omitempty" yaml:"input,omitempty"`
	From  string         `json:"from" yaml:"from"`
	To    either.Tag     `json:"to" yaml:"to"`
	Kind  TransitionKind `json:"kind" yaml:"kind"`
	State string         `json:"state" yaml:"state"`
}

// Hooks defines callbacks for runner observability. Nil callbacks are skipped.
type Hooks struct {
	OnInput      func(context.Context, *InputEvent)
	OnTransition func(context.Context, *TransitionEvent)
}
