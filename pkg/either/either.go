package either

import (
	"io"

	"github.com/aretw0/typestate"
)

// Tag identifies the active variant of an Either.
type Tag string

const (
	TagNumber Tag = "number"
	TagText   Tag = "text"
)

// Either holds exactly one terminal state. Values come from OfNumber or
// OfText; a nil Either holds no state and must not be printed.
type Either interface {
	// Tag reports which variant is active.
	Tag() Tag
	// Print writes the wrapped state.
	Print(w io.Writer)
	String() string

	sealed()
}

// Number is the Either variant wrapping a typestate.Number.
type Number struct {
	typestate.Number
}

// Text is the Either variant wrapping a typestate.Text.
type Text struct {
	typestate.Text
}

// OfNumber wraps n.
func OfNumber(n typestate.Number) Either {
	return Number{n}
}

// OfText wraps t.
func OfText(t typestate.Text) Either {
	return Text{t}
}

func (Number) Tag() Tag { return TagNumber }
func (Text) Tag() Tag   { return TagText }

func (Number) sealed() {}
func (Text) sealed()   {}
