package typestate

import (
	"errors"
	"fmt"
	"io"
)

// ErrConsumed is the panic value raised when an Initial is transitioned twice.
var ErrConsumed = errors.New("typestate: initial state already consumed")

// Initial is the entry state. It carries no payload and can be transitioned once.
type Initial struct {
	consumed bool
}

// New returns a fresh Initial state.
func New() *Initial {
	return &Initial{}
}

// ToText consumes the Initial and returns a Text state wrapping s.
func (i *Initial) ToText(s string) Text {
	i.consume()
	return Text{text: s}
}

// ToNumber consumes the Initial and returns a Number state wrapping n.
func (i *Initial) ToNumber(n uint32) Number {
	i.consume()
	return Number{num: n}
}

func (i *Initial) consume() {
	if i == nil || i.consumed {
		panic(ErrConsumed)
	}
	i.consumed = true
}

// Number is a terminal state holding an unsigned 32-bit value.
type Number struct {
	num uint32
}

// Value returns the stored integer.
func (n Number) Value() uint32 {
	return n.num
}

func (n Number) String() string {
	return fmt.Sprintf("NUMBER: %d", n.num)
}

// Print writes the state as a single line.
func (n Number) Print(w io.Writer) {
	fmt.Fprintln(w, n.String())
}

// Text is a terminal state holding an owned string.
type Text struct {
	text string
}

func (t Text) String() string {
	return "TEXT: " + t.text
}

// Print writes the state as a single line. The payload is written verbatim,
// including any line terminator it already carries.
func (t Text) Print(w io.Writer) {
	fmt.Fprintln(w, t.String())
}
