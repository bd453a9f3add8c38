/*
Package typestate demonstrates the typestate pattern: legal state transitions are
encoded in the type system, so the compiler rejects illegal ones.

The machine has three states. Initial is the entry point and can move to either
Number or Text. Number and Text are terminal.

# Static Transitions

Each transition is a method on *Initial and returns a distinct concrete type.
When the target state is known while writing the code, the compiler keeps track
of where you are:

	two := typestate.New().ToText("hello")
	two.Print(os.Stdout) // TEXT: hello

The same property is also the limitation. Both arms of a runtime branch must
produce one type, so this does not compile:

	var two typestate.Number
	if n, ok := parse(line); ok {
		two = typestate.New().ToNumber(n)
	} else {
		two = typestate.New().ToText(line) // cannot use Text as Number
	}

When the state depends on runtime data, use the tagged union in package either
and let a type switch recover the concrete state.

# Consumption

A transition consumes its Initial. Go has no move semantics, so the handle is
invalidated instead: a second transition on the same *Initial panics with
ErrConsumed.
*/
package typestate
