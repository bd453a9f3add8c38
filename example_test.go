package typestate_test

import (
	"os"

	"github.com/aretw0/typestate"
)

// The target state is known when writing the code, so each variable has a
// concrete type and no runtime check is needed.
func ExampleInitial_ToText() {
	two := typestate.New().ToText("hello")
	two.Print(os.Stdout)
	// Output: TEXT: hello
}

func ExampleInitial_ToNumber() {
	two := typestate.New().ToNumber(1234)
	two.Print(os.Stdout)
	// Output: NUMBER: 1234
}

func ExampleNumber_Value() {
	n := typestate.New().ToNumber(41)
	next := typestate.New().ToNumber(n.Value() + 1)
	next.Print(os.Stdout)
	// Output: NUMBER: 42
}
