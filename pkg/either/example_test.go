package either_test

import (
	"fmt"
	"os"

	"github.com/aretw0/typestate"
	"github.com/aretw0/typestate/pkg/either"
)

// Both arms produce an Either, so the result outlives the branch.
func ExampleOfNumber() {
	line := "not a number"

	var two either.Either
	if line == "" {
		two = either.OfNumber(typestate.New().ToNumber(0))
	} else {
		two = either.OfText(typestate.New().ToText(line))
	}
	two.Print(os.Stdout)
	fmt.Println(two.Tag())
	// Output:
	// TEXT: not a number
	// text
}
