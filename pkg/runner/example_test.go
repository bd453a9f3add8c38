package runner_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/typestate"
	"github.com/aretw0/typestate/pkg/either"
	"github.com/aretw0/typestate/pkg/runner"
)

func ExampleReplay() {
	start := either.OfNumber(typestate.New().ToNumber(10))

	runner.Replay(start, "abc").Print(os.Stdout)
	runner.Replay(start, "abc", "3").Print(os.Stdout)
	runner.Replay(start, "5", "7").Print(os.Stdout)
	// Output:
	// TEXT: abc
	// NUMBER: 3
	// NUMBER: 22
}

func ExampleRunner_RunLoop() {
	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(strings.NewReader("5\n7\n"), os.Stdout)),
	)

	err := r.RunLoop(context.Background())
	fmt.Println(err)
	// Output:
	// (looping) NUMBER: 0
	// (looping) Type something:
	// > (looping) NUMBER: 5
	// (looping) Type something:
	// > (looping) NUMBER: 12
	// (looping) Type something:
	// > looping: EOF
}
