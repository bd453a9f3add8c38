/*
Package runner drives the typestate demonstration over a line-oriented text source.

It owns the transition decision (parse a line, pick the next state) and the
three demonstration flows built on it:

  - RunStatic: transitions whose target is fixed in the code.
  - RunBranching: a one-shot runtime branch, first with a concrete type per arm,
    then captured as an either.Either.
  - RunLoop: an endless loop where the previous state and the parsed input
    decide the next state.

I/O goes through an IOHandler, so tests can feed a finite input and observe the
output and the emitted events.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithLogger(logger),
	)

	if err := r.Run(ctx); err != nil && !errors.Is(err, io.EOF) {
		log.Fatal(err)
	}
*/
package runner
