package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/typestate/internal/logging"
	"github.com/aretw0/typestate/pkg/either"
	"github.com/aretw0/typestate/pkg/runner"
)

// createLogger configures the application logger.
// In debug mode, it writes to errOut (to separate from the demonstration output).
func createLogger(debug bool, errOut io.Writer) *slog.Logger {
	if debug {
		return logging.New(errOut, slog.LevelDebug)
	}
	return logging.NewNop()
}

func createDebugHooks(logger *slog.Logger) runner.Hooks {
	return runner.Hooks{
		OnInput: func(ctx context.Context, e *runner.InputEvent) {
			logger.Debug("Input", "phase", e.Phase, "step", e.Step, "raw", e.Raw, "parsed", e.Parsed)
		},
		OnTransition: func(ctx context.Context, e *runner.TransitionEvent) {
			logger.Debug("Transition", "phase", e.Phase, "step", e.Step, "from", e.From, "to", e.To, "kind", e.Kind, "state", e.State)
		},
	}
}

// createRunnerOptions prepares the functional options shared by every mode.
func createRunnerOptions(logger *slog.Logger, debug bool, start string) []runner.Option {
	opts := []runner.Option{
		runner.WithLogger(logger),
	}
	if debug {
		opts = append(opts, runner.WithHooks(createDebugHooks(logger)))
	}
	if start != "" {
		opts = append(opts, runner.WithInitialState(startState(start)))
	}
	return opts
}

// startState turns a --start value into a loop state with the same rule the
// loop applies to input: numbers become Number, anything else Text.
func startState(raw string) either.Either {
	state, _ := runner.Branch(raw)
	return state
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// isInterrupted reports whether err means the flow ended from outside:
// the line source ran dry or the context was canceled.
func isInterrupted(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}

func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil // Exit 0 for exhaustion and interruptions
	}
	return err
}

// logCompletion closes the dangling prompt when a person is watching.
func logCompletion(logger *slog.Logger, out io.Writer, err error) {
	logger.Debug("Flow finished", "err", err)
	if isInterrupted(err) && isTerminal(out) {
		fmt.Fprintln(out)
	}
}
