package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/typestate"
	"github.com/aretw0/typestate/pkg/either"
)

// Runner runs the demonstration flows against an IOHandler.
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	hooks        []Hooks
	initialState either.Either
}

// NewRunner creates a Runner configured by opts.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(nil, nil)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.initialState == nil {
		r.initialState = either.OfNumber(typestate.New().ToNumber(0))
	}
	return r
}

// Run executes every flow in order: static, branching, looping.
// It only returns once the line source fails or ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.RunStatic(ctx); err != nil {
		return err
	}
	if err := r.RunBranching(ctx); err != nil {
		return err
	}
	return r.RunLoop(ctx)
}

// RunStatic transitions to states chosen at compile time. It reads no input.
func (r *Runner) RunStatic(ctx context.Context) error {
	one := typestate.New()
	var two typestate.Text = one.ToText("hello")
	r.transitioned(ctx, &TransitionEvent{
		Phase: PhaseStatic, Step: 1, From: FromInitial,
		To: either.TagText, Kind: KindToText, State: two.String(),
	})
	if err := r.Handler.Output(ctx, PhaseStatic.Label(), two); err != nil {
		return fmt.Errorf("%s: %w", PhaseStatic, err)
	}

	one = typestate.New()
	var three typestate.Number = one.ToNumber(1234)
	r.transitioned(ctx, &TransitionEvent{
		Phase: PhaseStatic, Step: 2, From: FromInitial,
		To: either.TagNumber, Kind: KindToNumber, State: three.String(),
	})
	if err := r.Handler.Output(ctx, PhaseStatic.Label(), three); err != nil {
		return fmt.Errorf("%s: %w", PhaseStatic, err)
	}
	return nil
}

// RunBranching reads one line per phase and transitions on it.
//
// In the first phase each arm of the branch keeps its own concrete type and
// prints before the arms rejoin. In the second phase both arms produce an
// either.Either, so the result can outlive the branch.
func (r *Runner) RunBranching(ctx context.Context) error {
	if err := r.branchTyped(ctx); err != nil {
		return err
	}
	return r.branchEither(ctx)
}

func (r *Runner) branchTyped(ctx context.Context) error {
	phase := PhaseBranching1
	one := typestate.New()

	line, err := r.read(ctx, phase, 1)
	if err != nil {
		return fmt.Errorf("%s: %w", phase, err)
	}

	event := &TransitionEvent{Phase: phase, Step: 1, Input: line, From: FromInitial}
	if n, ok := ParseNumber(line); ok {
		two := one.ToNumber(n)
		event.To, event.Kind, event.State = either.TagNumber, KindToNumber, two.String()
		r.transitioned(ctx, event)
		err = r.Handler.Output(ctx, "", two)
	} else {
		two := one.ToText(line)
		event.To, event.Kind, event.State = either.TagText, KindToText, two.String()
		r.transitioned(ctx, event)
		err = r.Handler.Output(ctx, "", two)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", phase, err)
	}
	return nil
}

func (r *Runner) branchEither(ctx context.Context) error {
	phase := PhaseBranching2

	line, err := r.read(ctx, phase, 1)
	if err != nil {
		return fmt.Errorf("%s: %w", phase, err)
	}

	two, kind := Branch(line)
	r.transitioned(ctx, &TransitionEvent{
		Phase: phase, Step: 1, Input: line, From: FromInitial,
		To: two.Tag(), Kind: kind, State: two.String(),
	})

	if err := r.Handler.Output(ctx, "", two); err != nil {
		return fmt.Errorf("%s: %w", phase, err)
	}
	return nil
}

// RunLoop prints the current state, reads a line and replaces the state with
// Next(state, line), forever. It has no exit condition of its own: it returns
// when the line source fails (io.EOF once input is exhausted) or ctx is done.
func (r *Runner) RunLoop(ctx context.Context) error {
	phase := PhaseLooping
	state := r.initialState
	r.Logger.Debug("Loop started", "state", state.String())

	for step := 1; ; step++ {
		if err := ctx.Err(); err != nil {
			r.Logger.Debug("Loop stopped", "step", step, "err", err)
			return err
		}

		if err := r.Handler.Output(ctx, phase.Label(), state); err != nil {
			return fmt.Errorf("%s: %w", phase, err)
		}

		line, err := r.read(ctx, phase, step)
		if err != nil {
			r.Logger.Debug("Loop stopped", "step", step, "err", err)
			return fmt.Errorf("%s: %w", phase, err)
		}

		next, kind := Next(state, line)
		r.transitioned(ctx, &TransitionEvent{
			Phase: phase, Step: step, Input: line, From: string(state.Tag()),
			To: next.Tag(), Kind: kind, State: next.String(),
		})
		state = next
	}
}

func (r *Runner) read(ctx context.Context, phase Phase, step int) (string, error) {
	line, err := r.Handler.Input(ctx, phase.Label())
	if err != nil {
		return "", err
	}
	_, parsed := ParseNumber(line)
	ev := &InputEvent{Phase: phase, Step: step, Raw: line, Parsed: parsed}
	for _, h := range r.hooks {
		if h.OnInput != nil {
			h.OnInput(ctx, ev)
		}
	}
	return line, nil
}

func (r *Runner) transitioned(ctx context.Context, ev *TransitionEvent) {
	for _, h := range r.hooks {
		if h.OnTransition != nil {
			h.OnTransition(ctx, ev)
		}
	}
}
