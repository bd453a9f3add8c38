package runner

import (
	"log/slog"

	"github.com/aretw0/typestate/pkg/either"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithHooks registers lifecycle hooks. It can be given more than once;
// every registered set fires, in registration order.
func WithHooks(hooks Hooks) Option {
	return func(r *Runner) {
		r.hooks = append(r.hooks, hooks)
	}
}

// WithInitialState sets the state the loop starts from.
// If not provided, the loop starts at Number(0).
func WithInitialState(state either.Either) Option {
	return func(r *Runner) {
		r.initialState = state
	}
}
