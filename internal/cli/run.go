package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/typestate"
	"github.com/aretw0/typestate/internal/presentation/tui"
	"github.com/aretw0/typestate/pkg/observability"
	"github.com/aretw0/typestate/pkg/runner"
)

// Mode selects which demonstration flows run.
type Mode string

const (
	ModeDemo   Mode = "demo"
	ModeStatic Mode = "static"
	ModeBranch Mode = "branch"
	ModeLoop   Mode = "loop"
)

// ErrUnknownMode is returned for a Mode outside the constants above.
var ErrUnknownMode = errors.New("unknown mode")

// RunOptions contains all the configuration for the run commands.
type RunOptions struct {
	Mode     Mode
	Debug    bool
	Stats    bool
	NoBanner bool
	Start    string // Loop start state, parsed like an input line

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

func (o *RunOptions) setDefaults() {
	if o.Mode == "" {
		o.Mode = ModeDemo
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.ErrOut == nil {
		o.ErrOut = os.Stderr
	}
}

// Execute runs the flows selected by opts.Mode. Running out of input is a
// normal way for the demonstration to end and is not reported as an error.
func Execute(ctx context.Context, opts RunOptions) error {
	opts.setDefaults()
	logger := createLogger(opts.Debug, opts.ErrOut)

	if !opts.NoBanner && isTerminal(opts.Out) {
		tui.PrintBanner(opts.Out, typestate.Version)
	}

	runnerOpts := createRunnerOptions(logger, opts.Debug, opts.Start)
	runnerOpts = append(runnerOpts, runner.WithInputHandler(runner.NewTextHandler(opts.In, opts.Out)))

	var metrics *observability.Metrics
	if opts.Stats {
		metrics = observability.NewMetrics()
		runnerOpts = append(runnerOpts, runner.WithHooks(metrics.Hooks()))
	}

	r := runner.NewRunner(runnerOpts...)

	var runErr error
	switch opts.Mode {
	case ModeDemo:
		runErr = r.Run(ctx)
	case ModeStatic:
		runErr = r.RunStatic(ctx)
	case ModeBranch:
		runErr = r.RunBranching(ctx)
	case ModeLoop:
		runErr = r.RunLoop(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, opts.Mode)
	}

	logCompletion(logger, opts.Out, runErr)

	if metrics != nil {
		if err := metrics.WriteSummary(opts.ErrOut); err != nil {
			logger.Warn("Failed to write metrics summary", "error", err)
		}
	}

	return handleExecutionError(runErr)
}
