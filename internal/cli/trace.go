package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/typestate/pkg/observability"
	"github.com/aretw0/typestate/pkg/runner"
)

// ErrUnknownFormat is returned when the trace format is neither yaml nor json.
var ErrUnknownFormat = errors.New("unknown trace format")

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// TraceOptions configures Trace.
type TraceOptions struct {
	Format string
	Debug  bool
	Stats  bool
	Start  string

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

type encoder interface {
	Encode(v any) error
}

func newEncoder(format string, w io.Writer) (encoder, func() error, error) {
	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return enc, enc.Close, nil
	case FormatJSON:
		return json.NewEncoder(w), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Trace runs the loop over opts.In without prompts and streams one document
// per transition to opts.Out: YAML documents, or one JSON object per line.
func Trace(ctx context.Context, opts TraceOptions) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}
	logger := createLogger(opts.Debug, opts.ErrOut)

	enc, closeEnc, err := newEncoder(opts.Format, opts.Out)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var encErr error
	record := runner.Hooks{
		OnTransition: func(_ context.Context, e *runner.TransitionEvent) {
			if encErr != nil {
				return
			}
			if encErr = enc.Encode(e); encErr != nil {
				cancel()
			}
		},
	}

	runnerOpts := createRunnerOptions(logger, opts.Debug, opts.Start)
	runnerOpts = append(runnerOpts,
		runner.WithInputHandler(runner.NewTextHandler(opts.In, io.Discard)),
		runner.WithHooks(record),
	)

	var metrics *observability.Metrics
	if opts.Stats {
		metrics = observability.NewMetrics()
		runnerOpts = append(runnerOpts, runner.WithHooks(metrics.Hooks()))
	}

	runErr := runner.NewRunner(runnerOpts...).RunLoop(ctx)
	if encErr != nil {
		return fmt.Errorf("encode trace: %w", encErr)
	}
	if err := closeEnc(); err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	if metrics != nil {
		if err := metrics.WriteSummary(opts.ErrOut); err != nil {
			logger.Warn("Failed to write metrics summary", "error", err)
		}
	}
	logger.Debug("Trace finished", "err", runErr)
	return handleExecutionError(runErr)
}
