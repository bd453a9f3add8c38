package runner

import (
	"context"
	"io"
)

// Printer is anything that can write itself as a state line.
type Printer interface {
	Print(w io.Writer)
}

// IOHandler defines the strategy for interacting with the user.
type IOHandler interface {
	// Output writes p. A non-empty label is written first as "(label) ".
	Output(ctx context.Context, label string, p Printer) error

	// Input prompts with label and returns the next raw line,
	// including its terminator when the source provides one.
	Input(ctx context.Context, label string) (string, error)
}
