package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader *bufio.Reader
	Writer io.Writer
}

// NewTextHandler creates a handler for standard text IO.
// Nil arguments default to os.Stdin and os.Stdout.
func NewTextHandler(r io.Reader, w io.Writer) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
}

func (h *TextHandler) Output(ctx context.Context, label string, p Printer) error {
	out := &errWriter{w: h.Writer}
	if label != "" {
		fmt.Fprintf(out, "(%s) ", label)
	}
	p.Print(out)
	if out.err != nil {
		return out.err
	}
	return h.flush()
}

func (h *TextHandler) Input(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Prompt
	out := &errWriter{w: h.Writer}
	if label != "" {
		fmt.Fprintf(out, "(%s) ", label)
	}
	fmt.Fprint(out, "Type something:\n> ")
	if out.err != nil {
		return "", out.err
	}
	if err := h.flush(); err != nil {
		return "", err
	}

	line, err := h.Reader.ReadString('\n')
	if err != nil {
		// A last line without a terminator is still a line.
		if line != "" && errors.Is(err, io.EOF) {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func (h *TextHandler) flush() error {
	if f, ok := h.Writer.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// errWriter keeps the first write error so Print, which has no failure mode,
// can still be checked afterwards.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
