package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/typestate/internal/presentation/tui"
)

// Explain writes the typestate lesson to out. On a terminal, unless plain is
// set, the markdown is rendered; any rendering failure falls back to the source.
func Explain(out io.Writer, plain bool) error {
	if out == nil {
		out = os.Stdout
	}

	content := tui.Lesson
	if !plain && isTerminal(out) {
		if render, err := tui.NewRenderer(); err == nil {
			if rendered, err := render(content); err == nil {
				content = rendered
			}
		}
	}

	_, err := fmt.Fprint(out, content)
	return err
}
