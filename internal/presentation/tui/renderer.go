package tui

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
)

// Lesson is the markdown walkthrough printed by the explain command.
//
//go:embed lesson.md
var Lesson string

// NewRenderer returns a function that renders markdown using glamour,
// detecting a light or dark terminal background.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
