package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/typestate"
	"github.com/aretw0/typestate/internal/presentation/graph"
	"github.com/aretw0/typestate/pkg/either"
	"github.com/aretw0/typestate/pkg/runner"
)

// Graph writes the machine as a Mermaid diagram. When replay lines are given,
// the path they take through the loop is overlaid, starting from start
// (Number(0) when empty).
func Graph(out io.Writer, start string, replay []string) error {
	if out == nil {
		out = os.Stdout
	}

	var overlay *graph.GraphOverlay
	if len(replay) > 0 || start != "" {
		state := either.OfNumber(typestate.New().ToNumber(0))
		if start != "" {
			state = startState(start)
		}
		overlay = &graph.GraphOverlay{
			VisitedStates: []string{runner.FromInitial, string(state.Tag())},
		}
		for _, line := range replay {
			state, _ = runner.Next(state, line)
			overlay.VisitedStates = append(overlay.VisitedStates, string(state.Tag()))
		}
		overlay.CurrentState = string(state.Tag())
	}

	_, err := fmt.Fprint(out, graph.GenerateMermaid(runner.Edges, overlay))
	return err
}
