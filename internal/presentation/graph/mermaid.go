package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/typestate/pkg/runner"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a list of edges.
// The entry state is drawn as a ((Circle)), terminal states as [Rectangles].
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(edges []runner.Edge, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	seen := make(map[string]bool)
	declare := func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		opener, closer := "[", "]"
		if id == runner.FromInitial {
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(id), opener, id, closer))
	}
	for _, e := range edges {
		declare(e.From)
		declare(string(e.To))
	}

	for _, e := range edges {
		label := string(e.Kind)
		if e.Condition != "" {
			label = fmt.Sprintf("%s: %s", e.Condition, e.Kind)
		}
		// Arcs out of the entry state are the static transitions; the rest
		// only exist on the runtime loop.
		arrow := fmt.Sprintf("-. \"%s\" .->", label)
		if e.From == runner.FromInitial {
			arrow = fmt.Sprintf("-- \"%s\" -->", label)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(e.From), arrow, sanitizeMermaidID(string(e.To))))
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentState)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
