package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the typestate ASCII banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  _                       _        _", "#818cf8"},
		{" | |_ _   _ _ __   ___ ___| |_ __ _| |_ ___", "#a78bfa"},
		{" | __| | | | '_ \\ / _ \\ __| __/ _` | __/ _ \\", "#c084fc"},
		{" | |_| |_| | |_) |  __\\__ \\ || (_| | ||  __/", "#e879f9"},
		{"  \\__|\\__, | .__/ \\___|___/\\__\\__,_|\\__\\___|", "#f472b6"},
		{"      |___/|_|", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
