package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the agentdeck ASCII banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"                         _      _           _    ", "#818cf8"},
		{"   __ _  __ _  ___ _ __ | |_ __| | ___  ___| | __", "#a78bfa"},
		{"  / _` |/ _` |/ _ \\ '_ \\| __/ _` |/ _ \\/ __| |/ /", "#c084fc"},
		{" | (_| | (_| |  __/ | | | || (_| |  __/ (__|   < ", "#e879f9"},
		{"  \\__,_|\\__, |\\___|_| |_|\\__\\__,_|\\___|\\___|_|\\_\\", "#f472b6"},
		{"        |___/                                    ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
