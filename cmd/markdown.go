package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// printMarkdown prints md to stdout, rendered for the terminal when stdout is one.
func printMarkdown(md string) {
	fmt.Print(terminalMarkdown()(md))
}

// terminalMarkdown returns the function rendering markdown for stdout.
// It is the identity when stdout is not a terminal or -raw is set.
func terminalMarkdown() func(string) string {
	if *raw || !term.IsTerminal(int(os.Stdout.Fd())) {
		return plainMarkdown
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return plainMarkdown
	}
	return func(md string) string {
		out, err := r.Render(md)
		if err != nil {
			return md
		}
		return out
	}
}

func plainMarkdown(md string) string { return md }
