package main

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// main builds the root command and runs it. Errors are printed by main
// rather than cobra so they can be colored.
func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		errColor := color.New(color.FgRed, color.Bold)
		if !isTerminal(os.Stderr) {
			errColor.DisableColor()
		}
		errColor.Fprint(os.Stderr, "error: ")
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
