// Package terminal answers layout questions about the terminal standard
// output is attached to.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is assumed when standard output is not a terminal
const DefaultWidth = 80

func stdout() int {
	return int(os.Stdout.Fd())
}

// Width returns the column count of standard output, or DefaultWidth when
// it cannot be determined
func Width() int {
	w, _, err := term.GetSize(stdout())
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// IsTerminal reports whether standard output is a terminal
func IsTerminal() bool {
	return term.IsTerminal(stdout())
}

// Margin returns the left padding that centers a line of lineWidth columns
// in a terminal of width columns. Lines that do not fit get no padding.
func Margin(width, lineWidth int) int {
	if width <= lineWidth {
		return 0
	}
	return (width - lineWidth) / 2
}
