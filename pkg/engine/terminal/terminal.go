// Package terminal measures the player's terminal.
package terminal

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// MinWidth is the narrowest width Width reports
	MinWidth = 20
)

type fder interface {
	Fd() uintptr
}

// Size returns the size of the terminal behind w. Writers that are not a
// terminal, such as a raw-mode line editor, are measured through stdout.
// Falls back to defaults if the size cannot be determined.
func Size(w io.Writer) (width, height int) {
	fd := int(os.Stdout.Fd())
	if f, ok := w.(fder); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Width returns the usable width of the terminal behind w
func Width(w io.Writer) int {
	width, _ := Size(w)
	return max(width, MinWidth)
}

// DisplayWidth returns the widest line of text in columns, ignoring colour codes
func DisplayWidth(text string) int {
	widest := 0
	for _, line := range strings.Split(color.ClearCode(text), "\n") {
		widest = max(widest, utf8.RuneCountInString(line))
	}
	return widest
}

// Fits reports whether every line of text fits in width columns
func Fits(text string, width int) bool {
	return DisplayWidth(text) <= width
}
