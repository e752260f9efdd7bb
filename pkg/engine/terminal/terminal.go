// Package terminal queries the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// GetHeight returns the current terminal height.
func GetHeight() int {
	_, height := GetSize()
	return height
}

// IsTerminal reports whether stdout is attached to a terminal. Colored output
// is only worth emitting when it is.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
