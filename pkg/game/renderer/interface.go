package renderer

import (
	"backrooms/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleHeading
	StyleSubtle
	StyleWall
	StyleFloor
	StyleRoomFloor
	StyleDecoration
	StyleColumn
	StyleSpawn
	StyleExit
	StyleLight
	StyleDeadLight
)

// Renderer defines the interface for layout rendering backends.
// Implementations include the terminal (TUI) and the Ebiten preview window.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// RenderLayout presents a finished layout. The TUI prints one frame and
	// returns; the preview window blocks until it is closed.
	RenderLayout(l *state.Layout) error

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// RenderLayout presents a layout with the current renderer
func RenderLayout(l *state.Layout) error {
	if Current != nil {
		return Current.RenderLayout(l)
	}
	return nil
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 41, 81 // sensible defaults
}
