package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"backrooms/pkg/game/renderer"
	"backrooms/pkg/game/state"
)

// New creates a preview renderer. regenerate may be nil, in which case the
// window only shows the layout it is given.
func New(regenerate RegenerateFunc) *EbitenRenderer {
	e := &EbitenRenderer{
		windowWidth:  1280,
		windowHeight: 860,
		tileSize:     defaultTileSize,
		regenerate:   regenerate,
	}
	e.recalculateViewport()
	return e
}

// Init initializes the window settings
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Backrooms - Layout Preview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// StyleText returns text unchanged; the preview colors glyphs per cell instead
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// GetViewportSize returns the current viewport dimensions
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	return e.viewportRows, e.viewportCols
}

// SetLayout swaps the previewed layout and recenters the camera
func (e *EbitenRenderer) SetLayout(l *state.Layout) {
	e.snapshotMutex.Lock()
	e.snapshot = renderSnapshot{
		valid:  l != nil && l.Grid != nil,
		layout: l,
	}
	if e.snapshot.valid {
		e.snapshot.scene = renderer.NewScene(l)
	}
	e.snapshotMutex.Unlock()

	e.panX, e.panZ = 0, 0
}

// RenderLayout opens the preview window on l and blocks until it is closed
func (e *EbitenRenderer) RenderLayout(l *state.Layout) error {
	if l == nil || l.Grid == nil {
		return fmt.Errorf("no layout to render")
	}
	if err := e.loadFonts(); err != nil {
		return err
	}
	e.SetLayout(l)

	// RunGame returns nil when Update returns ebiten.Termination
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("preview window: %w", err)
	}
	return nil
}
