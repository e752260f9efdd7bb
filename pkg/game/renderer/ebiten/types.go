package ebiten

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"backrooms/pkg/game/renderer"
	"backrooms/pkg/game/state"
)

// RegenerateFunc builds a new layout for seed. The preview calls it when the
// user asks for another layout.
type RegenerateFunc func(seed int64) (*state.Layout, error)

// CellRenderOptions describes how a cell should be drawn on the map.
type CellRenderOptions struct {
	Icon            string
	Color           color.Color
	HasBackground   bool
	BackgroundColor color.Color // optional; used when HasBackground is true
}

// renderSnapshot holds the layout being shown and its per-cell index. Draw
// reads it under snapshotMutex so a regeneration never tears a frame.
type renderSnapshot struct {
	valid  bool
	layout *state.Layout
	scene  *renderer.Scene
}

// EbitenRenderer is the Ebiten-based layout preview
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	// Viewport dimensions (in tiles) - recalculated based on window and tile size
	viewportRows int
	viewportCols int

	// Camera offset from the spawn point, in cells
	panX int
	panZ int

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource // Monospace font for map tiles
	sansFontSource *text.GoTextFaceSource // Sans-serif font for UI text

	// Cached font faces (recreated when tile size changes)
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedMonoFace     *text.GoTextFace
	cachedSansFace     *text.GoTextFace

	// Layout being previewed
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// regenerate produces replacement layouts; nil disables R and N
	regenerate RegenerateFunc

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
