package ebiten

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "backrooms/pkg/engine/input"
)

// keyCodes maps the Ebiten keys the preview listens to onto input codes
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:        "arrow_up",
	ebiten.KeyArrowDown:      "arrow_down",
	ebiten.KeyArrowLeft:      "arrow_left",
	ebiten.KeyArrowRight:     "arrow_right",
	ebiten.KeyH:              "h",
	ebiten.KeyJ:              "j",
	ebiten.KeyK:              "k",
	ebiten.KeyL:              "l",
	ebiten.KeyC:              "c",
	ebiten.KeyG:              "g",
	ebiten.KeyN:              "n",
	ebiten.KeyR:              "r",
	ebiten.KeyQ:              "q",
	ebiten.KeyEscape:         "escape",
	ebiten.KeyEqual:          "=",
	ebiten.KeyMinus:          "-",
	ebiten.Key0:              "0",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
	ebiten.KeyNumpad0:        "numpad_0",
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Preview window opened (%dx%d)", w, h)
	}

	for key, code := range keyCodes {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if intent := engineinput.IntentFor(engineinput.DeviceKeyboard, code); e.apply(intent) {
			return ebiten.Termination
		}
	}
	return nil
}

// apply performs an intent. Returns true when the window should close.
func (e *EbitenRenderer) apply(intent engineinput.Intent) bool {
	switch intent.Action {
	case engineinput.ActionQuit:
		return true
	case engineinput.ActionPanNorth:
		e.panZ -= panStep
	case engineinput.ActionPanSouth:
		e.panZ += panStep
	case engineinput.ActionPanWest:
		e.panX -= panStep
	case engineinput.ActionPanEast:
		e.panX += panStep
	case engineinput.ActionRecenter:
		e.panX, e.panZ = 0, 0
	case engineinput.ActionZoomIn:
		e.increaseTileSize()
	case engineinput.ActionZoomOut:
		e.decreaseTileSize()
	case engineinput.ActionZoomReset:
		e.resetTileSize()
	case engineinput.ActionRegenerate:
		e.regenerateWith(rand.Int63())
	case engineinput.ActionNextSeed:
		e.snapshotMutex.RLock()
		valid := e.snapshot.valid
		var seed int64
		if valid {
			seed = e.snapshot.layout.Seed
		}
		e.snapshotMutex.RUnlock()
		if valid {
			e.regenerateWith(seed + 1)
		}
	}
	e.clampPan()
	return false
}

// regenerateWith replaces the previewed layout with one built from seed
func (e *EbitenRenderer) regenerateWith(seed int64) {
	if e.regenerate == nil {
		return
	}
	l, err := e.regenerate(seed)
	if err != nil {
		log.Printf("Regenerate seed %d: %v", seed, err)
		return
	}
	e.SetLayout(l)
	log.Printf("Previewing seed %d", seed)
}

// clampPan keeps the pan offset within what the grid can show
func (e *EbitenRenderer) clampPan() {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	if !e.snapshot.valid {
		return
	}
	grid := e.snapshot.layout.Grid
	e.panX = clampInt(e.panX, -grid.Width(), grid.Width())
	e.panZ = clampInt(e.panZ, -grid.Height(), grid.Height())
}

// increaseTileSize increases the tile/font size
func (e *EbitenRenderer) increaseTileSize() {
	if e.tileSize < maxTileSize {
		e.tileSize += tileSizeStep
		e.recalculateViewport()
	}
}

// decreaseTileSize decreases the tile/font size
func (e *EbitenRenderer) decreaseTileSize() {
	if e.tileSize > minTileSize {
		e.tileSize -= tileSizeStep
		e.recalculateViewport()
	}
}

// resetTileSize resets tile size to default
func (e *EbitenRenderer) resetTileSize() {
	e.tileSize = defaultTileSize
	e.recalculateViewport()
}

// recalculateViewport recalculates viewport dimensions based on current window and tile size
func (e *EbitenRenderer) recalculateViewport() {
	e.invalidateFontCache()

	w, h := e.windowWidth, e.windowHeight
	availableHeight := h - e.headerHeight() - mapMargin*2
	availableWidth := w - mapMargin*2

	e.viewportCols = max(availableWidth/e.tileSize, 15)
	e.viewportRows = max(availableHeight/e.tileSize, 11)

	// Keep odd numbers for centering
	if e.viewportCols%2 == 0 {
		e.viewportCols--
	}
	if e.viewportRows%2 == 0 {
		e.viewportRows--
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.recalculateViewport()
	}
	return outsideWidth, outsideHeight
}
