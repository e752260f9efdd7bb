package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"backrooms/pkg/game/theme"
)

// Draw renders the preview to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid || e.monoFontSource == nil || e.sansFontSource == nil {
		// Can't draw without a layout or fonts
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	headerHeight := e.headerHeight()

	mapAreaWidth := e.viewportCols * e.tileSize
	mapAreaHeight := e.viewportRows * e.tileSize
	mapX := (screenWidth - mapAreaWidth) / 2
	mapY := headerHeight + mapMargin

	e.drawHeader(screen, &snap)

	vector.DrawFilledRect(screen, float32(mapX-mapMargin/2), float32(mapY-mapMargin/2),
		float32(mapAreaWidth+mapMargin), float32(mapAreaHeight+mapMargin),
		colorMapBackground, false)

	startCol, startRow := e.viewOrigin(&snap)
	e.drawLightHalos(screen, &snap, mapX, mapY, startCol, startRow)
	e.drawMap(screen, &snap, mapX, mapY, startCol, startRow)
	e.drawMessages(screen, &snap, screenWidth, screenHeight)
}

// headerHeight is the pixel height reserved above the map
func (e *EbitenRenderer) headerHeight() int {
	return int(e.getUIFontSize())*2 + 24
}

// viewOrigin returns the top-left cell of the visible window: centered on
// the spawn point, shifted by the pan offset and clamped to the grid
func (e *EbitenRenderer) viewOrigin(snap *renderSnapshot) (x0, z0 int) {
	grid := snap.layout.Grid
	x0, z0 = snap.scene.Viewport(e.viewportRows, e.viewportCols)
	x0 = clampInt(x0+e.panX, 0, max(grid.Width()-e.viewportCols, 0))
	z0 = clampInt(z0+e.panZ, 0, max(grid.Height()-e.viewportRows, 0))
	return x0, z0
}

// drawHeader draws the seed, generation summary and key help
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap *renderSnapshot) {
	l := snap.layout
	headline := fmt.Sprintf("%s #%d  %dx%d  %s / %s",
		theme.StatusGenerated(), l.Seed, l.Grid.Width(), l.Grid.Height(),
		theme.ModeLabel(l.Mode), theme.PatternLabel(l.Pattern))
	detail := fmt.Sprintf("%s %d  rooms %d  corridors %d  columns %d  lights %d  path %d    %s",
		theme.SideLabel(l.Exit.Side), l.Exit.Offset,
		len(l.Rooms), len(l.Corridors), len(l.Columns), len(l.Lights), l.PathLength,
		theme.PreviewHelp())

	lineHeight := int(e.getUIFontSize()) + 4
	e.drawColoredText(screen, headline, mapMargin, 8, colorText)
	e.drawColoredText(screen, detail, mapMargin, 8+lineHeight, colorSubtle)
}

// drawMap draws every visible cell
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, snap *renderSnapshot, mapX, mapY, startCol, startRow int) {
	grid := snap.layout.Grid
	for vRow := 0; vRow < e.viewportRows; vRow++ {
		z := startRow + vRow
		if z >= grid.Height() {
			break
		}
		for vCol := 0; vCol < e.viewportCols; vCol++ {
			x := startCol + vCol
			if x >= grid.Width() {
				break
			}
			opts := getCellRenderOptions(snap.scene, x, z)
			e.drawTileWithBg(screen, opts, mapX+vCol*e.tileSize, mapY+vRow*e.tileSize)
		}
	}
}

// drawTileWithBg draws one cell. Small tiles become solid blocks because
// glyphs are unreadable at that size.
func (e *EbitenRenderer) drawTileWithBg(screen *ebiten.Image, opts CellRenderOptions, x, y int) {
	if opts.Icon == IconVoid || opts.Icon == "" {
		return
	}

	if e.tileSize < glyphTileSize {
		fill := opts.Color
		if opts.HasBackground && opts.BackgroundColor != nil {
			fill = opts.BackgroundColor
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(e.tileSize), float32(e.tileSize), fill, false)
		return
	}

	if opts.HasBackground {
		margin := float32(1)
		bgCol := color.Color(colorWallBg)
		if opts.BackgroundColor != nil {
			bgCol = opts.BackgroundColor
		}
		vector.DrawFilledRect(screen, float32(x)+margin, float32(y)+margin,
			float32(e.tileSize)-margin*2, float32(e.tileSize)-margin*2,
			bgCol, false)
	}

	e.drawColoredChar(screen, opts.Icon, x, y, opts.Color)
}

// drawLightHalos draws a translucent disc per active light sized by its range
func (e *EbitenRenderer) drawLightHalos(screen *ebiten.Image, snap *renderSnapshot, mapX, mapY, startCol, startRow int) {
	for _, light := range snap.layout.Lights {
		if !light.Active {
			continue
		}
		cx := float32(mapX) + float32(light.X-float64(startCol))*float32(e.tileSize)
		cy := float32(mapY) + float32(light.Z-float64(startRow))*float32(e.tileSize)
		r := float32(light.Range) * float32(e.tileSize)

		// Skip halos that cannot reach the visible window
		if cx+r < float32(mapX) || cy+r < float32(mapY) ||
			cx-r > float32(mapX+e.viewportCols*e.tileSize) || cy-r > float32(mapY+e.viewportRows*e.tileSize) {
			continue
		}

		a := haloAlpha[0]
		if int(light.Tier) < len(haloAlpha) {
			a = haloAlpha[light.Tier]
		}
		vector.DrawFilledCircle(screen, cx, cy, r, color.RGBA{a, a, uint8(int(a) * 9 / 10), a}, true)
	}
}

// drawMessages draws the latest generation messages as a bottom-aligned panel
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderSnapshot, screenWidth, screenHeight int) {
	messages := snap.layout.Messages
	if len(messages) == 0 {
		return
	}
	if len(messages) > maxMessage {
		messages = messages[len(messages)-maxMessage:]
	}

	lineHeight := int(e.getUIFontSize()) + 4
	panelHeight := lineHeight*len(messages) + 12
	panelY := screenHeight - panelHeight - 8
	vector.DrawFilledRect(screen, float32(mapMargin), float32(panelY),
		float32(screenWidth-mapMargin*2), float32(panelHeight), colorPanel, false)

	for i, msg := range messages {
		e.drawColoredText(screen, msg, mapMargin+8, panelY+6+i*lineHeight, colorSubtle)
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
