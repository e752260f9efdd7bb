package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawColoredChar draws a character centered in the tile at (x, y) using the mono font
func (e *EbitenRenderer) drawColoredChar(screen *ebiten.Image, char string, x, y int, col color.Color) {
	face := e.getMonoFontFace()

	// text/v2 Draw uses top-left as the origin point
	w, h := text.Measure(char, face, 0)
	offsetX := (float64(e.tileSize) - w) / 2
	offsetY := (float64(e.tileSize) - h) / 2

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+offsetX, float64(y)+offsetY)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, char, face, op)
}

// drawColoredText draws UI text with its top-left corner at (x, y)
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, e.getSansFontFace(), op)
}
