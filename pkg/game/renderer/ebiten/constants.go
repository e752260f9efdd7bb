// Package ebiten provides an Ebiten-based preview window for generated layouts.
package ebiten

import "image/color"

// Color palette for the preview - fluorescent yellows over dark carpet
var (
	colorBackground    = color.RGBA{24, 22, 12, 255}    // Near-black brown
	colorMapBackground = color.RGBA{14, 13, 8, 255}     // Darker for map area
	colorWall          = color.RGBA{120, 110, 60, 255}  // Muted wallpaper for wall glyphs
	colorWallBg        = color.RGBA{62, 56, 28, 255}    // Wall block background
	colorFloor         = color.RGBA{201, 185, 104, 255} // Carpet yellow
	colorRoomFloor     = color.RGBA{226, 210, 130, 255} // Lighter inside rooms
	colorDecoration    = color.RGBA{150, 110, 60, 255}  // Stained brown
	colorColumn        = color.RGBA{230, 225, 200, 255} // Off-white concrete
	colorColumnBg      = color.RGBA{90, 84, 60, 255}    // Column block background
	colorSpawn         = color.RGBA{0, 255, 0, 255}     // Bright green
	colorExit          = color.RGBA{255, 90, 90, 255}   // Bright red
	colorLight         = color.RGBA{255, 255, 230, 255} // Fluorescent white
	colorDeadLight     = color.RGBA{110, 105, 90, 255}  // Burnt out
	colorSubtle        = color.RGBA{168, 159, 106, 255} // Header detail text
	colorText          = color.RGBA{240, 228, 170, 255} // Header headline
	colorPanel         = color.RGBA{30, 28, 16, 220}    // Semi-transparent message panel

	// Light halo alpha per tier (dim, normal, bright)
	haloAlpha = [...]uint8{28, 44, 64}
)

// Icon constants - Unicode characters for proper font rendering
const (
	IconWall       = "▒"
	IconFloor      = "·"
	IconDecoration = "♣"
	IconColumn     = "■"
	IconSpawn      = "@"
	IconExit       = "△"
	IconLight      = "✦"
	IconDeadLight  = "✧"
	IconVoid       = " "
)

// Tile size constraints
const (
	defaultTileSize = 16
	minTileSize     = 4
	maxTileSize     = 48
	tileSizeStep    = 4
	baseFontSize    = 16.0 // Font size at the default tile size
	glyphTileSize   = 10   // Below this size tiles are drawn as plain blocks
)

// Panning
const (
	panStep    = 4  // Cells moved per pan key press
	mapMargin  = 20 // Pixels around the map area
	maxMessage = 4  // Messages shown in the bottom panel
)
