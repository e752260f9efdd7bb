// Package entities contains the structural records produced by level generation.
// These are plain data consumed by rendering and gameplay; they never mutate the grid themselves.
package entities

import (
	"backrooms/pkg/engine/world"
)

// Exit is the single border opening the player must reach
type Exit struct {
	Side   world.Direction // Border the exit sits on
	Offset int             // Position along that border (x for North/South, z for East/West)

	Cell  world.Point   // The border cell
	Inner world.Point   // Deepest notch cell on the exit axis, target for the path carver
	Notch []world.Point // Every cell carved by exit placement, border cell first
}

// Depth returns how many cells the notch reaches inward along the exit axis
func (e Exit) Depth() int {
	return e.Cell.Manhattan(e.Inner) + 1
}
