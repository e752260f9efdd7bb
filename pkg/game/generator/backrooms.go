package generator

import (
	"fmt"
	"math/rand"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/entities"
	"backrooms/pkg/game/state"
)

// Constants for dense backrooms generation
const (
	backroomsOpenOneIn   = 3  // Interior cell opened with probability 1/3
	backroomsColumnOneIn = 25 // Column attempted at a cell with probability 1/25
	backroomsColumnMax   = 3  // Largest column side
)

// Square column footprints by side length
var backroomsColumnSizes = [backroomsColumnMax]entities.ColumnSize{
	entities.Column1x1,
	entities.Column2x2,
	entities.Column3x3,
}

// BackroomsPattern opens roughly a third of the interior at random and then
// scatters small square columns through the open space.
type BackroomsPattern struct{}

// Name returns the name of this pattern
func (p *BackroomsPattern) Name() string {
	return "Backrooms"
}

// Carve opens cells, then drops columns of 1x1 to 3x3 onto open cells that are
// not protected. Walls inside a column footprint stay as they are. A column is
// recorded only if it walls at least one cell; stamping stops once the column
// capacity is used up.
func (p *BackroomsPattern) Carve(l *state.Layout, rng *rand.Rand) {
	grid := l.Grid
	width, height := grid.Width(), grid.Height()

	for z := 1; z < height-1; z++ {
		for x := 1; x < width-1; x++ {
			if rng.Intn(backroomsOpenOneIn) == 0 {
				grid.Set(x, z, world.Empty)
			}
		}
	}

	for z := 1; z < height-1; z++ {
		for x := 1; x < width-1; x++ {
			if rng.Intn(backroomsColumnOneIn) != 0 {
				continue
			}
			size := backroomsColumnSizes[rng.Intn(backroomsColumnMax)]
			w, h := size.Dims()
			if !hasOpenCell(l, x, z, w, h) {
				continue
			}

			if !l.AddColumn(entities.Column{X: x, Z: z, Size: size, Type: entities.TypeForSize(size)}) {
				l.AddMessage(fmt.Sprintf("Column capacity of %d exceeded, stopped early", l.Capacity.Columns))
				return
			}
			grid.PlaceObstacle(x, z, w, h, l.Protected)
		}
	}
}

// hasOpenCell returns true if PlaceObstacle would wall at least one cell of the rectangle
func hasOpenCell(l *state.Layout, x, z, w, h int) bool {
	for cz := z; cz < z+h; cz++ {
		for cx := x; cx < x+w; cx++ {
			if l.Grid.Get(cx, cz) == world.Empty && !l.Protected.Has(cx, cz) {
				return true
			}
		}
	}
	return false
}
