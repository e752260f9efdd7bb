package setup

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/entities"
	"backrooms/pkg/game/state"
)

// LightPlanner decides where ceiling lights hang
type LightPlanner struct {
	BrightRoomArea   int // Rooms at least this large get a bright light
	MainCorridorMin  int // Main corridors at least this long get lights along them
	CorridorSpacing  int // Cells between corridor lights
	ScatterCount     int // Dim lights tried over remaining open space
	ScatterAttempts  int // Random cells tried per scattered light
	DeadFixtureOneIn int // A dim light is inactive with probability 1/DeadFixtureOneIn
}

// DefaultLightPlanner returns the standard light placement rules
func DefaultLightPlanner() LightPlanner {
	return LightPlanner{
		BrightRoomArea:   48,
		MainCorridorMin:  16,
		CorridorSpacing:  8,
		ScatterCount:     12,
		ScatterAttempts:  20,
		DeadFixtureOneIn: 5,
	}
}

// Place adds lights to the layout in priority order: large rooms, main
// corridors, then dim scatter. Lights only hang over Empty cells, at most one
// per cell, and placement stops once the light capacity is reached.
// Returns the number of lights added.
func (p LightPlanner) Place(l *state.Layout, rng *rand.Rand) int {
	used := mapset.New[world.Point]()
	added := 0

	add := func(cell world.Point, tier entities.LightTier) bool {
		if used.Has(cell) || l.Grid.Get(cell.X, cell.Z) != world.Empty {
			return false
		}
		light := entities.NewLightPoint(cell, tier)
		if tier == entities.TierDim && p.DeadFixtureOneIn > 0 && rng.Intn(p.DeadFixtureOneIn) == 0 {
			light.Active = false
		}
		if !l.AddLight(light) {
			return false
		}
		used.Put(cell)
		added++
		return true
	}

	for _, room := range l.Rooms {
		if l.LightsFull() {
			break
		}
		if room.Area() < p.BrightRoomArea {
			continue
		}
		if cell, ok := nearestEmpty(l.Grid, room); ok {
			add(cell, entities.TierBright)
		}
	}

	for _, c := range l.Corridors {
		if l.LightsFull() {
			break
		}
		if !c.IsMain || c.Length() < p.MainCorridorMin {
			continue
		}
		line := c.Centerline()
		for i := p.CorridorSpacing / 2; i < len(line) && !l.LightsFull(); i += max(p.CorridorSpacing, 1) {
			add(line[i], entities.TierNormal)
		}
	}

	if len(l.Rooms) == 0 && !l.LightsFull() {
		add(l.Spawn, entities.TierNormal)
	}

	for i := 0; i < p.ScatterCount && !l.LightsFull(); i++ {
		cell, ok := l.RandomWalkable(rng, p.ScatterAttempts)
		if !ok || !l.Grid.IsInterior(cell.X, cell.Z) {
			continue
		}
		add(cell, entities.TierDim)
	}

	if l.LightsFull() {
		l.AddMessage(fmt.Sprintf("Light capacity of %d reached, stopped early", l.Capacity.Lights))
	}
	return added
}

// nearestEmpty returns the Empty cell of the room closest to its center.
// Ties go to the first cell in row-major order.
func nearestEmpty(grid *world.Grid, room entities.Room) (world.Point, bool) {
	center := room.Center()
	best := world.Point{}
	bestDist := -1
	for z := room.Z; z < room.Z+room.Height; z++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if grid.Get(x, z) != world.Empty {
				continue
			}
			p := world.Point{X: x, Z: z}
			if d := p.Manhattan(center); bestDist < 0 || d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	return best, bestDist >= 0
}

// Coverage returns the number of cells lit by a light: cells within its range
// that have line of sight to the fixture. Inactive lights cover nothing.
func Coverage(grid *world.Grid, light entities.LightPoint) int {
	if !light.Active {
		return 0
	}
	return len(world.VisibleCells(grid, light.Cell(), int(light.Range)))
}
