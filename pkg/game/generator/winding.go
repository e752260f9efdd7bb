package generator

import (
	"math/rand"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/state"
)

// Constants for winding corridor generation
const (
	windingMinSteps = 200
	windingMaxSteps = 300
	windingMaxWiden = 2 // Lateral cells carved when a step is widened
)

// WindingCorridorsPattern carves a single meandering random walk from the grid center
type WindingCorridorsPattern struct{}

// Name returns the name of this pattern
func (p *WindingCorridorsPattern) Name() string {
	return "Winding Corridors"
}

// Carve walks 200-300 steps, choosing a fresh direction each step. Half of the
// steps also open one or two cells to the side of the walk.
func (p *WindingCorridorsPattern) Carve(l *state.Layout, rng *rand.Rand) {
	grid := l.Grid
	pos := grid.ClampInterior(grid.Center())
	carveInterior(grid, pos.X, pos.Z)

	steps := windingMinSteps + rng.Intn(windingMaxSteps-windingMinSteps+1)
	for i := 0; i < steps; i++ {
		dir := world.Direction(rng.Intn(4))
		pos = grid.ClampInterior(pos.Step(dir))
		carveInterior(grid, pos.X, pos.Z)

		if rng.Intn(2) == 0 {
			left, right := dir.Perpendicular()
			lateral := left
			if rng.Intn(2) == 0 {
				lateral = right
			}
			q := pos
			for n := 1 + rng.Intn(windingMaxWiden); n > 0; n-- {
				q = q.Step(lateral)
				carveInterior(grid, q.X, q.Z)
			}
		}
	}
}
