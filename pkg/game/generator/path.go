package generator

import (
	"math/rand"

	"backrooms/pkg/engine/world"
)

// PathCarver walks a jittered route between two interior points and carves it open.
// Running it again over the same endpoints only re-opens cells, so it doubles as the
// connectivity repair step.
type PathCarver struct {
	PerturbOneIn int // A step goes in a random direction with probability 1/PerturbOneIn
	Tolerance    int // The walk stops once within this Manhattan distance of the target
	MaxSteps     int // Hard bound on walk steps before the straight join
}

// DefaultPathCarver returns the standard carver for a grid of the given size
func DefaultPathCarver(grid *world.Grid) PathCarver {
	return PathCarver{
		PerturbOneIn: 6,
		Tolerance:    2,
		MaxSteps:     2 * (grid.Width() + grid.Height()),
	}
}

// Carve opens a route from `from` to `to`, marking every carved cell in protect
// (which may be nil). Positions are clamped to the interior so the border is
// never touched. Returns the carved cells in walk order.
func (c PathCarver) Carve(grid *world.Grid, from, to world.Point, rng *rand.Rand, protect *world.Mask) []world.Point {
	pos := grid.ClampInterior(from)
	target := grid.ClampInterior(to)

	route := make([]world.Point, 0, pos.Manhattan(target)*2)
	open := func(p world.Point) {
		grid.Set(p.X, p.Z, world.Empty)
		if protect != nil {
			protect.MarkPoint(p)
		}
		route = append(route, p)
	}

	open(pos)
	for steps := 0; steps < c.MaxSteps && pos.Manhattan(target) > c.Tolerance; steps++ {
		var dir world.Direction
		if c.PerturbOneIn > 0 && rng.Intn(c.PerturbOneIn) == 0 {
			dir = world.Direction(rng.Intn(4))
		} else {
			dir = towards(pos, target)
		}
		next := grid.ClampInterior(pos.Step(dir))
		if next == pos {
			continue
		}
		pos = next
		open(pos)
	}

	// Straight join: horizontal leg, then vertical leg.
	for pos.X != target.X {
		if pos.X < target.X {
			pos.X++
		} else {
			pos.X--
		}
		open(pos)
	}
	for pos.Z != target.Z {
		if pos.Z < target.Z {
			pos.Z++
		} else {
			pos.Z--
		}
		open(pos)
	}

	return route
}

// towards returns the unit direction along the axis with the larger remaining distance
func towards(pos, target world.Point) world.Direction {
	dx := target.X - pos.X
	dz := target.Z - pos.Z
	if abs(dx) >= abs(dz) {
		if dx > 0 {
			return world.East
		}
		return world.West
	}
	if dz > 0 {
		return world.South
	}
	return world.North
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
