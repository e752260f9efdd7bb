package generator

import (
	"math/rand"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/entities"
)

// Exit placement constants
const (
	AnySide   world.Direction = -1 // Let PlaceExit choose the side
	AnyOffset                 = -1 // Let PlaceExit choose the offset

	exitMinDepth   = 2 // Border cell plus one interior cell
	exitMaxDepth   = 3 // Border cell plus two interior cells
	exitWidenOneIn = 4 // Interior notch cells are NOT widened with probability 1/exitWidenOneIn
)

// ExitRequest pins the exit side and/or offset. Zero-value fields are valid
// choices, so use RandomExit for a fully random request.
type ExitRequest struct {
	Side   world.Direction
	Offset int
}

// RandomExit returns a request that leaves both side and offset to the rng
func RandomExit() ExitRequest {
	return ExitRequest{Side: AnySide, Offset: AnyOffset}
}

// sideLength returns the number of cells along the given border
func sideLength(grid *world.Grid, side world.Direction) int {
	if side == world.North || side == world.South {
		return grid.Width()
	}
	return grid.Height()
}

// borderCell returns the border cell at offset along side
func borderCell(grid *world.Grid, side world.Direction, offset int) world.Point {
	switch side {
	case world.North:
		return world.Point{X: offset, Z: 0}
	case world.South:
		return world.Point{X: offset, Z: grid.Height() - 1}
	case world.East:
		return world.Point{X: grid.Width() - 1, Z: offset}
	default:
		return world.Point{X: 0, Z: offset}
	}
}

// PlaceExit opens exactly one border cell and carves a notch of depth 2 or 3
// straight inward from it. Interior notch cells are usually widened by one
// lateral cell; the border cell never is, so the grid keeps a single opening.
// Offsets are clamped to [2, len-3] which keeps the exit off the corners.
func PlaceExit(grid *world.Grid, rng *rand.Rand, req ExitRequest) entities.Exit {
	side := req.Side
	if !side.IsValid() {
		side = world.Direction(rng.Intn(4))
	}

	length := sideLength(grid, side)
	lo, hi := 2, length-3
	offset := req.Offset
	if offset < 0 {
		offset = lo + rng.Intn(hi-lo+1)
	}
	offset = max(lo, min(offset, hi))

	depth := exitMinDepth + rng.Intn(exitMaxDepth-exitMinDepth+1)
	inward := side.Opposite()
	left, right := side.Perpendicular()

	exit := entities.Exit{
		Side:   side,
		Offset: offset,
		Cell:   borderCell(grid, side, offset),
	}

	p := exit.Cell
	grid.Set(p.X, p.Z, world.Empty)
	exit.Notch = append(exit.Notch, p)
	for i := 1; i < depth; i++ {
		p = p.Step(inward)
		grid.Set(p.X, p.Z, world.Empty)
		exit.Notch = append(exit.Notch, p)

		if rng.Intn(exitWidenOneIn) != 0 {
			lateral := left
			if rng.Intn(2) == 0 {
				lateral = right
			}
			q := p.Step(lateral)
			if grid.IsInterior(q.X, q.Z) {
				grid.Set(q.X, q.Z, world.Empty)
				exit.Notch = append(exit.Notch, q)
			}
		}
	}
	exit.Inner = p

	return exit
}
