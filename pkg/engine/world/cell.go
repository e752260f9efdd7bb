// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// CellState classifies a single grid position
type CellState uint8

// Cell states
const (
	Wall       CellState = iota // Blocking, the default for every cell and for out-of-bounds
	Empty                       // Walkable floor
	Decoration                  // Walkable, cosmetic marker
)

// String returns the string representation of a cell state
func (s CellState) String() string {
	switch s {
	case Wall:
		return "Wall"
	case Empty:
		return "Empty"
	case Decoration:
		return "Decoration"
	default:
		return "Unknown"
	}
}

// IsWalkable returns true if a player can stand on a cell in this state
func (s CellState) IsWalkable() bool {
	return s == Empty || s == Decoration
}

// Point is an integer grid coordinate. X runs along the width (columns),
// Z along the height (rows).
type Point struct {
	X, Z int
}

// Step returns the point one cell away in the given direction
func (p Point) Step(dir Direction) Point {
	dx, dz := dir.Delta()
	return Point{X: p.X + dx, Z: p.Z + dz}
}

// Manhattan returns the Manhattan distance between two points
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Z-q.Z)
}

// Neighbors returns the four orthogonal neighbors in North, East, South, West order
func (p Point) Neighbors() [4]Point {
	return [4]Point{
		p.Step(North),
		p.Step(East),
		p.Step(South),
		p.Step(West),
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
