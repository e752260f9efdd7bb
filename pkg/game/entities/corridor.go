package entities

import (
	"backrooms/pkg/engine/world"
)

// Corridor joins two points with an L-shaped passage: a horizontal leg along z = Z1
// followed by a vertical leg along x = X2.
type Corridor struct {
	X1, Z1 int
	X2, Z2 int
	Width  int
	IsMain bool // Primary thoroughfare, gets lights along its length
}

// Length returns the Manhattan length of the corridor centerline
func (c Corridor) Length() int {
	return abs(c.X2-c.X1) + abs(c.Z2-c.Z1)
}

// Centerline returns the cells of the corridor centerline from (X1,Z1) to (X2,Z2).
// Consecutive cells are always orthogonally adjacent.
func (c Corridor) Centerline() []world.Point {
	points := make([]world.Point, 0, c.Length()+1)

	stepX := 1
	if c.X2 < c.X1 {
		stepX = -1
	}
	for x := c.X1; x != c.X2; x += stepX {
		points = append(points, world.Point{X: x, Z: c.Z1})
	}

	stepZ := 1
	if c.Z2 < c.Z1 {
		stepZ = -1
	}
	for z := c.Z1; z != c.Z2; z += stepZ {
		points = append(points, world.Point{X: c.X2, Z: z})
	}

	return append(points, world.Point{X: c.X2, Z: c.Z2})
}

// Footprint returns every cell covered by the corridor once its centerline is
// expanded to Width. Cells may repeat at the corner.
func (c Corridor) Footprint() []world.Point {
	w := max(c.Width, 1)
	lo := -(w - 1) / 2
	hi := lo + w - 1

	var cells []world.Point
	for _, p := range c.Centerline() {
		for dz := lo; dz <= hi; dz++ {
			for dx := lo; dx <= hi; dx++ {
				cells = append(cells, world.Point{X: p.X + dx, Z: p.Z + dz})
			}
		}
	}
	return cells
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
