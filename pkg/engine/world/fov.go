package world

// VisibleCells returns every walkable cell within radius (Chebyshev distance) of
// center that has an unobstructed Bresenham line of sight from center.
// Walls block sight. The center itself is included when it is walkable.
func VisibleCells(grid *Grid, center Point, radius int) []Point {
	if grid == nil || grid.IsWall(center.X, center.Z) {
		return nil
	}

	var visible []Point
	for dz := -radius; dz <= radius; dz++ {
		for dx := -radius; dx <= radius; dx++ {
			x := center.X + dx
			z := center.Z + dz
			if grid.IsWall(x, z) {
				continue
			}
			if HasLineOfSight(grid, center.X, center.Z, x, z) {
				visible = append(visible, Point{X: x, Z: z})
			}
		}
	}
	return visible
}

// HasLineOfSight returns true if there's a clear path from (x0,z0) to (x1,z1).
// Uses Bresenham's line algorithm; sight is blocked by any wall strictly
// between the two endpoints or at the target.
func HasLineOfSight(grid *Grid, x0, z0, x1, z1 int) bool {
	dx := x1 - x0
	dz := z1 - z0

	if dx == 0 && dz == 0 {
		return true
	}

	absDx := abs(dx)
	absDz := abs(dz)

	stepX := sign(dx)
	stepZ := sign(dz)

	x, z := x0, z0

	if absDx >= absDz {
		// Step along x
		err := 2*absDz - absDx
		for x != x1 {
			x += stepX
			if err > 0 {
				z += stepZ
				err -= 2 * absDx
			}
			err += 2 * absDz

			if grid.IsWall(x, z) {
				return false
			}
		}
	} else {
		// Step along z
		err := 2*absDx - absDz
		for z != z1 {
			z += stepZ
			if err > 0 {
				x += stepX
				err -= 2 * absDz
			}
			err += 2 * absDx

			if grid.IsWall(x, z) {
				return false
			}
		}
	}

	return true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
