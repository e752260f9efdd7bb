package world

// Grid is a fixed-size W×H array of cell states stored row-major.
// Any coordinate outside [0,W)×[0,H) reads as Wall.
type Grid struct {
	cells  []CellState
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions, filled with Wall
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build (re)allocates the grid with the given dimensions, filled with Wall
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([]CellState, width*height)
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Area returns the number of cells in the grid
func (g *Grid) Area() int {
	return g.width * g.height
}

// Reset fills the entire grid with Wall
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Wall
	}
}

// InBounds checks if an x/z position is within grid bounds
func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && x < g.width && z >= 0 && z < g.height
}

// IsInterior checks if a position is inside the 1-cell border ring
func (g *Grid) IsInterior(x, z int) bool {
	return x >= 1 && x < g.width-1 && z >= 1 && z < g.height-1
}

// IsOnBorder checks if a position is on the outer ring of the grid
func (g *Grid) IsOnBorder(x, z int) bool {
	return g.InBounds(x, z) && !g.IsInterior(x, z)
}

// Get returns the state at the given position, or Wall if out of bounds
func (g *Grid) Get(x, z int) CellState {
	if !g.InBounds(x, z) {
		return Wall
	}
	return g.cells[z*g.width+x]
}

// Set sets the state at the given position. Returns false (and does nothing) if out of bounds.
func (g *Grid) Set(x, z int, s CellState) bool {
	if !g.InBounds(x, z) {
		return false
	}
	g.cells[z*g.width+x] = s
	return true
}

// IsWall returns true for Wall cells and for every out-of-bounds coordinate.
// Decoration cells are not walls.
func (g *Grid) IsWall(x, z int) bool {
	return g.Get(x, z) == Wall
}

// Center returns the grid midpoint
func (g *Grid) Center() Point {
	return Point{X: g.width / 2, Z: g.height / 2}
}

// ClampInterior moves p to the nearest interior position
func (g *Grid) ClampInterior(p Point) Point {
	p.X = max(1, min(p.X, g.width-2))
	p.Z = max(1, min(p.Z, g.height-2))
	return p
}

// FillRect sets every in-bounds cell of the w×h rectangle at (x, z) to s.
// Returns the number of cells written.
func (g *Grid) FillRect(x, z, w, h int, s CellState) int {
	n := 0
	for cz := z; cz < z+h; cz++ {
		for cx := x; cx < x+w; cx++ {
			if g.Set(cx, cz, s) {
				n++
			}
		}
	}
	return n
}

// PlaceObstacle turns the Empty cells of the w×h rectangle at (x, z) into Wall,
// skipping cells marked in skip (which may be nil). Existing walls and decorations
// are left untouched. Returns the number of cells turned into Wall.
func (g *Grid) PlaceObstacle(x, z, w, h int, skip *Mask) int {
	n := 0
	for cz := z; cz < z+h; cz++ {
		for cx := x; cx < x+w; cx++ {
			if g.Get(cx, cz) != Empty {
				continue
			}
			if skip != nil && skip.Has(cx, cz) {
				continue
			}
			g.cells[cz*g.width+cx] = Wall
			n++
		}
	}
	return n
}

// RectIs returns true if every cell of the w×h rectangle at (x, z) is in state s
func (g *Grid) RectIs(x, z, w, h int, s CellState) bool {
	for cz := z; cz < z+h; cz++ {
		for cx := x; cx < x+w; cx++ {
			if g.Get(cx, cz) != s {
				return false
			}
		}
	}
	return true
}

// ForEachCell iterates over all cells in the grid in row-major order
func (g *Grid) ForEachCell(fn func(x, z int, s CellState)) {
	for z := 0; z < g.height; z++ {
		for x := 0; x < g.width; x++ {
			fn(x, z, g.cells[z*g.width+x])
		}
	}
}

// Count returns the number of cells in state s
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// BorderOpenings returns every non-wall cell on the outer ring, walking the
// top row, bottom row, then the left and right columns.
func (g *Grid) BorderOpenings() []Point {
	var open []Point
	for x := 0; x < g.width; x++ {
		if !g.IsWall(x, 0) {
			open = append(open, Point{X: x, Z: 0})
		}
		if g.height > 1 && !g.IsWall(x, g.height-1) {
			open = append(open, Point{X: x, Z: g.height - 1})
		}
	}
	for z := 1; z < g.height-1; z++ {
		if !g.IsWall(0, z) {
			open = append(open, Point{X: 0, Z: z})
		}
		if g.width > 1 && !g.IsWall(g.width-1, z) {
			open = append(open, Point{X: g.width - 1, Z: z})
		}
	}
	return open
}

// Cells returns a row-major copy of the cell states
func (g *Grid) Cells() []CellState {
	out := make([]CellState, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{cells: g.Cells(), width: g.width, height: g.height}
}

// Equal reports whether two grids have the same dimensions and identical cells
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
