package world

import "github.com/zyedidia/generic/mapset"

// Mask is a set of cells bounded by the dimensions of a Grid.
// Out-of-bounds reads return false and out-of-bounds writes are ignored.
type Mask struct {
	cells  mapset.Set[Point]
	width  int
	height int
}

// NewMask creates an empty mask of the given size
func NewMask(width, height int) *Mask {
	if width <= 0 || height <= 0 {
		panic("Mask dimensions must be positive")
	}
	return &Mask{cells: mapset.New[Point](), width: width, height: height}
}

// NewMaskFor creates an empty mask sized to the grid
func NewMaskFor(g *Grid) *Mask {
	return NewMask(g.Width(), g.Height())
}

func (m *Mask) inBounds(x, z int) bool {
	return x >= 0 && x < m.width && z >= 0 && z < m.height
}

// Mark adds (x, z) to the mask
func (m *Mask) Mark(x, z int) {
	if !m.inBounds(x, z) {
		return
	}
	m.cells.Put(Point{X: x, Z: z})
}

// MarkPoint adds p to the mask
func (m *Mask) MarkPoint(p Point) {
	m.Mark(p.X, p.Z)
}

// MarkRect adds every cell of the w×h rectangle at (x, z)
func (m *Mask) MarkRect(x, z, w, h int) {
	for cz := z; cz < z+h; cz++ {
		for cx := x; cx < x+w; cx++ {
			m.Mark(cx, cz)
		}
	}
}

// Has returns true if (x, z) is in the mask
func (m *Mask) Has(x, z int) bool {
	if !m.inBounds(x, z) {
		return false
	}
	return m.cells.Has(Point{X: x, Z: z})
}

// HasPoint returns true if p is in the mask
func (m *Mask) HasPoint(p Point) bool {
	return m.Has(p.X, p.Z)
}

// Count returns the number of marked cells
func (m *Mask) Count() int {
	return m.cells.Size()
}

// Each calls fn for every marked cell, in no particular order
func (m *Mask) Each(fn func(p Point)) {
	m.cells.Each(fn)
}

// Clear removes every cell
func (m *Mask) Clear() {
	m.cells = mapset.New[Point]()
}
