// Package renderer defines the rendering backends' shared view of a layout:
// what to draw at each cell and which part of the grid fits the viewport.
package renderer

import (
	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/entities"
	"backrooms/pkg/game/state"
)

// CellKind is what a renderer draws at one cell once records are overlaid
type CellKind int

const (
	KindVoid CellKind = iota // Outside the grid
	KindWall
	KindFloor
	KindRoomFloor
	KindDecoration
	KindColumn
	KindSpawn
	KindExit
	KindLight
	KindDeadLight
)

// String returns the legend name of a cell kind
func (k CellKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFloor, KindRoomFloor:
		return "floor"
	case KindDecoration:
		return "decoration"
	case KindColumn:
		return "column"
	case KindSpawn:
		return "spawn"
	case KindExit:
		return "exit"
	case KindLight, KindDeadLight:
		return "light"
	default:
		return "void"
	}
}

// Style returns the text style used for a cell kind
func (k CellKind) Style() TextStyle {
	switch k {
	case KindWall:
		return StyleWall
	case KindFloor:
		return StyleFloor
	case KindRoomFloor:
		return StyleRoomFloor
	case KindDecoration:
		return StyleDecoration
	case KindColumn:
		return StyleColumn
	case KindSpawn:
		return StyleSpawn
	case KindExit:
		return StyleExit
	case KindLight:
		return StyleLight
	case KindDeadLight:
		return StyleDeadLight
	default:
		return StyleNormal
	}
}

// Scene indexes a layout's records by cell so a renderer can classify every
// cell in constant time
type Scene struct {
	Layout *state.Layout

	columns *world.Mask
	lights  map[world.Point]int // cell -> index into Layout.Lights
	rooms   []int               // row-major cell -> room index + 1, 0 if none
}

// NewScene builds the per-cell index for l
func NewScene(l *state.Layout) *Scene {
	grid := l.Grid
	s := &Scene{
		Layout:  l,
		columns: world.NewMaskFor(grid),
		lights:  make(map[world.Point]int, len(l.Lights)),
		rooms:   make([]int, grid.Area()),
	}
	for _, c := range l.Columns {
		w, h := c.Size.Dims()
		for z := c.Z; z < c.Z+h; z++ {
			for x := c.X; x < c.X+w; x++ {
				if grid.IsWall(x, z) {
					s.columns.Mark(x, z)
				}
			}
		}
	}
	for i, light := range l.Lights {
		s.lights[light.Cell()] = i
	}
	for i, r := range l.Rooms {
		for z := r.Z; z < r.Z+r.Height; z++ {
			for x := r.X; x < r.X+r.Width; x++ {
				if grid.InBounds(x, z) {
					s.rooms[z*grid.Width()+x] = i + 1
				}
			}
		}
	}
	return s
}

// Kind classifies (x, z). Spawn and exit markers win over lights, lights over
// columns, and columns over the bare cell state.
func (s *Scene) Kind(x, z int) CellKind {
	grid := s.Layout.Grid
	if !grid.InBounds(x, z) {
		return KindVoid
	}
	p := world.Point{X: x, Z: z}
	switch p {
	case s.Layout.Spawn:
		return KindSpawn
	case s.Layout.Exit.Cell:
		return KindExit
	}
	if i, ok := s.lights[p]; ok {
		if s.Layout.Lights[i].Active {
			return KindLight
		}
		return KindDeadLight
	}
	if s.columns.Has(x, z) {
		return KindColumn
	}
	switch grid.Get(x, z) {
	case world.Empty:
		if s.rooms[z*grid.Width()+x] > 0 {
			return KindRoomFloor
		}
		return KindFloor
	case world.Decoration:
		return KindDecoration
	default:
		return KindWall
	}
}

// Room returns the room covering (x, z), if any
func (s *Scene) Room(x, z int) (entities.Room, bool) {
	grid := s.Layout.Grid
	if !grid.InBounds(x, z) {
		return entities.Room{}, false
	}
	i := s.rooms[z*grid.Width()+x]
	if i == 0 {
		return entities.Room{}, false
	}
	return s.Layout.Rooms[i-1], true
}

// Viewport returns the top-left cell of a rows x cols window centered on the
// spawn point and clamped to the grid. A window larger than the grid starts at 0.
func (s *Scene) Viewport(rows, cols int) (x0, z0 int) {
	grid := s.Layout.Grid
	x0 = clamp(s.Layout.Spawn.X-cols/2, 0, max(grid.Width()-cols, 0))
	z0 = clamp(s.Layout.Spawn.Z-rows/2, 0, max(grid.Height()-rows, 0))
	return x0, z0
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
