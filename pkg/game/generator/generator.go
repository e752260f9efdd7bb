// Package generator carves the open space of a layout: the exit notch, the
// guaranteed spawn-to-exit path and the interchangeable pattern generators.
package generator

import (
	"math/rand"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/state"
)

// Pattern is an interface for carving algorithms that run after the guaranteed path.
// Implementations only touch interior cells and never turn a protected cell into a
// wall. Obstacles a pattern stamps are recorded on the layout.
type Pattern interface {
	Carve(l *state.Layout, rng *rand.Rand)
	Name() string
}

// Kind identifies one of the built-in patterns
type Kind int

const (
	KindClassicMaze Kind = iota
	KindRoomNetwork
	KindWindingCorridors
	KindBackrooms
)

// KindCount is the number of built-in patterns (for random selection)
const KindCount = 4

// Available patterns
var (
	ClassicMaze      = &ClassicMazePattern{}
	RoomNetwork      = &RoomNetworkPattern{}
	WindingCorridors = &WindingCorridorsPattern{}
	Backrooms        = &BackroomsPattern{}
)

// DefaultPattern is used when a pattern must be chosen without an rng
var DefaultPattern Pattern = Backrooms

// ForKind returns the pattern implementation for a kind
func ForKind(k Kind) Pattern {
	switch k {
	case KindClassicMaze:
		return ClassicMaze
	case KindRoomNetwork:
		return RoomNetwork
	case KindWindingCorridors:
		return WindingCorridors
	case KindBackrooms:
		return Backrooms
	default:
		return DefaultPattern
	}
}

// String returns the pattern name for a kind
func (k Kind) String() string {
	return ForKind(k).Name()
}

// Pick selects a pattern uniformly from rng
func Pick(rng *rand.Rand) (Kind, Pattern) {
	k := Kind(rng.Intn(KindCount))
	return k, ForKind(k)
}

// ByName looks up a pattern by its Name(). Returns false if no pattern matches.
func ByName(name string) (Kind, bool) {
	for k := Kind(0); k < KindCount; k++ {
		if ForKind(k).Name() == name {
			return k, true
		}
	}
	return KindBackrooms, false
}

// Names returns the names of all built-in patterns in kind order
func Names() []string {
	names := make([]string, 0, KindCount)
	for k := Kind(0); k < KindCount; k++ {
		names = append(names, ForKind(k).Name())
	}
	return names
}

// carveInterior sets (x, z) to Empty if it lies strictly inside the border.
// Returns true if the cell was carved.
func carveInterior(grid *world.Grid, x, z int) bool {
	if !grid.IsInterior(x, z) {
		return false
	}
	return grid.Set(x, z, world.Empty)
}

// carveInteriorRect carves every interior cell of the rectangle and returns how many were set
func carveInteriorRect(grid *world.Grid, x, z, w, h int) int {
	n := 0
	for dz := 0; dz < h; dz++ {
		for dx := 0; dx < w; dx++ {
			if carveInterior(grid, x+dx, z+dz) {
				n++
			}
		}
	}
	return n
}
