// Package structure lays a network of rooms, corridors and columns over a layout.
package structure

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/entities"
	"backrooms/pkg/game/state"
)

// Builder holds the placement rules for the structure network
type Builder struct {
	RoomAttempts int
	MinRoomSide  int
	MaxRoomSide  int
	RoomMargin   int // Minimum gap between two rooms

	MinLinks int // Nearest rooms each room is connected to
	MaxLinks int

	MinCorridorWidth   int
	MaxCorridorWidth   int
	MainCorridorLength int // Corridors this long (or of maximum width) are main

	ColumnOneIn int // A column is attempted at an interior cell with probability 1/ColumnOneIn
}

// DefaultBuilder returns the standard structure network rules
func DefaultBuilder() Builder {
	return Builder{
		RoomAttempts:       100,
		MinRoomSide:        4,
		MaxRoomSide:        14,
		RoomMargin:         2,
		MinLinks:           2,
		MaxLinks:           3,
		MinCorridorWidth:   1,
		MaxCorridorWidth:   3,
		MainCorridorLength: 24,
		ColumnOneIn:        120,
	}
}

// Build places rooms, connects them to their nearest neighbours, stamps both
// onto the grid and finally scatters columns through the open space.
// Rooms are not guaranteed to form a single connected component.
func (b Builder) Build(l *state.Layout, rng *rand.Rand) {
	b.placeRooms(l, rng)
	b.connectRooms(l, rng)

	for _, r := range l.Rooms {
		stampRoom(l.Grid, r)
	}
	for _, c := range l.Corridors {
		stampCorridor(l.Grid, c)
	}

	b.placeColumns(l, rng)

	l.AddMessage(fmt.Sprintf("Structure network: %d rooms, %d corridors, %d columns",
		len(l.Rooms), len(l.Corridors), len(l.Columns)))
}

// placeRooms records non-overlapping rooms. Candidates that leave the interior or
// come within RoomMargin of an existing room are skipped.
func (b Builder) placeRooms(l *state.Layout, rng *rand.Rand) {
	width, height := l.Grid.Width(), l.Grid.Height()
	span := b.MaxRoomSide - b.MinRoomSide + 1

	for attempt := 0; attempt < b.RoomAttempts; attempt++ {
		room := entities.Room{
			Width:  b.MinRoomSide + rng.Intn(span),
			Height: b.MinRoomSide + rng.Intn(span),
			Type:   entities.RoomType(rng.Intn(entities.RoomTypeCount)),
		}
		room.X = 1 + rng.Intn(width-2)
		room.Z = 1 + rng.Intn(height-2)

		if room.X+room.Width > width-1 || room.Z+room.Height > height-1 {
			continue
		}

		overlaps := false
		for _, other := range l.Rooms {
			if room.Overlaps(other, b.RoomMargin) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		if !l.AddRoom(room) {
			l.AddMessage(fmt.Sprintf("Room capacity of %d exceeded, stopped early", l.Capacity.Rooms))
			return
		}
	}
}

// roomPair is an unordered pair of room indices, lower index first
type roomPair struct {
	a, b int
}

// connectRooms links every room to its MinLinks..MaxLinks nearest rooms by
// squared center distance. Each pair is connected at most once.
func (b Builder) connectRooms(l *state.Layout, rng *rand.Rand) {
	linked := mapset.New[roomPair]()

	for i := range l.Rooms {
		others := make([]int, 0, len(l.Rooms)-1)
		for j := range l.Rooms {
			if j != i {
				others = append(others, j)
			}
		}
		sort.SliceStable(others, func(x, y int) bool {
			return l.Rooms[i].DistanceSq(l.Rooms[others[x]]) < l.Rooms[i].DistanceSq(l.Rooms[others[y]])
		})

		links := b.MinLinks + rng.Intn(b.MaxLinks-b.MinLinks+1)
		for _, j := range others[:min(links, len(others))] {
			pair := roomPair{a: min(i, j), b: max(i, j)}
			if linked.Has(pair) {
				continue
			}

			from, to := l.Rooms[i].Center(), l.Rooms[j].Center()
			c := entities.Corridor{
				X1:    from.X,
				Z1:    from.Z,
				X2:    to.X,
				Z2:    to.Z,
				Width: b.MinCorridorWidth + rng.Intn(b.MaxCorridorWidth-b.MinCorridorWidth+1),
			}
			c.IsMain = c.Width >= b.MaxCorridorWidth || c.Length() >= b.MainCorridorLength

			if !l.AddCorridor(c) {
				l.AddMessage(fmt.Sprintf("Corridor capacity of %d exceeded, stopped early", l.Capacity.Corridors))
				return
			}
			linked.Put(pair)
			l.Rooms[i].Connected = true
			l.Rooms[j].Connected = true
		}
	}
}

// placeColumns drops a column wherever the random roll hits and the whole
// footprint is Empty and unprotected.
func (b Builder) placeColumns(l *state.Layout, rng *rand.Rand) {
	if b.ColumnOneIn <= 0 {
		return
	}
	width, height := l.Grid.Width(), l.Grid.Height()

	for z := 1; z < height-1; z++ {
		for x := 1; x < width-1; x++ {
			if rng.Intn(b.ColumnOneIn) != 0 {
				continue
			}
			size := entities.ColumnSize(rng.Intn(entities.ColumnSizeCount))
			w, h := size.Dims()
			if !footprintFree(l, x, z, w, h) {
				continue
			}

			if !l.AddColumn(entities.Column{X: x, Z: z, Size: size, Type: entities.TypeForSize(size)}) {
				l.AddMessage(fmt.Sprintf("Column capacity of %d exceeded, stopped early", l.Capacity.Columns))
				return
			}
			l.Grid.PlaceObstacle(x, z, w, h, l.Protected)
		}
	}
}

// footprintFree returns true if every cell of the rectangle is an interior,
// Empty, unprotected cell
func footprintFree(l *state.Layout, x, z, w, h int) bool {
	for cz := z; cz < z+h; cz++ {
		for cx := x; cx < x+w; cx++ {
			if !l.Grid.IsInterior(cx, cz) || l.Grid.Get(cx, cz) != world.Empty || l.Protected.Has(cx, cz) {
				return false
			}
		}
	}
	return true
}

// stampRoom opens the interior cells of a room
func stampRoom(grid *world.Grid, r entities.Room) {
	for z := r.Z; z < r.Z+r.Height; z++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if grid.IsInterior(x, z) {
				grid.Set(x, z, world.Empty)
			}
		}
	}
}

// stampCorridor opens the interior cells of a corridor's width-expanded L-shaped centerline
func stampCorridor(grid *world.Grid, c entities.Corridor) {
	for _, p := range c.Footprint() {
		if grid.IsInterior(p.X, p.Z) {
			grid.Set(p.X, p.Z, world.Empty)
		}
	}
}
