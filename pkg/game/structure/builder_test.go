package structure

import (
	"math/rand"
	"strings"
	"testing"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/state"
)

func newLayout(width, height int) *state.Layout {
	l := state.NewLayout(width, height, state.DefaultCapacity())
	l.SpawnSize = 11
	sx, sz, size := l.SpawnRect()
	l.Grid.FillRect(sx, sz, size, size, world.Empty)
	l.Protected.MarkRect(sx, sz, size, size)
	return l
}

func TestBuild_RoomsDoNotOverlap(t *testing.T) {
	b := DefaultBuilder()
	for seed := int64(1); seed <= 20; seed++ {
		l := newLayout(100, 100)
		b.Build(l, rand.New(rand.NewSource(seed)))

		if len(l.Rooms) == 0 {
			t.Fatalf("seed %d: no rooms placed", seed)
		}
		for i, a := range l.Rooms {
			if a.X < 1 || a.Z < 1 || a.X+a.Width > 99 || a.Z+a.Height > 99 {
				t.Errorf("seed %d: room %d %+v leaves the interior", seed, i, a)
			}
			if a.Width < b.MinRoomSide || a.Width > b.MaxRoomSide || a.Height < b.MinRoomSide || a.Height > b.MaxRoomSide {
				t.Errorf("seed %d: room %d size %dx%d out of range", seed, i, a.Width, a.Height)
			}
			for j := i + 1; j < len(l.Rooms); j++ {
				if a.Overlaps(l.Rooms[j], b.RoomMargin) {
					t.Errorf("seed %d: rooms %d and %d within margin %d", seed, i, j, b.RoomMargin)
				}
			}
		}
	}
}

func TestBuild_StampsAndConnects(t *testing.T) {
	l := newLayout(100, 100)
	DefaultBuilder().Build(l, rand.New(rand.NewSource(7)))

	if len(l.Rooms) > 1 && len(l.Corridors) == 0 {
		t.Fatal("several rooms but no corridors recorded")
	}
	for i, r := range l.Rooms {
		if len(l.Rooms) > 1 && !r.Connected {
			t.Errorf("room %d not marked connected", i)
		}
	}

	covered := world.NewMaskFor(l.Grid)
	for _, c := range l.Columns {
		w, h := c.Size.Dims()
		covered.MarkRect(c.X, c.Z, w, h)
	}
	for i, r := range l.Rooms {
		for z := r.Z; z < r.Z+r.Height; z++ {
			for x := r.X; x < r.X+r.Width; x++ {
				if l.Grid.IsWall(x, z) && !covered.Has(x, z) {
					t.Fatalf("room %d cell (%d,%d) is a wall without a column", i, x, z)
				}
			}
		}
	}

	seen := make(map[[4]int]bool)
	for _, c := range l.Corridors {
		key := [4]int{c.X1, c.Z1, c.X2, c.Z2}
		rev := [4]int{c.X2, c.Z2, c.X1, c.Z1}
		if seen[key] || seen[rev] {
			t.Errorf("corridor %+v recorded twice", c)
		}
		seen[key] = true
		if c.Width < 1 || c.Width > 3 {
			t.Errorf("corridor width %d out of range", c.Width)
		}
		if want := c.Width == 3 || c.Length() >= 24; c.IsMain != want {
			t.Errorf("corridor %+v IsMain = %v, want %v", c, c.IsMain, want)
		}
	}

	if n := len(l.Grid.BorderOpenings()); n != 0 {
		t.Errorf("structure network opened %d border cells", n)
	}
	sx, sz, size := l.SpawnRect()
	if !l.Grid.RectIs(sx, sz, size, size, world.Empty) {
		t.Error("spawn region no longer fully Empty")
	}
}

func TestBuild_ColumnsOnlyOnOpenCells(t *testing.T) {
	b := DefaultBuilder()
	b.ColumnOneIn = 10
	l := newLayout(80, 80)
	b.Build(l, rand.New(rand.NewSource(3)))

	if len(l.Columns) == 0 {
		t.Fatal("no columns placed")
	}
	for _, c := range l.Columns {
		w, h := c.Size.Dims()
		for z := c.Z; z < c.Z+h; z++ {
			for x := c.X; x < c.X+w; x++ {
				if l.Protected.Has(x, z) {
					t.Errorf("column %+v covers protected cell (%d,%d)", c, x, z)
				}
				if !l.Grid.IsWall(x, z) {
					t.Errorf("column %+v cell (%d,%d) not stamped", c, x, z)
				}
			}
		}
	}
}

func TestBuild_CapacityStopsEarly(t *testing.T) {
	l := newLayout(100, 100)
	l.Capacity.Rooms = 3
	l.Capacity.Columns = 2
	b := DefaultBuilder()
	b.ColumnOneIn = 5
	b.Build(l, rand.New(rand.NewSource(11)))

	if len(l.Rooms) != 3 {
		t.Errorf("got %d rooms, want 3", len(l.Rooms))
	}
	if len(l.Columns) != 2 {
		t.Errorf("got %d columns, want 2", len(l.Columns))
	}

	var roomMsg, columnMsg bool
	for _, m := range l.Messages {
		if strings.Contains(m, "Room capacity") {
			roomMsg = true
		}
		if strings.Contains(m, "Column capacity") {
			columnMsg = true
		}
	}
	if !roomMsg || !columnMsg {
		t.Errorf("capacity messages missing: %q", l.Messages)
	}
}
