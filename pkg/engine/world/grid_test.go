package world

import "testing"

func TestNewGrid_AllWall(t *testing.T) {
	g := NewGrid(7, 5)
	if g.Width() != 7 || g.Height() != 5 {
		t.Fatalf("dimensions = %dx%d, want 7x5", g.Width(), g.Height())
	}
	if got := g.Count(Wall); got != 35 {
		t.Errorf("Count(Wall) = %d, want 35", got)
	}
}

func TestNewGrid_PanicsOnInvalidDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 5) did not panic")
		}
	}()
	NewGrid(0, 5)
}

func TestIsWall_OutOfBounds(t *testing.T) {
	g := NewGrid(10, 8)
	g.FillRect(0, 0, 10, 8, Empty)

	outside := []Point{
		{-1, 0}, {0, -1}, {10, 0}, {0, 8}, {-5, -5}, {100, 100}, {10, 8}, {9, 8}, {10, 7},
	}
	for _, p := range outside {
		if !g.IsWall(p.X, p.Z) {
			t.Errorf("IsWall(%d,%d) = false, want true (out of bounds)", p.X, p.Z)
		}
	}
	if g.IsWall(9, 7) {
		t.Error("IsWall(9,7) = true, want false (last in-bounds cell is Empty)")
	}
}

func TestSet_OutOfBoundsIsNoop(t *testing.T) {
	g := NewGrid(4, 4)
	if g.Set(4, 0, Empty) {
		t.Error("Set(4,0) = true, want false")
	}
	if g.Set(-1, 2, Empty) {
		t.Error("Set(-1,2) = true, want false")
	}
	if got := g.Count(Empty); got != 0 {
		t.Errorf("Count(Empty) = %d after out-of-bounds sets, want 0", got)
	}
}

func TestDecorationIsNotWall(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Decoration)
	if g.IsWall(1, 1) {
		t.Error("IsWall on Decoration = true, want false")
	}
	if !g.Get(1, 1).IsWalkable() {
		t.Error("Decoration.IsWalkable() = false, want true")
	}
}

func TestReset(t *testing.T) {
	g := NewGrid(5, 5)
	g.FillRect(1, 1, 3, 3, Empty)
	g.Set(2, 2, Decoration)
	g.Reset()
	if got := g.Count(Wall); got != 25 {
		t.Errorf("Count(Wall) after Reset = %d, want 25", got)
	}
}

func TestPlaceObstacle_OnlyEmptyAndUnskipped(t *testing.T) {
	g := NewGrid(6, 6)
	g.FillRect(1, 1, 4, 4, Empty)
	g.Set(2, 2, Decoration)
	skip := NewMaskFor(g)
	skip.Mark(3, 3)

	n := g.PlaceObstacle(1, 1, 3, 3, skip)

	// 9 cells in the footprint: one Decoration and one skipped stay as they were.
	if n != 7 {
		t.Errorf("PlaceObstacle turned %d cells into Wall, want 7", n)
	}
	if g.Get(2, 2) != Decoration {
		t.Errorf("decoration cell = %v, want Decoration", g.Get(2, 2))
	}
	if g.Get(3, 3) != Empty {
		t.Errorf("skipped cell = %v, want Empty", g.Get(3, 3))
	}
}

func TestBorderAndInterior(t *testing.T) {
	g := NewGrid(5, 4)
	tests := []struct {
		p        Point
		interior bool
		border   bool
	}{
		{Point{0, 0}, false, true},
		{Point{4, 3}, false, true},
		{Point{2, 0}, false, true},
		{Point{1, 1}, true, false},
		{Point{3, 2}, true, false},
		{Point{5, 2}, false, false},
	}
	for _, tt := range tests {
		if got := g.IsInterior(tt.p.X, tt.p.Z); got != tt.interior {
			t.Errorf("IsInterior(%v) = %v, want %v", tt.p, got, tt.interior)
		}
		if got := g.IsOnBorder(tt.p.X, tt.p.Z); got != tt.border {
			t.Errorf("IsOnBorder(%v) = %v, want %v", tt.p, got, tt.border)
		}
	}
}

func TestBorderOpenings(t *testing.T) {
	g := NewGrid(6, 6)
	g.Set(3, 0, Empty)
	g.Set(5, 2, Empty)
	g.Set(2, 2, Empty) // interior, not reported

	open := g.BorderOpenings()
	if len(open) != 2 {
		t.Fatalf("BorderOpenings() = %v, want 2 cells", open)
	}
}

func TestCloneAndEqual(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(1, 2, Empty)
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone is not Equal to original")
	}
	c.Set(2, 2, Empty)
	if g.Equal(c) {
		t.Error("grids Equal after clone was modified")
	}
	if g.Get(2, 2) != Wall {
		t.Error("modifying clone changed the original")
	}
}

func TestClampInterior(t *testing.T) {
	g := NewGrid(10, 10)
	if got := g.ClampInterior(Point{-3, 12}); got != (Point{1, 8}) {
		t.Errorf("ClampInterior = %v, want {1 8}", got)
	}
}

func TestMask(t *testing.T) {
	m := NewMask(4, 4)
	m.MarkRect(1, 1, 2, 2)
	m.Mark(1, 1) // already set, count unchanged
	m.Mark(9, 9) // out of bounds, ignored
	if m.Count() != 4 {
		t.Errorf("Count() = %d, want 4", m.Count())
	}
	if !m.Has(2, 2) || m.Has(0, 0) || m.Has(-1, 0) {
		t.Error("Has returned unexpected values")
	}
	seen := 0
	m.Each(func(p Point) {
		if p.X < 1 || p.X > 2 || p.Z < 1 || p.Z > 2 {
			t.Errorf("Each visited %v outside the marked rect", p)
		}
		seen++
	})
	if seen != 4 {
		t.Errorf("Each visited %d cells, want 4", seen)
	}
	m.Clear()
	if m.Count() != 0 || m.Has(1, 1) {
		t.Error("Clear did not reset the mask")
	}
}

func TestDirection(t *testing.T) {
	for _, d := range AllDirections() {
		dx, dz := d.Delta()
		ox, oz := d.Opposite().Delta()
		if dx+ox != 0 || dz+oz != 0 {
			t.Errorf("%v and its opposite do not cancel", d)
		}
		parsed, ok := ParseDirection(d.String())
		if !ok || parsed != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), parsed, ok)
		}
	}
	if _, ok := ParseDirection("up"); ok {
		t.Error(`ParseDirection("up") succeeded`)
	}
}
