package levelgen

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/generator"
	"backrooms/pkg/game/setup"
	"backrooms/pkg/game/state"
)

// checkLayout asserts the properties every finished layout must have.
func checkLayout(t *testing.T, l *state.Layout) {
	t.Helper()

	if !setup.Reachable(l.Grid, l.Spawn, l.Exit.Cell) {
		t.Fatalf("seed %d (%s/%s): exit %v unreachable from spawn %v", l.Seed, l.Mode, l.Pattern, l.Exit.Cell, l.Spawn)
	}

	openings := l.Grid.BorderOpenings()
	if len(openings) != 1 || openings[0] != l.Exit.Cell {
		t.Errorf("seed %d: border openings %v, want only %v", l.Seed, openings, l.Exit.Cell)
	}
	if l.Grid.Get(l.Exit.Cell.X, l.Exit.Cell.Z) != world.Empty {
		t.Errorf("seed %d: exit cell is %v, want Empty", l.Seed, l.Grid.Get(l.Exit.Cell.X, l.Exit.Cell.Z))
	}

	sx, sz, size := l.SpawnRect()
	if !l.Grid.RectIs(sx, sz, size, size, world.Empty) {
		t.Errorf("seed %d: spawn region not fully Empty", l.Seed)
	}

	if l.PathLength < l.Spawn.Manhattan(l.Exit.Cell) {
		t.Errorf("seed %d: path length %d shorter than Manhattan distance %d", l.Seed, l.PathLength, l.Spawn.Manhattan(l.Exit.Cell))
	}

	for _, light := range l.Lights {
		cell := light.Cell()
		if l.Grid.Get(cell.X, cell.Z) != world.Empty {
			t.Errorf("seed %d: light over %v cell %v", l.Seed, l.Grid.Get(cell.X, cell.Z), cell)
		}
	}
	if len(l.Lights) > l.Capacity.Lights {
		t.Errorf("seed %d: %d lights exceed capacity %d", l.Seed, len(l.Lights), l.Capacity.Lights)
	}
}

func TestBuild_AllModesAndPatterns(t *testing.T) {
	for _, mode := range []state.Mode{state.ModePattern, state.ModeNetwork, state.ModeHybrid} {
		for _, name := range generator.Names() {
			if mode == state.ModeNetwork && name != generator.DefaultPattern.Name() {
				continue // pattern is ignored in network mode
			}
			cfg := DefaultConfig()
			cfg.Mode = mode
			cfg.Pattern = name
			t.Run(mode.String()+"/"+name, func(t *testing.T) {
				for seed := int64(1); seed <= 15; seed++ {
					l := Build(cfg, seed)
					checkLayout(t, l)
					if mode != state.ModeNetwork && l.Pattern != name {
						t.Errorf("seed %d: pattern %q, want %q", seed, l.Pattern, name)
					}
				}
			})
		}
	}
}

func TestBuild_RandomPatternReachesAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = state.ModePattern
	seen := make(map[string]bool)
	for seed := int64(1); seed <= 200; seed++ {
		l := Build(cfg, seed)
		checkLayout(t, l)
		seen[l.Pattern] = true
	}
	for _, name := range generator.Names() {
		if !seen[name] {
			t.Errorf("pattern %q never selected over 200 seeds", name)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	for _, seed := range []int64{1, 42, 987654321} {
		a := Build(cfg, seed)
		b := Build(cfg, seed)
		if !a.Grid.Equal(b.Grid) {
			t.Fatalf("seed %d: grids differ", seed)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("seed %d: layouts differ", seed)
		}
	}

	a := Build(cfg, 1)
	b := Build(cfg, 2)
	if a.Grid.Equal(b.Grid) {
		t.Error("seeds 1 and 2 produced identical grids")
	}
}

func TestBuild_EastExitScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExitSide = world.East
	cfg.ExitOffset = 40

	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l := g.Generate(1)

	if g.IsWall(99, 40) {
		t.Error("IsWall(99, 40) = true, want false")
	}
	if !setup.Reachable(l.Grid, world.Point{X: 50, Z: 50}, world.Point{X: 99, Z: 40}) {
		t.Error("(99,40) not reachable from (50,50)")
	}
	for z := 0; z < 100; z++ {
		if z != 40 && !g.IsWall(99, z) {
			t.Errorf("IsWall(99, %d) = false, want true", z)
		}
	}
}

func TestBuild_Decorations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Decorations = 30
	l := Build(cfg, 5)

	n := 0
	l.Grid.ForEachCell(func(x, z int, s world.CellState) {
		if s != world.Decoration {
			return
		}
		n++
		if l.IsWall(x, z) {
			t.Errorf("decoration at (%d,%d) reported as wall", x, z)
		}
		if l.InSpawn(x, z) {
			t.Errorf("decoration at (%d,%d) inside spawn region", x, z)
		}
	})
	if n == 0 {
		t.Error("no decorations placed")
	}
}

func TestBuild_CapacityExceeded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = state.ModeNetwork
	cfg.Capacity.Rooms = 2
	l := Build(cfg, 3)

	if len(l.Rooms) != 2 {
		t.Errorf("got %d rooms, want 2", len(l.Rooms))
	}
	found := false
	for _, m := range l.Messages {
		if strings.Contains(m, "capacity") {
			found = true
		}
	}
	if !found {
		t.Errorf("no capacity message in %q", l.Messages)
	}
	checkLayout(t, l)
}

func TestBuild_BackroomsRecordsColumns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = state.ModePattern
	cfg.Pattern = generator.Backrooms.Name()
	l := Build(cfg, 1)

	if len(l.Columns) == 0 {
		t.Fatal("got 0 column records for the Backrooms pattern, want some")
	}
	if len(l.Columns) > l.Capacity.Columns {
		t.Errorf("got %d columns, over the capacity of %d", len(l.Columns), l.Capacity.Columns)
	}
	checkLayout(t, l)
}

func TestBuild_LargeGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 200
	cfg.Height = 200
	l := Build(cfg, 77)
	checkLayout(t, l)
	if l.Spawn != (world.Point{X: 100, Z: 100}) {
		t.Errorf("spawn = %v, want (100,100)", l.Spawn)
	}
}

func TestGenerator_BoundsAndReset(t *testing.T) {
	g, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if !g.IsWall(50, 50) {
		t.Error("IsWall before Generate = false, want true")
	}

	g.Generate(9)
	if g.IsWall(50, 50) {
		t.Error("spawn center is a wall")
	}
	for _, p := range []world.Point{{X: -1, Z: 0}, {X: 0, Z: -1}, {X: 100, Z: 50}, {X: 50, Z: 100}, {X: 1 << 20, Z: 3}} {
		if !g.IsWall(p.X, p.Z) {
			t.Errorf("IsWall(%d, %d) = false, want true", p.X, p.Z)
		}
	}

	g.Reset()
	if g.Layout() != nil {
		t.Error("Layout() after Reset is not nil")
	}
	if !g.IsWall(50, 50) {
		t.Error("IsWall after Reset = false, want true")
	}
}

func TestGenerator_ConcurrentQueries(t *testing.T) {
	g, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Generate(1)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 1000; n++ {
				g.IsWall(n%100, n/10)
			}
		}()
	}
	for seed := int64(2); seed <= 4; seed++ {
		g.Generate(seed)
	}
	wg.Wait()
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"too narrow", func(c *Config) { c.Width = 5 }, "width"},
		{"even spawn", func(c *Config) { c.SpawnSize = 10 }, "spawn size"},
		{"spawn too large", func(c *Config) { c.Width, c.Height, c.SpawnSize = 20, 20, 15 }, "too large"},
		{"unknown pattern", func(c *Config) { c.Pattern = "Spiral" }, "pattern"},
		{"bad side", func(c *Config) { c.ExitSide = 7 }, "exit side"},
		{"negative decorations", func(c *Config) { c.Decorations = -1 }, "decorations"},
		{"zero capacity", func(c *Config) { c.Capacity.Lights = 0 }, "capacities"},
		{"corridor too wide", func(c *Config) { c.Builder.MaxCorridorWidth = 4 }, "corridor width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			_, err := New(cfg)
			if err == nil {
				t.Fatal("New returned no error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	if _, err := New(DefaultConfig()); err != nil {
		t.Errorf("default config rejected: %v", err)
	}
}
