package levelgen

import (
	"fmt"
	"math/rand"
	"sync"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/generator"
	"backrooms/pkg/game/setup"
	"backrooms/pkg/game/state"
)

// Generator produces layouts from seeds and answers wall queries against the
// most recent one. A layout is built in full before it replaces the previous
// one, so concurrent IsWall callers never observe a half-carved grid.
type Generator struct {
	cfg Config

	mu     sync.RWMutex
	layout *state.Layout
}

// New validates cfg and returns a generator with no layout yet
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Generator{cfg: cfg}, nil
}

// Config returns the configuration the generator was built with
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate builds a new layout from seed and makes it current. The same seed
// and configuration always produce an identical layout.
func (g *Generator) Generate(seed int64) *state.Layout {
	l := Build(g.cfg, seed)

	g.mu.Lock()
	g.layout = l
	g.mu.Unlock()

	return l
}

// Reset drops the current layout. IsWall reports every cell as a wall until the
// next Generate.
func (g *Generator) Reset() {
	g.mu.Lock()
	g.layout = nil
	g.mu.Unlock()
}

// Layout returns the current layout, or nil before the first Generate
func (g *Generator) Layout() *state.Layout {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.layout
}

// IsWall reports whether (x, z) blocks movement in the current layout
func (g *Generator) IsWall(x, z int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.layout.IsWall(x, z)
}

// Build runs the full pipeline for one seed. cfg is assumed valid.
//
// Stages, in order: spawn square, exit notch, guaranteed path, pattern and/or
// structure network, connectivity check with repair, decorations, lights and
// the final path length measurement.
func Build(cfg Config, seed int64) *state.Layout {
	rng := rand.New(rand.NewSource(seed))

	l := state.NewLayout(cfg.Width, cfg.Height, cfg.Capacity)
	l.Seed = seed
	l.Mode = cfg.Mode
	l.SpawnSize = cfg.SpawnSize

	sx, sz, size := l.SpawnRect()
	l.Grid.FillRect(sx, sz, size, size, world.Empty)
	l.Protected.MarkRect(sx, sz, size, size)

	l.Exit = generator.PlaceExit(l.Grid, rng, generator.ExitRequest{Side: cfg.ExitSide, Offset: cfg.ExitOffset})
	for _, p := range l.Exit.Notch {
		l.Protected.MarkPoint(p)
	}
	l.AddMessage(fmt.Sprintf("Exit on the %s side at offset %d (depth %d)", l.Exit.Side, l.Exit.Offset, l.Exit.Depth()))

	carver := generator.DefaultPathCarver(l.Grid)
	route := carver.Carve(l.Grid, l.Spawn, l.Exit.Inner, rng, l.Protected)
	l.AddMessage(fmt.Sprintf("Guaranteed path carved through %d cells", len(route)))

	if cfg.Mode == state.ModePattern || cfg.Mode == state.ModeHybrid {
		pattern := choosePattern(cfg, rng)
		pattern.Carve(l, rng)
		l.Pattern = pattern.Name()
		l.AddMessage(fmt.Sprintf("Pattern: %s", pattern.Name()))
	}
	if cfg.Mode == state.ModeNetwork || cfg.Mode == state.ModeHybrid {
		cfg.Builder.Build(l, rng)
	}

	setup.EnsureExitReachable(l, carver, rng, cfg.MaxRepairs)
	setup.PlaceDecorations(l, rng, cfg.Decorations)
	cfg.Lights.Place(l, rng)

	l.PathLength = setup.PathLength(l.Grid, l.Spawn, l.Exit.Cell)
	l.AddMessage(fmt.Sprintf("Spawn to exit: %d steps", l.PathLength))

	return l
}

// choosePattern returns the configured pattern, or one picked from rng
func choosePattern(cfg Config, rng *rand.Rand) generator.Pattern {
	if cfg.Pattern != "" {
		if k, ok := generator.ByName(cfg.Pattern); ok {
			return generator.ForKind(k)
		}
	}
	_, p := generator.Pick(rng)
	return p
}
