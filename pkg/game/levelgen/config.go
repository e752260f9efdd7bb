// Package levelgen runs the fixed generation pipeline that turns a seed into a
// finished layout, and serves wall queries against the latest result.
package levelgen

import (
	"fmt"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/generator"
	"backrooms/pkg/game/setup"
	"backrooms/pkg/game/state"
	"backrooms/pkg/game/structure"
)

// Grid size limits
const (
	MinGridSize = 20
	MaxGridSize = 1000

	// DefaultGridSize is the width and height used when nothing else is configured
	DefaultGridSize = 100
	// DefaultSpawnSize is the side of the open square around the spawn point
	DefaultSpawnSize = 11

	// spawnBorderGap keeps the spawn square clear of the deepest exit notch
	spawnBorderGap = 8
)

// Config controls one generator instance
type Config struct {
	Width     int
	Height    int
	SpawnSize int // Odd side length of the spawn square

	Mode    state.Mode
	Pattern string // Pattern name for pattern and hybrid modes, empty picks one per seed

	ExitSide   world.Direction // generator.AnySide picks a side per seed
	ExitOffset int             // generator.AnyOffset picks an offset per seed

	Decorations int
	MaxRepairs  int

	Capacity state.Capacity
	Builder  structure.Builder
	Lights   setup.LightPlanner
}

// DefaultConfig returns a 100x100 hybrid configuration with every choice left to the seed
func DefaultConfig() Config {
	return Config{
		Width:       DefaultGridSize,
		Height:      DefaultGridSize,
		SpawnSize:   DefaultSpawnSize,
		Mode:        state.ModeHybrid,
		ExitSide:    generator.AnySide,
		ExitOffset:  generator.AnyOffset,
		Decorations: setup.DefaultDecorations,
		MaxRepairs:  setup.DefaultMaxRepairs,
		Capacity:    state.DefaultCapacity(),
		Builder:     structure.DefaultBuilder(),
		Lights:      setup.DefaultLightPlanner(),
	}
}

// Validate reports the first configuration problem found, or nil
func (c Config) Validate() error {
	if c.Width < MinGridSize || c.Width > MaxGridSize {
		return fmt.Errorf("width %d out of range [%d, %d]", c.Width, MinGridSize, MaxGridSize)
	}
	if c.Height < MinGridSize || c.Height > MaxGridSize {
		return fmt.Errorf("height %d out of range [%d, %d]", c.Height, MinGridSize, MaxGridSize)
	}
	if c.SpawnSize < 1 || c.SpawnSize%2 == 0 {
		return fmt.Errorf("spawn size %d must be a positive odd number", c.SpawnSize)
	}
	if limit := min(c.Width, c.Height) - spawnBorderGap; c.SpawnSize > limit {
		return fmt.Errorf("spawn size %d too large for a %dx%d grid (max %d)", c.SpawnSize, c.Width, c.Height, limit)
	}

	switch c.Mode {
	case state.ModePattern, state.ModeNetwork, state.ModeHybrid:
	default:
		return fmt.Errorf("unknown mode %d", c.Mode)
	}
	if c.Pattern != "" {
		if _, ok := generator.ByName(c.Pattern); !ok {
			return fmt.Errorf("unknown pattern %q", c.Pattern)
		}
	}

	if c.ExitSide != generator.AnySide && !c.ExitSide.IsValid() {
		return fmt.Errorf("invalid exit side %d", c.ExitSide)
	}
	if c.ExitOffset < generator.AnyOffset {
		return fmt.Errorf("exit offset %d must not be negative", c.ExitOffset)
	}

	if c.Decorations < 0 {
		return fmt.Errorf("decorations %d must not be negative", c.Decorations)
	}
	if c.MaxRepairs < 0 {
		return fmt.Errorf("max repairs %d must not be negative", c.MaxRepairs)
	}

	if c.Capacity.Rooms <= 0 || c.Capacity.Corridors <= 0 || c.Capacity.Columns <= 0 || c.Capacity.Lights <= 0 {
		return fmt.Errorf("capacities must be positive: %+v", c.Capacity)
	}

	b := c.Builder
	if b.MinRoomSide < 1 || b.MaxRoomSide < b.MinRoomSide {
		return fmt.Errorf("room side range [%d, %d] is invalid", b.MinRoomSide, b.MaxRoomSide)
	}
	if b.MinLinks < 0 || b.MaxLinks < b.MinLinks {
		return fmt.Errorf("link range [%d, %d] is invalid", b.MinLinks, b.MaxLinks)
	}
	if b.MinCorridorWidth < 1 || b.MaxCorridorWidth < b.MinCorridorWidth || b.MaxCorridorWidth > 3 {
		return fmt.Errorf("corridor width range [%d, %d] is invalid", b.MinCorridorWidth, b.MaxCorridorWidth)
	}

	return nil
}
