package main

import (
	"testing"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/generator"
	"backrooms/pkg/game/levelgen"
	"backrooms/pkg/game/state"
)

func TestConfigFromFlags(t *testing.T) {
	cfg, err := configFromFlags(100, 80, 9, "network", "random", "east", 40, 10)
	if err != nil {
		t.Fatalf("configFromFlags: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 80 || cfg.SpawnSize != 9 {
		t.Errorf("size = %dx%d spawn %d, want 100x80 spawn 9", cfg.Width, cfg.Height, cfg.SpawnSize)
	}
	if cfg.Mode != state.ModeNetwork {
		t.Errorf("mode = %v, want %v", cfg.Mode, state.ModeNetwork)
	}
	if cfg.Pattern != "" {
		t.Errorf("pattern = %q, want empty for random", cfg.Pattern)
	}
	if cfg.ExitSide != world.East || cfg.ExitOffset != 40 {
		t.Errorf("exit = %v/%d, want East/40", cfg.ExitSide, cfg.ExitOffset)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigFromFlags_AnySide(t *testing.T) {
	cfg, err := configFromFlags(levelgen.DefaultGridSize, levelgen.DefaultGridSize, levelgen.DefaultSpawnSize, "hybrid", "", "any", -1, 0)
	if err != nil {
		t.Fatalf("configFromFlags: %v", err)
	}
	if cfg.ExitSide != generator.AnySide {
		t.Errorf("exit side = %v, want AnySide", cfg.ExitSide)
	}
}

func TestConfigFromFlags_Invalid(t *testing.T) {
	tests := []struct {
		name, mode, side string
	}{
		{"bad mode", "maze", "north"},
		{"bad side", "hybrid", "up"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := configFromFlags(100, 100, 11, tt.mode, "", tt.side, -1, 0); err == nil {
				t.Error("configFromFlags returned no error")
			}
		})
	}
}

func TestSelectRenderer(t *testing.T) {
	gen, err := levelgen.New(levelgen.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, name := range []string{"tui", "ebiten"} {
		if r, err := selectRenderer(name, gen); err != nil || r == nil {
			t.Errorf("selectRenderer(%q) = %v, %v, want a renderer", name, r, err)
		}
	}
	if r, err := selectRenderer("none", gen); err != nil || r != nil {
		t.Errorf("selectRenderer(none) = %v, %v, want nil, nil", r, err)
	}
	if _, err := selectRenderer("opengl", gen); err == nil {
		t.Error("selectRenderer(opengl) returned no error")
	}
}
