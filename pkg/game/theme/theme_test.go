package theme

import (
	"testing"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/entities"
	"backrooms/pkg/game/state"
)

func TestLabels_FallBackWithoutCatalog(t *testing.T) {
	Configure(t.TempDir(), "xx_XX")

	if got := PatternLabel("Winding Corridors"); got != "Winding Corridors" {
		t.Errorf("PatternLabel = %q, want %q", got, "Winding Corridors")
	}
	if got := PatternLabel(""); got != "None" {
		t.Errorf("PatternLabel(\"\") = %q, want None", got)
	}
	if got := SideLabel(world.West); got != "West" {
		t.Errorf("SideLabel = %q, want West", got)
	}
	if got := ModeLabel(state.ModeHybrid); got != "Hybrid" {
		t.Errorf("ModeLabel = %q, want Hybrid", got)
	}
	if got := TierLabel(entities.TierBright); got != "Bright" {
		t.Errorf("TierLabel = %q, want Bright", got)
	}
	if got := LegendLabel("floor"); got != "floor" {
		t.Errorf("LegendLabel = %q, want floor", got)
	}
}

func TestLabels_Translated(t *testing.T) {
	Configure("../../../locales", "es_ES")
	t.Cleanup(func() { Configure(t.TempDir(), "xx_XX") })

	if got := PatternLabel("Classic Maze"); got != "Laberinto clásico" {
		t.Errorf("PatternLabel = %q, want %q", got, "Laberinto clásico")
	}
	if got := RoomTypeLabel(entities.RoomStorage); got != "Almacén" {
		t.Errorf("RoomTypeLabel = %q, want %q", got, "Almacén")
	}
	if got := ColumnTypeLabel(entities.ColumnPartition); got != "Tabique" {
		t.Errorf("ColumnTypeLabel = %q, want %q", got, "Tabique")
	}
}

func TestRoomName(t *testing.T) {
	Configure(t.TempDir(), "xx_XX")

	first := RoomName(entities.RoomOffice, 0)
	if first != "Cubicle Block" {
		t.Errorf("RoomName(Office, 0) = %q, want Cubicle Block", first)
	}
	if RoomName(entities.RoomOffice, 0) != first {
		t.Error("RoomName is not stable")
	}
	if got := RoomName(entities.RoomOffice, 8); got != "Damp Cubicle Block" {
		t.Errorf("RoomName(Office, 8) = %q, want Damp Cubicle Block", got)
	}
	if got := RoomName(entities.RoomType(99), 0); got != "Unknown" {
		t.Errorf("RoomName(unknown) = %q, want Unknown", got)
	}
}

func TestResolveDir(t *testing.T) {
	dir := t.TempDir()
	if got := ResolveDir(dir); got != dir {
		t.Errorf("ResolveDir(%q) = %q, want it unchanged", dir, got)
	}
	if got := ResolveDir("../../../locales"); got != "../../../locales" {
		t.Errorf("ResolveDir found %q for a directory that exists from here", got)
	}
	missing := "no-such-locales-dir"
	if got := ResolveDir(missing); got != missing {
		t.Errorf("ResolveDir(%q) = %q, want it unchanged", missing, got)
	}
}
