// Package devtools provides developer tools for testing and debugging layouts.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/renderer"
	"backrooms/pkg/game/setup"
	"backrooms/pkg/game/state"
	"backrooms/pkg/game/theme"
)

const mapDumpFilename = "map.txt"

// Map symbols
const (
	SymbolWall        = '#'
	SymbolEmpty       = '.'
	SymbolDecoration  = '*'
	SymbolColumn      = 'O'
	SymbolExit        = 'E'
	SymbolSpawn       = '@'
	SymbolLight       = 'L'
	SymbolDeadLight   = 'l'
	SymbolOutOfBounds = ' '
)

// Symbol returns the single-character dump symbol for a cell kind
func Symbol(k renderer.CellKind) rune {
	switch k {
	case renderer.KindSpawn:
		return SymbolSpawn
	case renderer.KindExit:
		return SymbolExit
	case renderer.KindLight:
		return SymbolLight
	case renderer.KindDeadLight:
		return SymbolDeadLight
	case renderer.KindColumn:
		return SymbolColumn
	case renderer.KindFloor, renderer.KindRoomFloor:
		return SymbolEmpty
	case renderer.KindDecoration:
		return SymbolDecoration
	case renderer.KindWall:
		return SymbolWall
	default:
		return SymbolOutOfBounds
	}
}

// WriteLayout writes a full debug dump of l: metadata, legend, the map and the
// structure records. Format is human-readable (sections, key: value).
func WriteLayout(out io.Writer, l *state.Layout) error {
	if l == nil || l.Grid == nil {
		return fmt.Errorf("no layout")
	}
	w := bufio.NewWriter(out)
	grid := l.Grid

	// --- Metadata ---
	fmt.Fprintln(w, "=== LAYOUT DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", l.Seed)
	fmt.Fprintf(w, "mode: %s\n", theme.ModeLabel(l.Mode))
	fmt.Fprintf(w, "pattern: %s\n", theme.PatternLabel(l.Pattern))
	fmt.Fprintf(w, "grid_width: %d\n", grid.Width())
	fmt.Fprintf(w, "grid_height: %d\n", grid.Height())
	fmt.Fprintf(w, "coordinate_system: x,z (0-based, x=column, z=row, north is z=0)\n")
	fmt.Fprintf(w, "spawn: %d,%d size: %d\n", l.Spawn.X, l.Spawn.Z, l.SpawnSize)
	fmt.Fprintf(w, "exit: %d,%d side: %s offset: %d depth: %d\n", l.Exit.Cell.X, l.Exit.Cell.Z, theme.SideLabel(l.Exit.Side), l.Exit.Offset, l.Exit.Depth())
	fmt.Fprintf(w, "path_length: %d\n", l.PathLength)
	fmt.Fprintf(w, "repairs: %d\n", l.Repairs)
	fmt.Fprintf(w, "cells_wall: %d\n", grid.Count(world.Wall))
	fmt.Fprintf(w, "cells_empty: %d\n", grid.Count(world.Empty))
	fmt.Fprintf(w, "cells_decoration: %d\n", grid.Count(world.Decoration))
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintf(w, "%c = %s  %c = %s  %c = %s  %c = column  %c = %s  %c = %s  %c = %s  %c = dead %s\n",
		SymbolWall, theme.LegendLabel("wall"),
		SymbolEmpty, theme.LegendLabel("floor"),
		SymbolDecoration, theme.LegendLabel("decoration"),
		SymbolColumn,
		SymbolExit, theme.LegendLabel("exit"),
		SymbolSpawn, theme.LegendLabel("spawn"),
		SymbolLight, theme.LegendLabel("light"),
		SymbolDeadLight, theme.LegendLabel("light"))
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	scene := renderer.NewScene(l)
	for z := 0; z < grid.Height(); z++ {
		for x := 0; x < grid.Width(); x++ {
			w.WriteRune(Symbol(scene.Kind(x, z)))
		}
		w.WriteByte('\n')
	}
	fmt.Fprintln(w, "")

	// --- Records ---
	fmt.Fprintf(w, "Rooms (%d/%d):\n", len(l.Rooms), l.Capacity.Rooms)
	for i, r := range l.Rooms {
		fmt.Fprintf(w, "  x: %d z: %d width: %d height: %d type: %s name: %q connected: %v\n",
			r.X, r.Z, r.Width, r.Height, theme.RoomTypeLabel(r.Type), theme.RoomName(r.Type, i), r.Connected)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintf(w, "Corridors (%d/%d):\n", len(l.Corridors), l.Capacity.Corridors)
	for _, c := range l.Corridors {
		fmt.Fprintf(w, "  from: %d,%d to: %d,%d width: %d length: %d main: %v\n",
			c.X1, c.Z1, c.X2, c.Z2, c.Width, c.Length(), c.IsMain)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintf(w, "Columns (%d/%d):\n", len(l.Columns), l.Capacity.Columns)
	for _, c := range l.Columns {
		fmt.Fprintf(w, "  x: %d z: %d size: %s type: %s\n", c.X, c.Z, c.Size, theme.ColumnTypeLabel(c.Type))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintf(w, "Lights (%d/%d):\n", len(l.Lights), l.Capacity.Lights)
	for _, light := range l.Lights {
		fmt.Fprintf(w, "  x: %.1f z: %.1f tier: %s intensity: %.2f range: %.0f active: %v coverage: %d\n",
			light.X, light.Z, theme.TierLabel(light.Tier), light.Intensity, light.Range, light.Active, setup.Coverage(grid, light))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Messages:")
	if len(l.Messages) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, m := range l.Messages {
		fmt.Fprintf(w, "  %s\n", m)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END LAYOUT DUMP ===")
	return w.Flush()
}

// DumpLayoutToFile writes WriteLayout output to path (map.txt when empty) and
// returns the absolute path written.
func DumpLayoutToFile(l *state.Layout, path string) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create dump: %w", err)
	}
	defer f.Close()

	if err := WriteLayout(f, l); err != nil {
		return absPath, fmt.Errorf("write dump: %w", err)
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
