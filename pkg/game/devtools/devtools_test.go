package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"backrooms/pkg/game/levelgen"
	"backrooms/pkg/game/setup"
)

// mapSection returns the lines between "--- Map ---" and the next blank line.
func mapSection(t *testing.T, dump string) []string {
	t.Helper()
	_, rest, ok := strings.Cut(dump, "--- Map ---\n")
	if !ok {
		t.Fatal("dump has no map section")
	}
	block, _, _ := strings.Cut(rest, "\n\n")
	return strings.Split(block, "\n")
}

func TestWriteLayout_DevLayout(t *testing.T) {
	l := DevLayout()
	var buf bytes.Buffer
	if err := WriteLayout(&buf, l); err != nil {
		t.Fatalf("WriteLayout: %v", err)
	}
	dump := buf.String()

	rows := mapSection(t, dump)
	if len(rows) != l.Grid.Height() {
		t.Fatalf("map has %d rows, want %d", len(rows), l.Grid.Height())
	}
	for z, row := range rows {
		if len([]rune(row)) != l.Grid.Width() {
			t.Fatalf("row %d has %d symbols, want %d", z, len([]rune(row)), l.Grid.Width())
		}
	}
	if rows[l.Spawn.Z][l.Spawn.X] != SymbolSpawn {
		t.Errorf("spawn symbol = %q, want %q", rows[l.Spawn.Z][l.Spawn.X], SymbolSpawn)
	}
	if rows[l.Exit.Cell.Z][l.Exit.Cell.X] != SymbolExit {
		t.Errorf("exit symbol = %q, want %q", rows[l.Exit.Cell.Z][l.Exit.Cell.X], SymbolExit)
	}

	grid := strings.Join(rows, "\n")
	for _, sym := range []rune{SymbolWall, SymbolEmpty, SymbolDecoration, SymbolColumn, SymbolLight, SymbolDeadLight} {
		if !strings.ContainsRune(grid, sym) {
			t.Errorf("map has no %q symbol", sym)
		}
	}

	for _, want := range []string{"Rooms (5/100):", "Corridors (3/200):", "Columns (5/400):", "Lights (4/50):", "=== END LAYOUT DUMP ==="} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump missing %q", want)
		}
	}
}

func TestWriteLayout_Generated(t *testing.T) {
	l := levelgen.Build(levelgen.DefaultConfig(), 12)
	var buf bytes.Buffer
	if err := WriteLayout(&buf, l); err != nil {
		t.Fatalf("WriteLayout: %v", err)
	}

	rows := mapSection(t, buf.String())
	openings := 0
	for z, row := range rows {
		for x, r := range row {
			if (z == 0 || z == len(rows)-1 || x == 0 || x == len(row)-1) && r != SymbolWall {
				openings++
			}
		}
	}
	if openings != 1 {
		t.Errorf("dump shows %d border openings, want 1", openings)
	}
}

func TestWriteLayout_Nil(t *testing.T) {
	if err := WriteLayout(&bytes.Buffer{}, nil); err == nil {
		t.Error("WriteLayout(nil) returned no error")
	}
}

func TestDumpLayoutToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	got, err := DumpLayoutToFile(DevLayout(), path)
	if err != nil {
		t.Fatalf("DumpLayoutToFile: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	if !strings.HasPrefix(string(data), "=== LAYOUT DUMP ===") {
		t.Error("dump file does not start with the header")
	}
}

func TestSaveLayoutHTML(t *testing.T) {
	l := DevLayout()
	l.AddMessage("<b>escaped</b>")

	path, err := SaveLayoutHTML(l, t.TempDir())
	if err != nil {
		t.Fatalf("SaveLayoutHTML: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	page := string(data)
	if strings.Count(page, `<div class="map-row">`) != l.Grid.Height() {
		t.Errorf("snapshot has %d map rows, want %d", strings.Count(page, `<div class="map-row">`), l.Grid.Height())
	}
	if !strings.Contains(page, `class="spawn"`) || !strings.Contains(page, `class="exit"`) {
		t.Error("snapshot lacks spawn or exit markers")
	}
	if strings.Contains(page, "<b>escaped</b>") {
		t.Error("message was not escaped")
	}
}

func TestDevLayout_Connected(t *testing.T) {
	l := DevLayout()
	if !setup.Reachable(l.Grid, l.Spawn, l.Exit.Cell) {
		t.Error("dev layout exit unreachable")
	}
	if n := len(l.Grid.BorderOpenings()); n != 1 {
		t.Errorf("dev layout has %d border openings, want 1", n)
	}
}
