package devtools

import (
	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/entities"
	"backrooms/pkg/game/state"
)

// DevLayout returns a hard-coded 50x50 layout for checking renderers and dumps.
// Every record kind is present: one room per type, a corridor of each width,
// a column of each size, a light of each tier (plus a dead one) and a row of
// decorations. The exit sits on the east side at offset 25.
func DevLayout() *state.Layout {
	const size = 50
	const margin = 3

	l := state.NewLayout(size, size, state.DefaultCapacity())
	l.SpawnSize = 5
	l.Pattern = "Dev Test Map"
	l.Mode = state.ModeNetwork

	// Open floor everywhere inside the border
	l.Grid.FillRect(1, 1, size-2, size-2, world.Empty)
	sx, sz, spawnSize := l.SpawnRect()
	l.Protected.MarkRect(sx, sz, spawnSize, spawnSize)

	// Exit
	l.Exit = entities.Exit{
		Side:   world.East,
		Offset: size / 2,
		Cell:   world.Point{X: size - 1, Z: size / 2},
		Inner:  world.Point{X: size - 2, Z: size / 2},
		Notch:  []world.Point{{X: size - 1, Z: size / 2}, {X: size - 2, Z: size / 2}},
	}
	for _, p := range l.Exit.Notch {
		l.Grid.Set(p.X, p.Z, world.Empty)
		l.Protected.MarkPoint(p)
	}

	// Row 1: one room per type, 6x6 with a margin between each
	col := 2
	for t := entities.RoomType(0); t < entities.RoomTypeCount; t++ {
		l.AddRoom(entities.Room{X: col, Z: 2, Width: 6, Height: 6, Type: t, Connected: true})
		col += 6 + margin
	}

	// Row 2: corridors of width 1, 2 and 3
	for w := 1; w <= 3; w++ {
		z := 12 + (w-1)*4
		l.AddCorridor(entities.Corridor{X1: 2, Z1: z, X2: 20, Z2: z, Width: w, IsMain: w == 3})
	}

	// Row 3: one column per size
	col = 2
	for s := entities.ColumnSize(0); s < entities.ColumnSizeCount; s++ {
		c := entities.Column{X: col, Z: 32, Size: s, Type: entities.TypeForSize(s)}
		w, h := s.Dims()
		l.Grid.PlaceObstacle(c.X, c.Z, w, h, l.Protected)
		l.AddColumn(c)
		col += w + margin
	}

	// Row 4: decorations
	for x := 2; x < 20; x += 2 {
		l.Grid.Set(x, 38, world.Decoration)
	}

	// Row 5: lights of each tier and a dead fixture
	col = 2
	for t := entities.TierDim; t <= entities.TierBright; t++ {
		l.AddLight(entities.NewLightPoint(world.Point{X: col, Z: 44}, t))
		col += margin + 1
	}
	dead := entities.NewLightPoint(world.Point{X: col, Z: 44}, entities.TierDim)
	dead.Active = false
	l.AddLight(dead)

	l.PathLength = l.Spawn.Manhattan(l.Exit.Cell)
	l.AddMessage("Developer test layout")
	return l
}
