package setup

import (
	"fmt"
	"math/rand"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/state"
)

// DefaultDecorations is the number of decoration cells placed per layout
const DefaultDecorations = 24

// decorationAttemptsPer bounds the random search: count*decorationAttemptsPer tries
const decorationAttemptsPer = 20

// PlaceDecorations marks up to count open interior cells as Decoration. Protected
// cells (spawn region, exit notch, guaranteed path) are skipped so they stay Empty.
// Decorations are walkable, so connectivity is unaffected. Returns the number placed.
func PlaceDecorations(l *state.Layout, rng *rand.Rand, count int) int {
	if count <= 0 {
		return 0
	}
	width, height := l.Grid.Width(), l.Grid.Height()

	placed := 0
	for attempt := 0; attempt < count*decorationAttemptsPer && placed < count; attempt++ {
		x := 1 + rng.Intn(width-2)
		z := 1 + rng.Intn(height-2)
		if l.Grid.Get(x, z) != world.Empty || l.Protected.Has(x, z) {
			continue
		}
		l.Grid.Set(x, z, world.Decoration)
		placed++
	}

	if placed < count {
		l.AddMessage(fmt.Sprintf("Placed %d of %d decorations (no more open cells found)", placed, count))
	}
	return placed
}
