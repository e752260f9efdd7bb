package generator

import (
	"math/rand"

	"backrooms/pkg/game/state"
)

// Constants for room network generation
const (
	roomNetworkMinRooms   = 8
	roomNetworkMaxRooms   = 20
	roomNetworkMinSide    = 5
	roomNetworkMaxSide    = 15
	roomNetworkSprinkleIn = 50 // One sprinkled connector cell per this many grid cells
)

// RoomNetworkPattern carves rectangular rooms at random positions and sprinkles
// single open cells between them.
type RoomNetworkPattern struct{}

// Name returns the name of this pattern
func (p *RoomNetworkPattern) Name() string {
	return "Room Network"
}

// Carve places 8-20 rooms of 5-15 cells per side. A candidate that does not fit
// inside the border is skipped, not retried.
func (p *RoomNetworkPattern) Carve(l *state.Layout, rng *rand.Rand) {
	grid := l.Grid
	width, height := grid.Width(), grid.Height()

	rooms := roomNetworkMinRooms + rng.Intn(roomNetworkMaxRooms-roomNetworkMinRooms+1)
	for i := 0; i < rooms; i++ {
		w := roomNetworkMinSide + rng.Intn(roomNetworkMaxSide-roomNetworkMinSide+1)
		h := roomNetworkMinSide + rng.Intn(roomNetworkMaxSide-roomNetworkMinSide+1)
		x := 1 + rng.Intn(max(width-2, 1))
		z := 1 + rng.Intn(max(height-2, 1))
		if x+w > width-1 || z+h > height-1 {
			continue
		}
		carveInteriorRect(grid, x, z, w, h)
	}

	sprinkles := grid.Area() / roomNetworkSprinkleIn
	for i := 0; i < sprinkles; i++ {
		carveInterior(grid, 1+rng.Intn(max(width-2, 1)), 1+rng.Intn(max(height-2, 1)))
	}
}
