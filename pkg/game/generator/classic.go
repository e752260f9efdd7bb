package generator

import (
	"math/rand"

	"backrooms/pkg/game/state"
)

// Constants for classic maze generation
const (
	classicBandStride     = 6 // Rows between the tops of consecutive bands
	classicBandMin        = 2 // Minimum band height
	classicBandMax        = 4 // Maximum band height
	classicConnectorEvery = 3 // Columns between connector candidates
	classicConnectorOneIn = 3 // A candidate becomes a connector with probability 1/3
	classicStubOneIn      = 6 // A candidate becomes a dead-end stub with probability 1/6
	classicStubMax        = 2 // Maximum stub length
)

// ClassicMazePattern carves parallel horizontal bands joined by sparse vertical connectors
type ClassicMazePattern struct{}

// Name returns the name of this pattern
func (p *ClassicMazePattern) Name() string {
	return "Classic Maze"
}

type band struct {
	top, bottom int // Inclusive rows
}

// Carve opens the bands, then the connectors between each pair of consecutive
// bands, then a few stubs that poke into the walls and stop.
func (p *ClassicMazePattern) Carve(l *state.Layout, rng *rand.Rand) {
	grid := l.Grid
	width, height := grid.Width(), grid.Height()

	var bands []band
	for z := 1; z < height-1; z += classicBandStride {
		h := classicBandMin + rng.Intn(classicBandMax-classicBandMin+1)
		b := band{top: z, bottom: min(z+h-1, height-2)}
		carveInteriorRect(grid, 1, b.top, width-2, b.bottom-b.top+1)
		bands = append(bands, b)
	}

	for i := 0; i+1 < len(bands); i++ {
		upper, lower := bands[i], bands[i+1]
		for x := 1; x < width-1; x += classicConnectorEvery {
			if rng.Intn(classicConnectorOneIn) != 0 {
				continue
			}
			for z := upper.bottom + 1; z < lower.top; z++ {
				carveInterior(grid, x, z)
			}
		}
	}

	for _, b := range bands {
		for x := 2; x < width-2; x += classicConnectorEvery {
			if rng.Intn(classicStubOneIn) != 0 {
				continue
			}
			length := 1 + rng.Intn(classicStubMax)
			if rng.Intn(2) == 0 {
				for i := 1; i <= length; i++ {
					carveInterior(grid, x, b.top-i)
				}
			} else {
				for i := 1; i <= length; i++ {
					carveInterior(grid, x, b.bottom+i)
				}
			}
		}
	}
}
