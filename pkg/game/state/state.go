package state

import (
	"math/rand"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/entities"
)

// Mode selects which carving stages run after the guaranteed path
type Mode int

// Generation modes
const (
	ModePattern Mode = iota // One pattern generator
	ModeNetwork             // Structure network builder only
	ModeHybrid              // Pattern generator followed by the structure network
)

// String returns the string representation of a mode
func (m Mode) String() string {
	switch m {
	case ModePattern:
		return "pattern"
	case ModeNetwork:
		return "network"
	case ModeHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name. Returns false if the name is not recognised.
func ParseMode(name string) (Mode, bool) {
	for _, m := range []Mode{ModePattern, ModeNetwork, ModeHybrid} {
		if m.String() == name {
			return m, true
		}
	}
	return ModePattern, false
}

// Capacity bounds the structure record sequences
type Capacity struct {
	Rooms     int
	Corridors int
	Columns   int
	Lights    int
}

// DefaultCapacity returns the standard record limits
func DefaultCapacity() Capacity {
	return Capacity{Rooms: 100, Corridors: 200, Columns: 400, Lights: 50}
}

// Layout holds everything one generation run produces. It is owned and mutated
// by the generation pipeline and read-only once handed out.
type Layout struct {
	Grid *world.Grid

	// Protected marks cells that obstacle stamping must leave open:
	// the spawn region, the exit notch and the guaranteed path.
	Protected *world.Mask

	Seed    int64
	Mode    Mode
	Pattern string // Name of the pattern generator that ran, empty in network mode

	Spawn     world.Point
	SpawnSize int
	Exit      entities.Exit

	Rooms     []entities.Room
	Corridors []entities.Corridor
	Columns   []entities.Column
	Lights    []entities.LightPoint

	Capacity Capacity

	Repairs    int // Path carver re-runs triggered by the connectivity validator
	PathLength int // Shortest walkable distance spawn -> exit, -1 if unreachable

	Messages []string
}

// NewLayout creates an all-wall layout of the given size
func NewLayout(width, height int, capacity Capacity) *Layout {
	grid := world.NewGrid(width, height)
	return &Layout{
		Grid:       grid,
		Protected:  world.NewMaskFor(grid),
		Spawn:      grid.Center(),
		Capacity:   capacity,
		PathLength: -1,
		Messages:   make([]string, 0),
	}
}

// IsWall reports whether (x, z) blocks movement. Out-of-bounds is always a wall.
func (l *Layout) IsWall(x, z int) bool {
	if l == nil || l.Grid == nil {
		return true
	}
	return l.Grid.IsWall(x, z)
}

// AddMessage appends a line to the generation log
func (l *Layout) AddMessage(msg string) {
	l.Messages = append(l.Messages, msg)
}

// AddRoom records a room. Returns false if the room capacity is exhausted.
func (l *Layout) AddRoom(r entities.Room) bool {
	if len(l.Rooms) >= l.Capacity.Rooms {
		return false
	}
	l.Rooms = append(l.Rooms, r)
	return true
}

// AddCorridor records a corridor. Returns false if the corridor capacity is exhausted.
func (l *Layout) AddCorridor(c entities.Corridor) bool {
	if len(l.Corridors) >= l.Capacity.Corridors {
		return false
	}
	l.Corridors = append(l.Corridors, c)
	return true
}

// AddColumn records a column. Returns false if the column capacity is exhausted.
func (l *Layout) AddColumn(c entities.Column) bool {
	if len(l.Columns) >= l.Capacity.Columns {
		return false
	}
	l.Columns = append(l.Columns, c)
	return true
}

// AddLight records a light. Returns false if the light capacity is exhausted.
func (l *Layout) AddLight(p entities.LightPoint) bool {
	if len(l.Lights) >= l.Capacity.Lights {
		return false
	}
	l.Lights = append(l.Lights, p)
	return true
}

// LightsFull returns true once no more lights can be recorded
func (l *Layout) LightsFull() bool {
	return len(l.Lights) >= l.Capacity.Lights
}

// SpawnRect returns the top-left corner and side length of the spawn square
func (l *Layout) SpawnRect() (x, z, size int) {
	half := l.SpawnSize / 2
	return l.Spawn.X - half, l.Spawn.Z - half, l.SpawnSize
}

// InSpawn returns true if (x, z) lies in the spawn square
func (l *Layout) InSpawn(x, z int) bool {
	sx, sz, size := l.SpawnRect()
	return x >= sx && x < sx+size && z >= sz && z < sz+size
}

// RandomWalkable searches up to attempts random cells for one that is not a wall.
// Used by gameplay systems that need a valid standing spot (for example teleport targets).
func (l *Layout) RandomWalkable(rng *rand.Rand, attempts int) (world.Point, bool) {
	if l == nil || l.Grid == nil {
		return world.Point{}, false
	}
	for i := 0; i < attempts; i++ {
		p := world.Point{X: rng.Intn(l.Grid.Width()), Z: rng.Intn(l.Grid.Height())}
		if !l.Grid.IsWall(p.X, p.Z) {
			return p, true
		}
	}
	return world.Point{}, false
}
