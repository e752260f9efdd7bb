package world

// Direction represents a cardinal direction. North points toward z = 0.
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// ParseDirection parses a direction name (case-sensitive long form or single letter).
// Returns false if the name is not recognised.
func ParseDirection(name string) (Direction, bool) {
	switch name {
	case "North", "north", "N", "n":
		return North, true
	case "East", "east", "E", "e":
		return East, true
	case "South", "south", "S", "s":
		return South, true
	case "West", "west", "W", "w":
		return West, true
	default:
		return North, false
	}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and z offsets for this direction
func (d Direction) Delta() (dx, dz int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Perpendicular returns the two directions at right angles to d
func (d Direction) Perpendicular() (Direction, Direction) {
	if d == North || d == South {
		return West, East
	}
	return North, South
}
