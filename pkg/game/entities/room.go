package entities

import (
	"backrooms/pkg/engine/world"
)

// RoomType tags a room with its purpose (used for rendering and light hints)
type RoomType int

const (
	RoomOffice RoomType = iota
	RoomHallway
	RoomStorage
	RoomAtrium
	RoomUtility
)

// RoomTypeCount is the number of room types (for random selection)
const RoomTypeCount = 5

// String returns the string representation of a room type
func (t RoomType) String() string {
	switch t {
	case RoomOffice:
		return "Office"
	case RoomHallway:
		return "Hallway"
	case RoomStorage:
		return "Storage"
	case RoomAtrium:
		return "Atrium"
	case RoomUtility:
		return "Utility"
	default:
		return "Unknown"
	}
}

// Room is an axis-aligned rectangle of open floor
type Room struct {
	X, Z          int
	Width, Height int
	Type          RoomType
	Connected     bool // Set once a corridor to another room has been recorded
}

// Center returns the room center cell
func (r Room) Center() world.Point {
	return world.Point{X: r.X + r.Width/2, Z: r.Z + r.Height/2}
}

// Area returns the number of cells covered by the room
func (r Room) Area() int {
	return r.Width * r.Height
}

// Contains returns true if (x, z) is inside the room
func (r Room) Contains(x, z int) bool {
	return x >= r.X && x < r.X+r.Width && z >= r.Z && z < r.Z+r.Height
}

// Overlaps returns true if the two rooms overlap once o is grown by margin on every side
func (r Room) Overlaps(o Room, margin int) bool {
	return r.X < o.X+o.Width+margin && r.X+r.Width+margin > o.X &&
		r.Z < o.Z+o.Height+margin && r.Z+r.Height+margin > o.Z
}

// DistanceSq returns the squared Euclidean distance between two room centers
func (r Room) DistanceSq(o Room) int {
	a, b := r.Center(), o.Center()
	dx, dz := a.X-b.X, a.Z-b.Z
	return dx*dx + dz*dz
}
