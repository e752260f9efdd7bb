package entities

// ColumnSize is the footprint class of a column
type ColumnSize int

const (
	Column1x1 ColumnSize = iota
	Column2x2
	Column3x3
	Column2x1
	Column1x2
)

// ColumnSizeCount is the number of size classes (for random selection)
const ColumnSizeCount = 5

// Dims returns the footprint width and height
func (s ColumnSize) Dims() (w, h int) {
	switch s {
	case Column2x2:
		return 2, 2
	case Column3x3:
		return 3, 3
	case Column2x1:
		return 2, 1
	case Column1x2:
		return 1, 2
	default:
		return 1, 1
	}
}

// String returns the string representation of a column size
func (s ColumnSize) String() string {
	switch s {
	case Column1x1:
		return "1x1"
	case Column2x2:
		return "2x2"
	case Column3x3:
		return "3x3"
	case Column2x1:
		return "2x1"
	case Column1x2:
		return "1x2"
	default:
		return "?"
	}
}

// ColumnType tags a column for rendering
type ColumnType int

const (
	ColumnPillar    ColumnType = iota // Square load-bearing pillar
	ColumnSupport                     // Thick support block
	ColumnPartition                   // Thin wall segment
)

// String returns the string representation of a column type
func (t ColumnType) String() string {
	switch t {
	case ColumnPillar:
		return "Pillar"
	case ColumnSupport:
		return "Support"
	case ColumnPartition:
		return "Partition"
	default:
		return "Unknown"
	}
}

// TypeForSize returns the natural column type for a footprint
func TypeForSize(s ColumnSize) ColumnType {
	switch s {
	case Column2x1, Column1x2:
		return ColumnPartition
	case Column3x3:
		return ColumnSupport
	default:
		return ColumnPillar
	}
}

// Column is a standalone obstacle inside open space
type Column struct {
	X, Z int
	Size ColumnSize
	Type ColumnType
}
