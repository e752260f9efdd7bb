package entities

import (
	"backrooms/pkg/engine/world"
)

// LightTier is the brightness class of a light point
type LightTier int

const (
	TierDim LightTier = iota
	TierNormal
	TierBright
)

// String returns the string representation of a light tier
func (t LightTier) String() string {
	switch t {
	case TierDim:
		return "Dim"
	case TierNormal:
		return "Normal"
	case TierBright:
		return "Bright"
	default:
		return "Unknown"
	}
}

// TierSettings returns the intensity and effective range (in cells) for a tier
func TierSettings(t LightTier) (intensity, lightRange float64) {
	switch t {
	case TierBright:
		return 1.0, 8
	case TierNormal:
		return 0.7, 6
	default:
		return 0.4, 4
	}
}

// LightPoint is a ceiling light fixture placed over an open cell
type LightPoint struct {
	X, Z      float64 // Sub-cell position; cell centers sit at +0.5
	Intensity float64
	Range     float64
	Active    bool
	Tier      LightTier
}

// NewLightPoint creates an active light centered on the given cell with tier defaults
func NewLightPoint(cell world.Point, tier LightTier) LightPoint {
	intensity, lightRange := TierSettings(tier)
	return LightPoint{
		X:         float64(cell.X) + 0.5,
		Z:         float64(cell.Z) + 0.5,
		Intensity: intensity,
		Range:     lightRange,
		Active:    true,
		Tier:      tier,
	}
}

// Cell returns the grid cell the light hangs over
func (l LightPoint) Cell() world.Point {
	return world.Point{X: int(l.X), Z: int(l.Z)}
}
