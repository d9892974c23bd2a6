package geometry

import (
	"math"

	"github.com/philipparndt/fencemeasure/pkg/units"
)

// Drafting defaults
const (
	DefaultAngleTolerance = 5.0
	DefaultSnapIncrement  = 45.0
)

// AngleKind classifies a corner angle for display
type AngleKind int

const (
	AngleOther AngleKind = iota
	AngleRight
	AngleDiagonal
)

func (k AngleKind) String() string {
	switch k {
	case AngleRight:
		return "right"
	case AngleDiagonal:
		return "diagonal"
	default:
		return "other"
	}
}

// SlopePercent returns the grade from p1 to p2 as rise over horizontal run
// times 100, rounded to two decimals. A zero run yields 0.
func SlopePercent(p1, p2 Vector3) float64 {
	run := HorizontalDistance(p1, p2)
	if run == 0 {
		return 0
	}
	rise := p2.Y - p1.Y
	return units.Round(rise/run*100, 2)
}

// SlopeAngleDegrees returns the inclination from p1 to p2 in degrees,
// rounded to two decimals. A zero run yields 0.
func SlopeAngleDegrees(p1, p2 Vector3) float64 {
	run := HorizontalDistance(p1, p2)
	if run == 0 {
		return 0
	}
	rise := p2.Y - p1.Y
	return units.Round(radToDeg(math.Atan(rise/run)), 2)
}

// VertexAngle returns the angle at p2 between the rays p2->p1 and p2->p3,
// in degrees rounded to two decimals. Either ray having zero length yields 0.
func VertexAngle(p1, p2, p3 Vector3) float64 {
	v1 := p1.Sub(p2)
	v2 := p3.Sub(p2)

	mag := v1.Length() * v2.Length()
	if mag == 0 {
		return 0
	}

	cos := v1.Dot(v2) / mag
	cos = math.Max(-1, math.Min(1, cos))
	return units.Round(radToDeg(math.Acos(cos)), 2)
}

// IsRightAngle reports whether angle is within tolerance degrees of 90.
func IsRightAngle(angle, tolerance float64) bool {
	return math.Abs(angle-90) <= tolerance
}

// Is45Angle reports whether angle is within tolerance degrees of either
// diagonal orientation, 45 or 135.
func Is45Angle(angle, tolerance float64) bool {
	return math.Abs(angle-45) <= tolerance || math.Abs(angle-135) <= tolerance
}

// ClassifyAngle buckets angle into right, diagonal or other.
func ClassifyAngle(angle, tolerance float64) AngleKind {
	switch {
	case IsRightAngle(angle, tolerance):
		return AngleRight
	case Is45Angle(angle, tolerance):
		return AngleDiagonal
	default:
		return AngleOther
	}
}

// SnapAngle rounds angle to the nearest multiple of increment. A
// non-positive increment leaves the angle unchanged.
func SnapAngle(angle, increment float64) float64 {
	if increment <= 0 {
		return angle
	}
	return math.Round(angle/increment) * increment
}

// SnapToGrid rounds each axis of point to the nearest multiple of gridSize.
// A non-positive grid size leaves the point unchanged.
func SnapToGrid(point Vector3, gridSize float64) Vector3 {
	if gridSize <= 0 {
		return point
	}
	snap := func(v float64) float64 {
		return math.Round(v/gridSize) * gridSize
	}
	return Vector3{X: snap(point.X), Y: snap(point.Y), Z: snap(point.Z)}
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
