package fence

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/philipparndt/fencemeasure/pkg/geometry"
	"github.com/philipparndt/fencemeasure/pkg/units"
)

// ClosureToleranceMeters is how close the last segment's end must come to
// the first segment's start for the runs to count as a closed loop.
const ClosureToleranceMeters = 0.1

// TotalLength sums the cached length of every segment in feet. Lengths are
// not recomputed from the endpoints.
func TotalLength(segments []Segment) float64 {
	lengths := make([]float64, len(segments))
	for i, s := range segments {
		lengths[i] = s.Length()
	}
	return floats.Sum(lengths)
}

// IsClosedLoop reports whether the segments return to their starting point
// within ClosureToleranceMeters.
func IsClosedLoop(segments []Segment) bool {
	if len(segments) == 0 {
		return false
	}
	first := segments[0].Start
	last := segments[len(segments)-1].End
	if first == nil || last == nil {
		return false
	}
	return geometry.Distance3D(*last, *first) <= ClosureToleranceMeters
}

// Perimeter returns the total length of a closed loop in feet, or 0 when
// the segments do not close.
func Perimeter(segments []Segment) float64 {
	if !IsClosedLoop(segments) {
		return 0
	}
	return TotalLength(segments)
}

// EnclosedArea returns the plan-view area in square feet of the polygon
// traced by the segments, using the shoelace formula over X/Z. At least
// three segments with all endpoints present are required; otherwise 0.
//
// The polygon is assumed to be roughly horizontal and simple. Self
// intersecting runs are not detected.
func EnclosedArea(segments []Segment) float64 {
	if len(segments) < 3 {
		return 0
	}

	ring := make([]geometry.Vector3, 0, len(segments)+1)
	for _, s := range segments {
		if s.Start == nil {
			return 0
		}
		ring = append(ring, *s.Start)
	}
	last := segments[len(segments)-1].End
	if last == nil {
		return 0
	}
	ring = append(ring, *last)

	// The ring wraps back to its first vertex, so a run that stops short
	// of its start is closed by a straight edge.
	var sum float64
	for i := range ring {
		j := (i + 1) % len(ring)
		sum += ring[i].X*ring[j].Z - ring[j].X*ring[i].Z
	}

	return units.SquareMetersToSquareFeet(math.Abs(sum) / 2)
}

// Endpoints collects every start and end point that is present.
func Endpoints(segments []Segment) []geometry.Vector3 {
	points := make([]geometry.Vector3, 0, len(segments)*2)
	for _, s := range segments {
		if s.Start != nil {
			points = append(points, *s.Start)
		}
		if s.End != nil {
			points = append(points, *s.End)
		}
	}
	return points
}
