package fence

import (
	"github.com/philipparndt/fencemeasure/pkg/geometry"
)

func ptr[T any](v T) *T { return &v }

// seg builds a segment with an explicit cached length, the way records
// arrive from storage.
func seg(start, end geometry.Vector3, lengthFeet, confidence float64) Segment {
	return Segment{
		Start:           &start,
		End:             &end,
		LengthFeet:      ptr(lengthFeet),
		ConfidenceScore: ptr(confidence),
	}
}

func unitSquare() []Segment {
	p := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(1, 0, 1),
		geometry.NewVector3(0, 0, 1),
	}
	return []Segment{
		seg(p[0], p[1], 1, 0.9),
		seg(p[1], p[2], 1, 0.8),
		seg(p[2], p[3], 1, 1.0),
		seg(p[3], p[0], 1, 0.7),
	}
}
