package fence

import (
	"gonum.org/v1/gonum/stat"

	"github.com/philipparndt/fencemeasure/pkg/geometry"
)

// Summary holds whole-project statistics derived from its segments
type Summary struct {
	SegmentCount        int                   `json:"segment_count"`
	TotalLinearFeet     float64               `json:"total_linear_feet"`
	TotalAreaSqft       float64               `json:"total_area_sqft"`
	PerimeterFeet       float64               `json:"perimeter_feet"`
	ClosedLoop          bool                  `json:"closed_loop"`
	AvgConfidence       float64               `json:"avg_confidence"`
	EstimatedAccuracyCm float64               `json:"estimated_accuracy_cm"`
	BoundingBox         *geometry.BoundingBox `json:"bounding_box,omitempty"`
}

// Summarize computes the project summary from scratch. Nothing is cached,
// so it must be called again whenever the segment list changes.
func Summarize(project Project) Summary {
	return SummarizeSegments(project.Segments)
}

// SummarizeSegments computes a Summary over an arbitrary list of segments.
func SummarizeSegments(segments []Segment) Summary {
	total := TotalLength(segments)
	avg := averageConfidence(segments)

	return Summary{
		SegmentCount:        len(segments),
		TotalLinearFeet:     total,
		TotalAreaSqft:       EnclosedArea(segments),
		PerimeterFeet:       Perimeter(segments),
		ClosedLoop:          IsClosedLoop(segments),
		AvgConfidence:       avg,
		EstimatedAccuracyCm: geometry.EstimateAccuracyCm(avg, total),
		BoundingBox:         geometry.ComputeBoundingBox(Endpoints(segments)),
	}
}

func averageConfidence(segments []Segment) float64 {
	if len(segments) == 0 {
		return 0
	}
	scores := make([]float64, len(segments))
	for i, s := range segments {
		scores[i] = s.Confidence()
	}
	return stat.Mean(scores, nil)
}
