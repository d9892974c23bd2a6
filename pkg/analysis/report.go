// Package analysis combines the fence computations into per-project
// reports for the command line tools.
package analysis

import (
	"fmt"
	"sort"

	"github.com/philipparndt/fencemeasure/pkg/fence"
	"github.com/philipparndt/fencemeasure/pkg/geometry"
)

// Corner is the joint between two consecutive segments
type Corner struct {
	Index    int // position of the incoming segment
	Vertex   geometry.Vector3
	Angle    float64
	Kind     geometry.AngleKind
	Snapped  float64
	Wrapping bool // joint between the last and first segment of a closed loop
}

// SegmentInfo pairs a segment with its position in the project
type SegmentInfo struct {
	Index   int
	Segment fence.Segment
}

// Options controls corner classification
type Options struct {
	AngleTolerance float64
	SnapIncrement  float64
	Calibrated     bool
	Materials      fence.MaterialParams
}

// DefaultOptions returns the standard drafting tolerances
func DefaultOptions() Options {
	return Options{
		AngleTolerance: geometry.DefaultAngleTolerance,
		SnapIncrement:  geometry.DefaultSnapIncrement,
		Materials:      fence.DefaultMaterialParams(),
	}
}

// ProjectReport bundles everything the CLI prints about a project
type ProjectReport struct {
	Project    *fence.Project
	Summary    fence.Summary
	Materials  fence.MaterialEstimate
	Corners    []Corner
	Violations []string
}

// AnalyzeProject computes the summary, material estimate, corner angles
// and validation results for a project.
func AnalyzeProject(project *fence.Project, opts Options) *ProjectReport {
	segments := project.Segments
	if opts.Calibrated {
		segments = project.CalibratedSegments()
	}

	summary := fence.SummarizeSegments(segments)

	violations := fence.ValidateProject(*project)
	violations = append(violations, fence.ValidateProjectSegments(*project)...)

	return &ProjectReport{
		Project:    project,
		Summary:    summary,
		Materials:  fence.EstimateMaterials(summary.TotalLinearFeet, project.GateCount, opts.Materials),
		Corners:    FindCorners(segments, opts),
		Violations: violations,
	}
}

// FindCorners measures the angle at every joint where a segment ends at
// the next one's start. Closed loops also report the joint back to the
// first segment.
func FindCorners(segments []fence.Segment, opts Options) []Corner {
	var corners []Corner

	add := func(i int, in, out fence.Segment, wrapping bool) {
		if in.Start == nil || in.End == nil || out.Start == nil || out.End == nil {
			return
		}
		if geometry.Distance3D(*in.End, *out.Start) > fence.ClosureToleranceMeters {
			return
		}
		angle := geometry.VertexAngle(*in.Start, *in.End, *out.End)
		corners = append(corners, Corner{
			Index:    i,
			Vertex:   *in.End,
			Angle:    angle,
			Kind:     geometry.ClassifyAngle(angle, opts.AngleTolerance),
			Snapped:  geometry.SnapAngle(angle, opts.SnapIncrement),
			Wrapping: wrapping,
		})
	}

	for i := 0; i+1 < len(segments); i++ {
		add(i, segments[i], segments[i+1], false)
	}
	if len(segments) > 2 && fence.IsClosedLoop(segments) {
		add(len(segments)-1, segments[len(segments)-1], segments[0], true)
	}

	return corners
}

// FindLongestSegments returns the N longest segments by cached length
func FindLongestSegments(segments []fence.Segment, count int) []SegmentInfo {
	return rankSegments(segments, count, func(a, b float64) bool { return a > b })
}

// FindShortestSegments returns the N shortest segments by cached length
func FindShortestSegments(segments []fence.Segment, count int) []SegmentInfo {
	return rankSegments(segments, count, func(a, b float64) bool { return a < b })
}

func rankSegments(segments []fence.Segment, count int, less func(a, b float64) bool) []SegmentInfo {
	infos := make([]SegmentInfo, len(segments))
	for i, s := range segments {
		infos[i] = SegmentInfo{Index: i, Segment: s}
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return less(infos[i].Segment.Length(), infos[j].Segment.Length())
	})

	if count < 0 {
		count = 0
	}
	if count > len(infos) {
		count = len(infos)
	}
	return infos[:count]
}

// FormatVector formats a 3D point in meters
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
