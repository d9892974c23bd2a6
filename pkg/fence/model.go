// Package fence derives lengths, areas and material estimates from fence
// runs captured by an AR measuring session.
//
// All functions are pure: records are never modified in place and every
// degenerate input maps to a zero, nil or default result instead of an
// error, so partially captured projects can be summarized at any time.
package fence

import (
	"github.com/google/uuid"

	"github.com/philipparndt/fencemeasure/pkg/geometry"
	"github.com/philipparndt/fencemeasure/pkg/units"
)

// Segment is one straight fence run. Optional fields are pointers so an
// unpopulated value can be told apart from zero.
type Segment struct {
	ID              string            `json:"id,omitempty" yaml:"id,omitempty"`
	Start           *geometry.Vector3 `json:"start,omitempty" yaml:"start,omitempty"`
	End             *geometry.Vector3 `json:"end,omitempty" yaml:"end,omitempty"`
	LengthFeet      *float64          `json:"length_feet,omitempty" yaml:"length_feet,omitempty"`
	LengthInches    *float64          `json:"length_inches,omitempty" yaml:"length_inches,omitempty"`
	SlopePercent    float64           `json:"slope_percent,omitempty" yaml:"slope_percent,omitempty"`
	SlopeDegrees    float64           `json:"slope_degrees,omitempty" yaml:"slope_degrees,omitempty"`
	ConfidenceScore *float64          `json:"confidence_score,omitempty" yaml:"confidence_score,omitempty"`
	Style           string            `json:"style,omitempty" yaml:"style,omitempty"`
	HeightFeet      float64           `json:"height_feet,omitempty" yaml:"height_feet,omitempty"`
	PostType        string            `json:"post_type,omitempty" yaml:"post_type,omitempty"`
	Terrain         string            `json:"terrain,omitempty" yaml:"terrain,omitempty"`
}

// CalibrationData records a correction derived from measuring a known
// reference length.
type CalibrationData struct {
	ReferenceLength float64 `json:"reference_length" yaml:"reference_length"`
	MeasuredLength  float64 `json:"measured_length" yaml:"measured_length"`
	Factor          float64 `json:"factor" yaml:"factor"`
	Confidence      float64 `json:"confidence" yaml:"confidence"`
}

// Project is a site with its captured fence runs
type Project struct {
	ID          string           `json:"id,omitempty" yaml:"id,omitempty"`
	ProjectName string           `json:"project_name" yaml:"project_name"`
	ClientName  string           `json:"client_name" yaml:"client_name"`
	SiteAddress string           `json:"site_address" yaml:"site_address"`
	GateCount   int              `json:"gate_count,omitempty" yaml:"gate_count,omitempty"`
	Calibration *CalibrationData `json:"calibration,omitempty" yaml:"calibration,omitempty"`
	Segments    []Segment        `json:"segments" yaml:"segments"`
}

// NewSegment creates a segment from two captured points. Length and slope
// are computed once here and cached on the record.
func NewSegment(start, end geometry.Vector3, confidence float64) Segment {
	feet := units.MetersToFeet(geometry.Distance3D(start, end))
	inches := units.FeetToInches(feet)

	return Segment{
		ID:              uuid.NewString(),
		Start:           &start,
		End:             &end,
		LengthFeet:      &feet,
		LengthInches:    &inches,
		SlopePercent:    geometry.SlopePercent(start, end),
		SlopeDegrees:    geometry.SlopeAngleDegrees(start, end),
		ConfidenceScore: &confidence,
	}
}

// NewCalibration derives a CalibrationData from a reference length and the
// length the sensor reported for it.
func NewCalibration(referenceLength, measuredLength, confidence float64) CalibrationData {
	return CalibrationData{
		ReferenceLength: referenceLength,
		MeasuredLength:  measuredLength,
		Factor:          geometry.CalibrationFactor(referenceLength, measuredLength),
		Confidence:      confidence,
	}
}

// Length returns the cached length in feet, or 0 if it was never computed.
func (s Segment) Length() float64 {
	if s.LengthFeet == nil {
		return 0
	}
	return *s.LengthFeet
}

// Confidence returns the confidence score, or 0 if none was reported.
func (s Segment) Confidence() float64 {
	if s.ConfidenceScore == nil {
		return 0
	}
	return *s.ConfidenceScore
}

// Calibrated returns a copy of the segment with its cached lengths scaled
// by factor. The receiver is left untouched.
func (s Segment) Calibrated(factor float64) Segment {
	out := s
	if s.LengthFeet != nil {
		feet := geometry.ApplyCalibration(*s.LengthFeet, factor)
		out.LengthFeet = &feet
	}
	if s.LengthInches != nil {
		inches := geometry.ApplyCalibration(*s.LengthInches, factor)
		out.LengthInches = &inches
	}
	return out
}

// CalibratedSegments returns the project's segments corrected by its
// calibration factor. Projects without calibration are returned as is.
func (p Project) CalibratedSegments() []Segment {
	if p.Calibration == nil {
		return p.Segments
	}
	out := make([]Segment, len(p.Segments))
	for i, s := range p.Segments {
		out[i] = s.Calibrated(p.Calibration.Factor)
	}
	return out
}

// WithSegment returns a copy of the project with segment appended.
func (p Project) WithSegment(segment Segment) Project {
	out := p
	out.Segments = make([]Segment, len(p.Segments), len(p.Segments)+1)
	copy(out.Segments, p.Segments)
	out.Segments = append(out.Segments, segment)
	return out
}
