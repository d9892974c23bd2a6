package fence

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/fencemeasure/pkg/geometry"
)

func TestNewSegmentCachesDerivedFields(t *testing.T) {
	t.Parallel()

	start := geometry.NewVector3(0, 0, 0)
	end := geometry.NewVector3(3, 1, 4)
	s := NewSegment(start, end, 0.9)

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)
	require.NotNil(t, s.LengthFeet)
	require.NotNil(t, s.LengthInches)

	meters := geometry.Distance3D(start, end)
	assert.InDelta(t, meters*3.28084, *s.LengthFeet, 1e-9)
	assert.InDelta(t, *s.LengthFeet*12, *s.LengthInches, 1e-9)
	assert.Equal(t, 20.0, s.SlopePercent)
	assert.Equal(t, 11.31, s.SlopeDegrees)
	assert.Equal(t, 0.9, s.Confidence())
	assert.Empty(t, ValidateSegment(s))
}

func TestNewSegmentIDsAreUnique(t *testing.T) {
	t.Parallel()

	p := geometry.NewVector3(1, 0, 0)
	a := NewSegment(geometry.Vector3{}, p, 1)
	b := NewSegment(geometry.Vector3{}, p, 1)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSegmentCalibratedReturnsCopy(t *testing.T) {
	t.Parallel()

	original := NewSegment(geometry.Vector3{}, geometry.NewVector3(1, 0, 0), 1)
	before := *original.LengthFeet

	corrected := original.Calibrated(0.5)

	assert.Equal(t, before, *original.LengthFeet)
	assert.InDelta(t, before*0.5, corrected.Length(), 1e-12)
	assert.InDelta(t, before*6, *corrected.LengthInches, 1e-9)
	assert.Equal(t, original.ID, corrected.ID)
}

func TestSegmentCalibratedWithoutLength(t *testing.T) {
	t.Parallel()

	corrected := Segment{}.Calibrated(2)
	assert.Nil(t, corrected.LengthFeet)
	assert.Nil(t, corrected.LengthInches)
}

func TestNewCalibration(t *testing.T) {
	t.Parallel()

	cal := NewCalibration(10, 10.5, 0.95)
	assert.InDelta(t, 10/10.5, cal.Factor, 1e-12)
	assert.Equal(t, 0.95, cal.Confidence)

	assert.Equal(t, 1.0, NewCalibration(10, 0, 1).Factor)
}

func TestProjectCalibratedSegments(t *testing.T) {
	t.Parallel()

	project := Project{Segments: unitSquare()}
	assert.Equal(t, project.Segments, project.CalibratedSegments())

	cal := NewCalibration(2, 1, 1)
	project.Calibration = &cal
	corrected := project.CalibratedSegments()
	assert.InDelta(t, 8.0, TotalLength(corrected), 1e-12)
	assert.InDelta(t, 4.0, TotalLength(project.Segments), 1e-12)
}

func TestProjectWithSegment(t *testing.T) {
	t.Parallel()

	project := Project{Segments: unitSquare()[:2]}
	extra := NewSegment(geometry.Vector3{}, geometry.NewVector3(0, 0, 1), 1)

	updated := project.WithSegment(extra)

	assert.Len(t, project.Segments, 2)
	require.Len(t, updated.Segments, 3)
	assert.Equal(t, extra.ID, updated.Segments[2].ID)
}
