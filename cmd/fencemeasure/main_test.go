package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/fencemeasure/pkg/fence"
	"github.com/philipparndt/fencemeasure/pkg/geometry"
	"github.com/philipparndt/fencemeasure/pkg/project"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, geometry.NewVector3(1, 2, 3), p)

	_, err = parsePoint([]float64{1, 2})
	assert.Error(t, err)
}

func TestWriteMeasurement(t *testing.T) {
	var buf bytes.Buffer
	writeMeasurement(&buf, geometry.NewVector3(0, 0, 0), geometry.NewVector3(3, 1, 4), 1.0, 1.0)
	out := buf.String()

	assert.Contains(t, out, "Horizontal run: 5.00 m (16.40 ft)")
	assert.Contains(t, out, "Slope: 20.00% (11.31°)")
	assert.NotContains(t, out, "Calibration factor")
}

func TestWriteMeasurementCalibrated(t *testing.T) {
	var buf bytes.Buffer
	writeMeasurement(&buf, geometry.NewVector3(0, 0, 0), geometry.NewVector3(10, 0, 0), 0.5, 1.0)

	assert.Contains(t, buf.String(), "Direct distance: 5.00 m")
	assert.Contains(t, buf.String(), "Calibration factor: 0.5000")
}

func TestWriteAngle(t *testing.T) {
	var buf bytes.Buffer
	writeAngle(&buf,
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 0, 1),
		5, 45)
	out := buf.String()

	assert.Contains(t, out, "Angle: 90.00°")
	assert.Contains(t, out, "Kind: right")
	assert.Contains(t, out, "Snapped: 90°")
}

func TestReportProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	p := &fence.Project{ProjectName: "Backyard", ClientName: "Jordan Lee", SiteAddress: "12 Elm St"}
	updated := p.WithSegment(fence.NewSegment(geometry.NewVector3(0, 0, 0), geometry.NewVector3(10, 0, 0), 0.9))
	require.NoError(t, project.Save(path, &updated))

	var buf bytes.Buffer
	require.NoError(t, reportProject(&buf, path))
	out := buf.String()

	assert.Contains(t, out, "Project: Backyard")
	assert.Contains(t, out, "Segments: 1")
	assert.Contains(t, out, "Perimeter: open run")

	require.NoError(t, os.Remove(path))
	assert.Error(t, reportProject(&buf, path))
}

func TestAnalysisOptionsUseConfig(t *testing.T) {
	opts := analysisOptions()
	assert.Equal(t, geometry.DefaultAngleTolerance, opts.AngleTolerance)
	assert.Equal(t, geometry.DefaultSnapIncrement, opts.SnapIncrement)
	assert.Equal(t, fence.DefaultMaterialParams(), opts.Materials)
}
