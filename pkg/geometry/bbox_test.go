package geometry

import (
	"math"
	"testing"
)

func TestComputeBoundingBoxEmpty(t *testing.T) {
	if box := ComputeBoundingBox(nil); box != nil {
		t.Errorf("expected nil bounding box for no points, got %+v", box)
	}
	if box := ComputeBoundingBox([]Vector3{}); box != nil {
		t.Errorf("expected nil bounding box for empty slice, got %+v", box)
	}
}

func TestComputeBoundingBox(t *testing.T) {
	box := ComputeBoundingBox([]Vector3{
		NewVector3(1, 0, -2),
		NewVector3(-3, 2, 4),
		NewVector3(5, 1, 0),
	})
	if box == nil {
		t.Fatal("expected bounding box, got nil")
	}

	if box.Min != NewVector3(-3, 0, -2) {
		t.Errorf("Min failed: got %v", box.Min)
	}
	if box.Max != NewVector3(5, 2, 4) {
		t.Errorf("Max failed: got %v", box.Max)
	}
	if box.Center != NewVector3(1, 1, 1) {
		t.Errorf("Center failed: got %v", box.Center)
	}
	if box.Width != 8 || box.Height != 2 || box.Depth != 6 {
		t.Errorf("Size failed: got width=%v height=%v depth=%v", box.Width, box.Height, box.Depth)
	}

	expectedDiagonal := math.Sqrt(64 + 4 + 36)
	if math.Abs(box.Diagonal()-expectedDiagonal) > 1e-10 {
		t.Errorf("Diagonal failed: expected %v, got %v", expectedDiagonal, box.Diagonal())
	}
}

func TestComputeBoundingBoxSinglePoint(t *testing.T) {
	p := NewVector3(2, 3, 4)
	box := ComputeBoundingBox([]Vector3{p})
	if box == nil {
		t.Fatal("expected bounding box, got nil")
	}
	if box.Min != p || box.Max != p || box.Center != p {
		t.Errorf("single point box failed: %+v", box)
	}
	if box.Width != 0 || box.Height != 0 || box.Depth != 0 {
		t.Errorf("single point box should have zero size: %+v", box)
	}
}
