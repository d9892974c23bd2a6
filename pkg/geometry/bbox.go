package geometry

// BoundingBox is the axis-aligned extent of a set of points
type BoundingBox struct {
	Min    Vector3 `json:"min"`
	Max    Vector3 `json:"max"`
	Center Vector3 `json:"center"`
	Width  float64 `json:"width"`  // X extent
	Height float64 `json:"height"` // Y extent
	Depth  float64 `json:"depth"`  // Z extent
}

// ComputeBoundingBox returns the bounding box of points, or nil when there
// are none.
func ComputeBoundingBox(points []Vector3) *BoundingBox {
	if len(points) == 0 {
		return nil
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}

	size := hi.Sub(lo)
	return &BoundingBox{
		Min:    lo,
		Max:    hi,
		Center: lo.Add(hi).Mul(0.5),
		Width:  size.X,
		Height: size.Y,
		Depth:  size.Z,
	}
}

// Diagonal returns the length of the box diagonal
func (b *BoundingBox) Diagonal() float64 {
	return Distance3D(b.Min, b.Max)
}
