package geometry

import "math"

// Vector3 is a point or direction in the AR session frame, in meters.
// Y is the vertical axis; X and Z span the ground plane.
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Horizontal returns the plan-view length of the vector, ignoring Y.
func (v Vector3) Horizontal() float64 {
	return math.Sqrt(v.X*v.X + v.Z*v.Z)
}

// Min returns a vector with the minimum components of two vectors
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{
		X: math.Min(v.X, other.X),
		Y: math.Min(v.Y, other.Y),
		Z: math.Min(v.Z, other.Z),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{
		X: math.Max(v.X, other.X),
		Y: math.Max(v.Y, other.Y),
		Z: math.Max(v.Z, other.Z),
	}
}

// Distance3D returns the straight-line distance between two points.
func Distance3D(p1, p2 Vector3) float64 {
	return p2.Sub(p1).Length()
}

// Distance2D returns the distance between the plan-view projections of two
// points onto the X/Z plane.
func Distance2D(p1, p2 Vector3) float64 {
	return p2.Sub(p1).Horizontal()
}

// HorizontalDistance is the horizontal run between two points. It equals
// Distance2D and is what slope calculations divide by.
func HorizontalDistance(p1, p2 Vector3) float64 {
	return Distance2D(p1, p2)
}
