package core

// Point represents a position in 3D space. Points receive the translation
// part of an affine transform.
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Origin returns the point (0, 0, 0)
func Origin() Point {
	return Point{}
}

// Add translates the point by a vector
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// SubtractVector translates the point by the negated vector
func (p Point) SubtractVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Subtract returns the vector pointing from other to p
func (p Point) Subtract(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// ApproxEqual compares component-wise within eps
func (p Point) ApproxEqual(other Point, eps float64) bool {
	return ApproxEqual(p.X, other.X, eps) &&
		ApproxEqual(p.Y, other.Y, eps) &&
		ApproxEqual(p.Z, other.Z, eps)
}
