package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// NewTriangle creates a triangle from three object-space vertices. The edges
// and the flat normal are computed once here.
func NewTriangle(a, b, c core.Point) *Shape {
	s := newShape(Triangle)
	s.a, s.b, s.c = a, b, c
	s.e1 = b.Subtract(a)
	s.e2 = c.Subtract(a)
	s.normal = s.e2.Cross(s.e1).Normalize()
	return s
}

// Vertices returns the three object-space vertices of a triangle
func (s *Shape) Vertices() (core.Point, core.Point, core.Point) {
	return s.a, s.b, s.c
}

// intersectTriangle uses the Möller-Trumbore algorithm
func (s *Shape) intersectTriangle(r core.Ray) []float64 {
	dirCrossE2 := r.Direction.Cross(s.e2)
	det := s.e1.Dot(dirCrossE2)

	// Ray is parallel to the triangle plane
	if math.Abs(det) < core.EpsilonTight {
		return nil
	}

	f := 1.0 / det
	aToOrigin := r.Origin.Subtract(s.a)
	u := f * aToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := aToOrigin.Cross(s.e1)
	v := f * r.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	t := f * s.e2.Dot(originCrossE1)
	return []float64{t}
}
