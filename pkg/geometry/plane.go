package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// NewPlane creates the object-space xz plane with normal +y
func NewPlane() *Shape {
	return newShape(Plane)
}

// intersectPlane treats parallel and coplanar rays as misses
func intersectPlane(r core.Ray) []float64 {
	if math.Abs(r.Direction.Y) <= core.EpsilonTight {
		return nil
	}
	return []float64{-r.Origin.Y / r.Direction.Y}
}
