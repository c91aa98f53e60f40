package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// NewSphere creates a unit sphere centred on the object-space origin
func NewSphere() *Shape {
	return newShape(Sphere)
}

// NewGlassSphere creates a unit sphere with a fully transparent glass material
func NewGlassSphere() *Shape {
	s := newShape(Sphere)
	s.Material.Transparency = 1.0
	s.Material.RefractiveIndex = 1.5
	return s
}

func intersectSphere(r core.Ray) []float64 {
	// Vector from sphere center to ray origin
	sphereToRay := r.Origin.Subtract(core.Origin())

	// Quadratic equation coefficients: at² + bt + c = 0
	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return []float64{t1, t2}
}
