package intersect

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Details is the shading context precomputed for one hit
type Details struct {
	T      float64
	Object *geometry.Shape

	Point      core.Point
	OverPoint  core.Point // nudged along the normal, origin for shadow and reflection rays
	UnderPoint core.Point // nudged against the normal, origin for refraction rays

	Eye     core.Vector
	Normal  core.Vector
	Reflect core.Vector
	Inside  bool

	N1 float64 // refractive index being exited
	N2 float64 // refractive index being entered
}

// Prepare computes the shading context for hit. xs must be the full sorted
// list the hit was chosen from; it is walked to find n1 and n2.
func Prepare(hit Intersection, r core.Ray, xs Intersections) Details {
	point := r.Position(hit.T)
	eye := r.Direction.Negate()
	normal := hit.Object.NormalAt(point)

	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Negate()
	}

	offset := normal.Multiply(core.EpsilonLoose)
	n1, n2 := refractiveIndices(hit, xs)

	return Details{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		OverPoint:  point.Add(offset),
		UnderPoint: point.SubtractVector(offset),
		Eye:        eye,
		Normal:     normal,
		Reflect:    r.Direction.Reflect(normal),
		Inside:     inside,
		N1:         n1,
		N2:         n2,
	}
}

// refractiveIndices walks xs with a containment stack of the shapes the ray
// is inside. Shapes are identified by pointer.
func refractiveIndices(hit Intersection, xs Intersections) (float64, float64) {
	n1, n2 := material.Vacuum, material.Vacuum
	var containers []*geometry.Shape

	top := func() float64 {
		if len(containers) == 0 {
			return material.Vacuum
		}
		return containers[len(containers)-1].Material.RefractiveIndex
	}

	for _, x := range xs {
		isHit := x == hit
		if isHit {
			n1 = top()
		}

		if i := indexOf(containers, x.Object); i >= 0 {
			containers = append(containers[:i], containers[i+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			n2 = top()
			break
		}
	}
	return n1, n2
}

func indexOf(shapes []*geometry.Shape, s *geometry.Shape) int {
	for i, candidate := range shapes {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit
func Schlick(d Details) float64 {
	cos := d.Eye.Dot(d.Normal)

	if d.N1 > d.N2 {
		ratio := d.N1 / d.N2
		sin2T := ratio * ratio * (1 - cos*cos)
		if sin2T > 1 {
			// total internal reflection
			return 1.0
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (d.N1 - d.N2) / (d.N1 + d.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
