package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/matrix"
)

// Kind identifies the primitive a Shape represents
type Kind int

const (
	Sphere Kind = iota
	Plane
	Cube
	Triangle
)

var kindNames = map[Kind]string{
	Sphere:   "sphere",
	Plane:    "plane",
	Cube:     "cube",
	Triangle: "triangle",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape is a tagged variant over the supported primitives. Every shape is
// defined in its own object space and placed in the world by its transform.
type Shape struct {
	Kind     Kind
	Material material.Material

	transform        matrix.Matrix4
	inverse          matrix.Matrix4
	inverseTranspose matrix.Matrix4

	// Triangle data, object space
	a, b, c core.Point
	e1, e2  core.Vector
	normal  core.Vector
}

func newShape(kind Kind) *Shape {
	return &Shape{
		Kind:             kind,
		Material:         material.Default(),
		transform:        matrix.Identity(),
		inverse:          matrix.Identity(),
		inverseTranspose: matrix.Identity(),
	}
}

// Transform returns the object-to-world matrix
func (s *Shape) Transform() matrix.Matrix4 {
	return s.transform
}

// SetTransform replaces the transform and recomputes the cached inverse and
// inverse-transpose. The shape is left untouched when m is singular.
func (s *Shape) SetTransform(m matrix.Matrix4) error {
	inv, err := m.Invert()
	if err != nil {
		return fmt.Errorf("%s transform: %w", s.Kind, err)
	}
	s.transform = m
	s.inverse = inv
	s.inverseTranspose = inv.Transpose()
	return nil
}

// WithMaterial sets the material and returns the shape for chaining
func (s *Shape) WithMaterial(m material.Material) *Shape {
	s.Material = m
	return s
}

// LocalIntersect returns the intersection times of a ray already in object space
func (s *Shape) LocalIntersect(r core.Ray) []float64 {
	switch s.Kind {
	case Sphere:
		return intersectSphere(r)
	case Plane:
		return intersectPlane(r)
	case Cube:
		return intersectCube(r)
	case Triangle:
		return s.intersectTriangle(r)
	default:
		return nil
	}
}

// LocalNormal returns the surface normal at a point already in object space
func (s *Shape) LocalNormal(p core.Point) core.Vector {
	switch s.Kind {
	case Sphere:
		return p.Subtract(core.Origin())
	case Plane:
		return core.NewVector(0, 1, 0)
	case Cube:
		return cubeNormal(p)
	case Triangle:
		return s.normal
	default:
		return core.Vector{}
	}
}

// Intersect converts a world ray into object space and intersects it
func (s *Shape) Intersect(r core.Ray) []float64 {
	return s.LocalIntersect(s.inverse.TransformRay(r))
}

// NormalAt returns the unit world-space normal at a world-space point
func (s *Shape) NormalAt(worldPoint core.Point) core.Vector {
	local := s.LocalNormal(s.WorldToObject(worldPoint))
	return s.inverseTranspose.MultiplyVector(local).Normalize()
}

// WorldToObject maps a world point into object space
func (s *Shape) WorldToObject(p core.Point) core.Point {
	return s.inverse.MultiplyPoint(p)
}

// Bounds returns the world-space bounding box. Planes are unbounded in x and z
// before transformation, so they report an infinite box.
func (s *Shape) Bounds() core.AABB {
	var local core.AABB
	switch s.Kind {
	case Sphere, Cube:
		local = core.NewAABB(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
	case Triangle:
		local = core.NewAABBFromPoints(s.a, s.b, s.c)
	default:
		inf := math.Inf(1)
		return core.NewAABB(core.NewPoint(-inf, -inf, -inf), core.NewPoint(inf, inf, inf))
	}

	world := core.EmptyAABB()
	for _, corner := range local.Corners() {
		world = world.Extend(s.transform.MultiplyPoint(corner))
	}
	return world
}
