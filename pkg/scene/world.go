package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/intersect"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/matrix"
)

// DefaultRecursiveDepth bounds reflection and refraction recursion
const DefaultRecursiveDepth = 4

// World is the set of shapes and lights being rendered. It is read-only
// while a render is in progress.
type World struct {
	Shapes         []*geometry.Shape
	Lights         []lights.PointLight
	RecursiveDepth int
	Fresnel        bool // blend reflection and refraction by Schlick reflectance
}

// Option configures a World
type Option func(*World)

// WithDepth sets the maximum recursion depth for ColorAt
func WithDepth(depth int) Option {
	return func(w *World) { w.RecursiveDepth = depth }
}

// WithFresnel toggles Schlick blending for reflective transparent materials
func WithFresnel(enabled bool) Option {
	return func(w *World) { w.Fresnel = enabled }
}

// NewWorld creates an empty world
func NewWorld(opts ...Option) *World {
	w := &World{RecursiveDepth: DefaultRecursiveDepth}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// AddShape appends shapes to the world
func (w *World) AddShape(shapes ...*geometry.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// AddLight appends lights to the world
func (w *World) AddLight(ls ...lights.PointLight) {
	w.Lights = append(w.Lights, ls...)
}

// Intersect returns every intersection of r with the world, sorted by time
func (w *World) Intersect(r core.Ray) intersect.Intersections {
	var xs intersect.Intersections
	for _, s := range w.Shapes {
		xs = append(xs, intersect.FromTimes(s, s.Intersect(r))...)
	}
	xs.Sort()
	return xs
}

// IsShadowed reports whether point is occluded from any light
func (w *World) IsShadowed(point core.Point) bool {
	for _, light := range w.Lights {
		if w.IsShadowedFrom(point, light) {
			return true
		}
	}
	return false
}

// IsShadowedFrom reports whether something sits between point and light
func (w *World) IsShadowedFrom(point core.Point, light lights.PointLight) bool {
	direction, distance := light.DirectionFrom(point)
	hit, ok := w.Intersect(core.NewRay(point, direction)).Hit()
	return ok && hit.T < distance
}

// ShadeHit sums local illumination over every light, then adds the
// reflected and refracted contributions once
func (w *World) ShadeHit(d intersect.Details, depth int) core.Color {
	m := d.Object.Material

	surface := core.Black()
	for _, light := range w.Lights {
		shadowed := w.IsShadowedFrom(d.OverPoint, light)
		surface = surface.Add(m.Lighting(light, d.Object, d.OverPoint, d.Eye, d.Normal, shadowed))
	}

	reflected := w.ReflectedColor(d, depth)
	refracted := w.RefractedColor(d, depth)

	if w.Fresnel && m.IsReflective() && m.IsTransparent() {
		reflectance := intersect.Schlick(d)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the mirror ray from the hit
func (w *World) ReflectedColor(d intersect.Details, depth int) core.Color {
	m := d.Object.Material
	if depth <= 0 || !m.IsReflective() {
		return core.Black()
	}
	r := core.NewRay(d.OverPoint, d.Reflect)
	return w.ColorAtDepth(r, depth-1).Multiply(m.Reflective)
}

// RefractedColor traces the transmitted ray using Snell's law. Total
// internal reflection contributes nothing.
func (w *World) RefractedColor(d intersect.Details, depth int) core.Color {
	m := d.Object.Material
	if depth <= 0 || !m.IsTransparent() {
		return core.Black()
	}

	ratio := d.N1 / d.N2
	cosI := d.Eye.Dot(d.Normal)
	sin2T := ratio * ratio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black()
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := d.Normal.Multiply(ratio*cosI - cosT).Subtract(d.Eye.Multiply(ratio))
	r := core.NewRay(d.UnderPoint, direction)
	return w.ColorAtDepth(r, depth-1).Multiply(m.Transparency)
}

// ColorAt traces r with the world's recursion depth
func (w *World) ColorAt(r core.Ray) core.Color {
	return w.ColorAtDepth(r, w.RecursiveDepth)
}

// ColorAtDepth traces r with an explicit remaining depth. Rays that hit
// nothing are black.
func (w *World) ColorAtDepth(r core.Ray, depth int) core.Color {
	xs := w.Intersect(r)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black()
	}
	return w.ShadeHit(intersect.Prepare(hit, r, xs), depth)
}

// NewDefaultWorld returns two concentric spheres lit from the upper left
func NewDefaultWorld(opts ...Option) *World {
	w := NewWorld(opts...)

	outer := geometry.NewSphere().WithMaterial(material.NewMaterial(
		material.WithColor(core.NewColor(0.8, 1.0, 0.6)),
		material.WithDiffuse(0.7),
		material.WithSpecular(0.2),
	))

	inner := geometry.NewSphere()
	// Scaling by a non-zero factor is always invertible
	_ = inner.SetTransform(matrix.Scaling(0.5, 0.5, 0.5))

	w.AddShape(outer, inner)
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))
	return w
}
