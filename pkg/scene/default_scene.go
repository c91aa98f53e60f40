package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/pattern"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/transform"
)

const (
	defaultWidth  = 400
	defaultHeight = 200
)

// mustApply commits a builder onto a target. Builtin scenes only use
// invertible transforms, so a failure is a programming error.
func mustApply(b *transform.Builder, target transform.Transformable) {
	if err := b.Apply(target); err != nil {
		panic(err)
	}
}

// newCamera creates a camera at from looking at to with +y up
func newCamera(from, to core.Point) *renderer.Camera {
	camera := renderer.NewCamera(defaultWidth, defaultHeight, math.Pi/3)
	mustApply(transform.New().ViewOrientation(from, to, core.NewVector(0, 1, 0)), camera)
	return camera
}

// NewDefaultScene creates three spheres on a striped floor in front of a
// mirrored back wall
func NewDefaultScene() *Scene {
	w := NewWorld()

	floorPattern := pattern.NewStripe(core.NewColor(1, 0.9, 0.9), core.NewColor(0.8, 0.7, 0.7))
	mustApply(transform.New().RotateY(math.Pi/4).Scale(0.5, 0.5, 0.5), &floorPattern)
	floor := geometry.NewPlane().WithMaterial(material.NewMaterial(
		material.WithPattern(floorPattern),
		material.WithSpecular(0),
		material.WithReflective(0.1),
	))

	wall := geometry.NewPlane().WithMaterial(material.NewMaterial(
		material.WithColor(core.NewColor(0.2, 0.2, 0.25)),
		material.WithSpecular(0.5),
		material.WithReflective(0.6),
	))
	mustApply(transform.New().RotateX(math.Pi/2).Translate(0, 0, 10), wall)

	middle := geometry.NewSphere().WithMaterial(material.NewMaterial(
		material.WithColor(core.NewColor(0.1, 1, 0.5)),
		material.WithDiffuse(0.7),
		material.WithSpecular(0.3),
	))
	mustApply(transform.New().Translate(-0.5, 1, 0.5), middle)

	right := geometry.NewSphere().WithMaterial(material.NewMaterial(
		material.WithPattern(pattern.NewRing(core.NewColor(0.5, 1, 0.1), core.NewColor(0.9, 0.9, 0.2))),
		material.WithDiffuse(0.7),
		material.WithSpecular(0.3),
	))
	mustApply(transform.New().Scale(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5), right)

	left := geometry.NewSphere().WithMaterial(material.NewMaterial(
		material.WithColor(core.NewColor(1, 0.8, 0.1)),
		material.WithDiffuse(0.7),
		material.WithSpecular(0.3),
		material.WithReflective(0.2),
	))
	mustApply(transform.New().Scale(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75), left)

	w.AddShape(floor, wall, middle, right, left)
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))

	return &Scene{
		Name:   "default",
		World:  w,
		Camera: newCamera(core.NewPoint(0, 1.5, -5), core.NewPoint(0, 1, 0)),
	}
}

// NewRefractionScene creates a glass sphere holding an air bubble above a
// checkered floor
func NewRefractionScene() *Scene {
	w := NewWorld(WithDepth(5))

	floor := geometry.NewPlane().WithMaterial(material.NewMaterial(
		material.WithPattern(pattern.NewChecker(core.White(), core.NewColor(0.15, 0.15, 0.15))),
		material.WithSpecular(0),
	))
	mustApply(transform.New().Translate(0, -1, 0), floor)

	glassMaterial := material.NewMaterial(
		material.WithColor(core.Black()),
		material.WithAmbient(0),
		material.WithDiffuse(0.1),
		material.WithSpecular(1),
		material.WithShininess(300),
		material.WithReflective(0.9),
		material.WithTransparency(0.9),
		material.WithRefractiveIndex(material.Glass),
	)
	glass := geometry.NewSphere().WithMaterial(glassMaterial)

	bubbleMaterial := glassMaterial
	bubbleMaterial.RefractiveIndex = material.Air
	bubble := geometry.NewSphere().WithMaterial(bubbleMaterial)
	mustApply(transform.New().Scale(0.5, 0.5, 0.5), bubble)

	water := geometry.NewCube().WithMaterial(material.NewMaterial(
		material.WithColor(core.NewColor(0, 0.05, 0.1)),
		material.WithAmbient(0),
		material.WithDiffuse(0.2),
		material.WithReflective(0.3),
		material.WithTransparency(0.8),
		material.WithRefractiveIndex(material.Water),
	))
	mustApply(transform.New().Scale(0.6, 0.6, 0.6).RotateY(math.Pi/6).Translate(2.2, -0.4, 1.5), water)

	w.AddShape(floor, glass, bubble, water)
	w.AddLight(lights.NewPointLight(core.NewPoint(2, 10, -5), core.NewColor(0.9, 0.9, 0.9)))

	return &Scene{
		Name:   "refraction",
		World:  w,
		Camera: newCamera(core.NewPoint(0, 1.5, -5), core.NewPoint(0, 0, 0)),
	}
}

// NewCubesScene creates a few transformed cubes and a triangle in a room
func NewCubesScene() *Scene {
	w := NewWorld()

	floor := geometry.NewPlane().WithMaterial(material.NewMaterial(
		material.WithPattern(pattern.NewChecker(core.NewColor(0.35, 0.35, 0.35), core.NewColor(0.65, 0.65, 0.65))),
		material.WithSpecular(0),
		material.WithReflective(0.1),
	))

	room := geometry.NewCube().WithMaterial(material.NewMaterial(
		material.WithPattern(pattern.NewGradient(core.NewColor(0.8, 0.4, 0.2), core.NewColor(0.2, 0.4, 0.8))),
		material.WithSpecular(0),
	))
	mustApply(transform.New().Scale(12, 12, 12).Translate(0, 11.99, 0), room)

	red := geometry.NewCube().WithMaterial(material.NewMaterial(
		material.WithColor(core.NewColor(0.9, 0.2, 0.2)),
		material.WithReflective(0.2),
	))
	mustApply(transform.New().Scale(0.5, 0.5, 0.5).RotateY(math.Pi/5).Translate(-1.5, 0.5, 0.5), red)

	sheared := geometry.NewCube().WithMaterial(material.NewMaterial(
		material.WithColor(core.NewColor(0.2, 0.9, 0.3)),
	))
	mustApply(transform.New().Scale(0.4, 0.8, 0.4).Shear(0.5, 0, 0, 0, 0, 0).Translate(1.2, 0.8, 0), sheared)

	glass := geometry.NewCube().WithMaterial(material.NewMaterial(
		material.WithColor(core.Black()),
		material.WithAmbient(0),
		material.WithDiffuse(0.1),
		material.WithReflective(0.5),
		material.WithTransparency(0.8),
		material.WithRefractiveIndex(material.Diamond),
	))
	mustApply(transform.New().Scale(0.3, 0.3, 0.3).RotateX(math.Pi/4).RotateZ(math.Pi/4).Translate(0, 0.6, -1.5), glass)

	tri := geometry.NewTriangle(
		core.NewPoint(-1, 0, 0),
		core.NewPoint(1, 0, 0),
		core.NewPoint(0, 1.6, 0),
	).WithMaterial(material.NewMaterial(
		material.WithColor(core.NewColor(1, 0.85, 0.2)),
		material.WithSpecular(0.6),
	))
	mustApply(transform.New().Translate(0, 0, 2.5), tri)

	w.AddShape(floor, room, red, sheared, glass, tri)
	w.AddLight(
		lights.NewPointLight(core.NewPoint(-6, 8, -8), core.NewColor(0.7, 0.7, 0.7)),
		lights.NewPointLight(core.NewPoint(6, 6, -6), core.NewColor(0.3, 0.3, 0.35)),
	)

	return &Scene{
		Name:   "cubes",
		World:  w,
		Camera: newCamera(core.NewPoint(0, 2.5, -6), core.NewPoint(0, 0.6, 0)),
	}
}
