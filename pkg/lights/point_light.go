package lights

import "github.com/df07/go-recursive-raytracer/pkg/core"

// PointLight is an infinitely small light with no size and no falloff
type PointLight struct {
	Intensity core.Color
	Position  core.Point
}

// NewPointLight creates a point light
func NewPointLight(position core.Point, intensity core.Color) PointLight {
	return PointLight{Intensity: intensity, Position: position}
}

// DirectionFrom returns the unit vector from point toward the light and the
// distance between them
func (l PointLight) DirectionFrom(point core.Point) (core.Vector, float64) {
	toLight := l.Position.Subtract(point)
	distance := toLight.Length()
	return toLight.Normalize(), distance
}
