package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/pattern"
)

// Lighting evaluates the Phong model for one light at point. A shadowed
// point only receives the ambient term.
func (m Material) Lighting(light lights.PointLight, obj pattern.ObjectSpace, point core.Point, eye, normal core.Vector, inShadow bool) core.Color {
	base := m.Pattern.ColorAtObject(obj, point).MultiplyColor(light.Intensity)
	ambient := base.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightDir := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal <= 0 {
		// light is on the other side of the surface
		return ambient
	}

	diffuse := base.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black()
	reflectDotEye := lightDir.Negate().Reflect(normal).Dot(eye)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
