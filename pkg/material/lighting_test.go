package material

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/pattern"
)

// identitySpace leaves points where they are
type identitySpace struct{}

func (identitySpace) WorldToObject(p core.Point) core.Point { return p }

func TestMaterial_Defaults(t *testing.T) {
	m := Default()

	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("Unexpected Phong defaults: %+v", m)
	}
	if m.Reflective != 0 || m.Transparency != 0 || m.RefractiveIndex != 1.0 {
		t.Errorf("Unexpected optical defaults: %+v", m)
	}
	if got := m.Pattern.ColorAt(core.NewPoint(3, 4, 5)); got != core.White() {
		t.Errorf("Expected white default pattern, got %v", got)
	}
}

func TestMaterial_Options(t *testing.T) {
	m := NewMaterial(
		WithColor(core.NewColor(1, 0, 0)),
		WithAmbient(0.5),
		WithReflective(0.3),
		WithTransparency(0.7),
		WithRefractiveIndex(Water),
	)
	if m.Ambient != 0.5 || m.Reflective != 0.3 || m.Transparency != 0.7 || m.RefractiveIndex != Water {
		t.Errorf("Options not applied: %+v", m)
	}
	if !m.IsReflective() || !m.IsTransparent() {
		t.Error("Expected material to be reflective and transparent")
	}
	if Default().IsReflective() || Default().IsTransparent() {
		t.Error("Default material should be opaque and matte")
	}
}

func TestMaterial_Lighting(t *testing.T) {
	m := Default()
	position := core.NewPoint(0, 0, 0)
	half := math.Sqrt2 / 2

	tests := []struct {
		name     string
		eye      core.Vector
		normal   core.Vector
		light    lights.PointLight
		inShadow bool
		expected core.Color
	}{
		{
			name:     "eye between light and surface",
			eye:      core.NewVector(0, 0, -1),
			normal:   core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 0, -10), core.White()),
			expected: core.NewColor(1.9, 1.9, 1.9),
		},
		{
			name:     "eye offset 45 degrees",
			eye:      core.NewVector(0, half, -half),
			normal:   core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 0, -10), core.White()),
			expected: core.NewColor(1.0, 1.0, 1.0),
		},
		{
			name:     "light offset 45 degrees",
			eye:      core.NewVector(0, 0, -1),
			normal:   core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 10, -10), core.White()),
			expected: core.NewColor(0.7364, 0.7364, 0.7364),
		},
		{
			name:     "eye in path of reflection",
			eye:      core.NewVector(0, -half, -half),
			normal:   core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 10, -10), core.White()),
			expected: core.NewColor(1.6364, 1.6364, 1.6364),
		},
		{
			name:     "light behind surface",
			eye:      core.NewVector(0, 0, -1),
			normal:   core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 0, 10), core.White()),
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
		{
			name:     "surface in shadow",
			eye:      core.NewVector(0, 0, -1),
			normal:   core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 0, -10), core.White()),
			inShadow: true,
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Lighting(tt.light, identitySpace{}, position, tt.eye, tt.normal, tt.inShadow)
			if !got.ApproxEqual(tt.expected, core.EpsilonLoose) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMaterial_LightingWithPattern(t *testing.T) {
	m := NewMaterial(
		WithPattern(pattern.NewStripe(core.White(), core.Black())),
		WithAmbient(1),
		WithDiffuse(0),
		WithSpecular(0),
	)
	eye := core.NewVector(0, 0, -1)
	normal := core.NewVector(0, 0, -1)
	light := lights.NewPointLight(core.NewPoint(0, 0, -10), core.White())

	c1 := m.Lighting(light, identitySpace{}, core.NewPoint(0.9, 0, 0), eye, normal, false)
	c2 := m.Lighting(light, identitySpace{}, core.NewPoint(1.1, 0, 0), eye, normal, false)

	if !c1.ApproxEqual(core.White(), core.EpsilonTight) {
		t.Errorf("Expected white, got %v", c1)
	}
	if !c2.ApproxEqual(core.Black(), core.EpsilonTight) {
		t.Errorf("Expected black, got %v", c2)
	}
}
