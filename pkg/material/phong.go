package material

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/pattern"
)

// Material holds the Phong coefficients of a surface plus its pattern
type Material struct {
	Pattern         pattern.Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// Option customises a material created by NewMaterial
type Option func(*Material)

// Default returns a white, opaque, non-reflective material
func Default() Material {
	return Material{
		Pattern:         pattern.NewPlain(core.White()),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: Vacuum,
	}
}

// NewMaterial starts from Default and applies options in order
func NewMaterial(opts ...Option) Material {
	m := Default()
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// WithColor replaces the pattern with a plain colour
func WithColor(c core.Color) Option {
	return func(m *Material) { m.Pattern = pattern.NewPlain(c) }
}

// WithPattern sets the surface pattern
func WithPattern(p pattern.Pattern) Option {
	return func(m *Material) { m.Pattern = p }
}

func WithAmbient(v float64) Option   { return func(m *Material) { m.Ambient = v } }
func WithDiffuse(v float64) Option   { return func(m *Material) { m.Diffuse = v } }
func WithSpecular(v float64) Option  { return func(m *Material) { m.Specular = v } }
func WithShininess(v float64) Option { return func(m *Material) { m.Shininess = v } }
func WithReflective(v float64) Option {
	return func(m *Material) { m.Reflective = v }
}
func WithTransparency(v float64) Option {
	return func(m *Material) { m.Transparency = v }
}
func WithRefractiveIndex(v float64) Option {
	return func(m *Material) { m.RefractiveIndex = v }
}

// IsReflective reports a non-zero reflective coefficient
func (m Material) IsReflective() bool {
	return !core.FloatEqualLoose(m.Reflective, 0)
}

// IsTransparent reports a non-zero transparency
func (m Material) IsTransparent() bool {
	return !core.FloatEqualLoose(m.Transparency, 0)
}
