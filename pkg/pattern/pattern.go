// Package pattern computes spatially varying colours in pattern space.
package pattern

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/matrix"
)

// Kind tags the pattern variant
type Kind int

const (
	Plain Kind = iota
	Stripe
	Gradient
	Ring
	Checker
	Test
)

var kindNames = map[Kind]string{
	Plain:    "plain",
	Stripe:   "stripe",
	Gradient: "gradient",
	Ring:     "ring",
	Checker:  "checker",
	Test:     "test",
}

// String returns the lower-case kind name used in scene files
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a scene-file name back to its Kind
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return Plain, false
}

// ObjectSpace converts world points into a shape's local space
type ObjectSpace interface {
	WorldToObject(p core.Point) core.Point
}

// Pattern is a tagged variant over the supported colour functions. It owns
// its transform and a cached inverse.
type Pattern struct {
	Kind Kind
	A    core.Color // first colour; the only colour for Plain
	B    core.Color // second colour

	transform matrix.Matrix4
	inverse   matrix.Matrix4
}

func newPattern(kind Kind, a, b core.Color) Pattern {
	return Pattern{
		Kind:      kind,
		A:         a,
		B:         b,
		transform: matrix.Identity(),
		inverse:   matrix.Identity(),
	}
}

// NewPlain returns a constant colour
func NewPlain(c core.Color) Pattern { return newPattern(Plain, c, c) }

// NewStripe alternates a and b by floor(x)
func NewStripe(a, b core.Color) Pattern { return newPattern(Stripe, a, b) }

// NewGradient blends from a to b across each unit of x
func NewGradient(a, b core.Color) Pattern { return newPattern(Gradient, a, b) }

// NewRing alternates a and b by concentric rings in the xz plane
func NewRing(a, b core.Color) Pattern { return newPattern(Ring, a, b) }

// NewChecker alternates a and b in 3D unit cubes
func NewChecker(a, b core.Color) Pattern { return newPattern(Checker, a, b) }

// NewTest returns the pattern-space point as a colour (diagnostics)
func NewTest() Pattern { return newPattern(Test, core.Black(), core.Black()) }

// Transform returns the pattern transform
func (p Pattern) Transform() matrix.Matrix4 {
	return p.transform
}

// SetTransform replaces the pattern transform and its cached inverse
func (p *Pattern) SetTransform(m matrix.Matrix4) error {
	inv, err := m.Invert()
	if err != nil {
		return fmt.Errorf("%s pattern transform: %w", p.Kind, err)
	}
	p.transform = m
	p.inverse = inv
	return nil
}

// ColorAt evaluates the pattern at a point already in pattern space
func (p Pattern) ColorAt(point core.Point) core.Color {
	switch p.Kind {
	case Stripe:
		if isEven(math.Floor(point.X)) {
			return p.A
		}
		return p.B
	case Gradient:
		fraction := point.X - math.Floor(point.X)
		return p.A.Add(p.B.Subtract(p.A).Multiply(fraction))
	case Ring:
		if isEven(math.Floor(math.Hypot(point.X, point.Z))) {
			return p.A
		}
		return p.B
	case Checker:
		if isEven(math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)) {
			return p.A
		}
		return p.B
	case Test:
		return core.NewColor(point.X, point.Y, point.Z)
	default:
		return p.A
	}
}

// ColorAtObject maps a world point into the object's space, then into
// pattern space, and evaluates there
func (p Pattern) ColorAtObject(obj ObjectSpace, worldPoint core.Point) core.Color {
	objectPoint := obj.WorldToObject(worldPoint)
	patternPoint := p.inverse.MultiplyPoint(objectPoint)
	return p.ColorAt(patternPoint)
}

func isEven(v float64) bool {
	return core.FloatEqual(math.Mod(v, 2), 0)
}
