// Package transform composes elementary transforms into a single matrix.
//
// Each call pre-multiplies onto the accumulator, so
//
//	transform.New().Scale(2, 2, 2).RotateY(math.Pi / 4).Translate(1, 0, 0)
//
// scales first, then rotates, then translates: the order in which a reader
// describes the placement of an object.
package transform

import (
	"fmt"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/matrix"
)

// Axis re-exports matrix.Axis for callers that only deal with builders
type Axis = matrix.Axis

const (
	X = matrix.AxisX
	Y = matrix.AxisY
	Z = matrix.AxisZ
)

// Transformable is anything that accepts a committed transform
type Transformable interface {
	SetTransform(m matrix.Matrix4) error
}

// Builder accumulates transforms
type Builder struct {
	m matrix.Matrix4
}

// New starts from the identity
func New() *Builder {
	return &Builder{m: matrix.Identity()}
}

// Then pre-multiplies an arbitrary matrix
func (b *Builder) Then(m matrix.Matrix4) *Builder {
	b.m = m.Multiply(b.m)
	return b
}

// Translate moves by (x, y, z)
func (b *Builder) Translate(x, y, z float64) *Builder {
	return b.Then(matrix.Translation(x, y, z))
}

// Scale scales each axis
func (b *Builder) Scale(x, y, z float64) *Builder {
	return b.Then(matrix.Scaling(x, y, z))
}

// Rotate rotates around axis by angle radians
func (b *Builder) Rotate(axis Axis, angle float64) *Builder {
	return b.Then(matrix.Rotation(axis, angle))
}

// RotateX rotates around the X axis
func (b *Builder) RotateX(angle float64) *Builder { return b.Rotate(X, angle) }

// RotateY rotates around the Y axis
func (b *Builder) RotateY(angle float64) *Builder { return b.Rotate(Y, angle) }

// RotateZ rotates around the Z axis
func (b *Builder) RotateZ(angle float64) *Builder { return b.Rotate(Z, angle) }

// Shear applies a shearing transform
func (b *Builder) Shear(xy, xz, yx, yz, zx, zy float64) *Builder {
	return b.Then(matrix.Shearing(xy, xz, yx, yz, zx, zy))
}

// ViewOrientation composes a camera orientation looking from -> to
func (b *Builder) ViewOrientation(from, to core.Point, up core.Vector) *Builder {
	return b.Then(matrix.ViewOrientation(from, to, up))
}

// Build returns the accumulated matrix
func (b *Builder) Build() matrix.Matrix4 {
	return b.m
}

// Apply commits the accumulated matrix to target
func (b *Builder) Apply(target Transformable) error {
	return target.SetTransform(b.m)
}

// ParseAxis accepts "x", "y" or "z" in any case
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	default:
		return X, fmt.Errorf("unknown rotation axis %q", s)
	}
}
