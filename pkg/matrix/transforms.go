package matrix

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Axis selects the rotation axis
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis letter
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Translation moves points by (x, y, z); vectors are unaffected
func Translation(x, y, z float64) Matrix4 {
	m := Identity()
	m.M[0][3] = x
	m.M[1][3] = y
	m.M[2][3] = z
	return m
}

// Scaling scales each axis independently
func Scaling(x, y, z float64) Matrix4 {
	m := Identity()
	m.M[0][0] = x
	m.M[1][1] = y
	m.M[2][2] = z
	return m
}

// RotationX rotates around the X axis by angle radians (left-handed)
func RotationX(angle float64) Matrix4 {
	sin, cos := math.Sincos(angle)
	m := Identity()
	m.M[1][1] = cos
	m.M[1][2] = -sin
	m.M[2][1] = sin
	m.M[2][2] = cos
	return m
}

// RotationY rotates around the Y axis by angle radians
func RotationY(angle float64) Matrix4 {
	sin, cos := math.Sincos(angle)
	m := Identity()
	m.M[0][0] = cos
	m.M[0][2] = sin
	m.M[2][0] = -sin
	m.M[2][2] = cos
	return m
}

// RotationZ rotates around the Z axis by angle radians
func RotationZ(angle float64) Matrix4 {
	sin, cos := math.Sincos(angle)
	m := Identity()
	m.M[0][0] = cos
	m.M[0][1] = -sin
	m.M[1][0] = sin
	m.M[1][1] = cos
	return m
}

// Rotation dispatches on axis
func Rotation(axis Axis, angle float64) Matrix4 {
	switch axis {
	case AxisX:
		return RotationX(angle)
	case AxisY:
		return RotationY(angle)
	default:
		return RotationZ(angle)
	}
}

// Shearing moves each component in proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	m := Identity()
	m.M[0][1] = xy
	m.M[0][2] = xz
	m.M[1][0] = yx
	m.M[1][2] = yz
	m.M[2][0] = zx
	m.M[2][1] = zy
	return m
}

// ViewOrientation orients the world relative to an eye at from looking at to
func ViewOrientation(from, to core.Point, up core.Vector) Matrix4 {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := New(
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
