package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/matrix"
)

// Camera maps canvas pixels to world-space rays. The canvas sits one unit
// in front of the eye, which looks down -z in camera space.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64 // radians
	PixelSize   float64
	HalfWidth   float64
	HalfHeight  float64

	transform matrix.Matrix4
	inverse   matrix.Matrix4
}

// NewCamera creates a camera with the identity view transform
func NewCamera(hSize, vSize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hSize,
		VSize:       vSize,
		FieldOfView: fieldOfView,
		transform:   matrix.Identity(),
		inverse:     matrix.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hSize) / float64(vSize)
	if aspect >= 1 {
		c.HalfWidth = halfView
		c.HalfHeight = halfView / aspect
	} else {
		c.HalfWidth = halfView * aspect
		c.HalfHeight = halfView
	}
	c.PixelSize = (c.HalfWidth * 2) / float64(hSize)

	return c
}

// Transform returns the view transform
func (c *Camera) Transform() matrix.Matrix4 {
	return c.transform
}

// SetTransform replaces the view transform and caches its inverse
func (c *Camera) SetTransform(m matrix.Matrix4) error {
	inv, err := m.Invert()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// Resized returns a camera with the same field of view and view transform
// but a different canvas size
func (c *Camera) Resized(hSize, vSize int) *Camera {
	resized := NewCamera(hSize, vSize, c.FieldOfView)
	resized.transform = c.transform
	resized.inverse = c.inverse
	return resized
}

// WithFieldOfView returns a camera with the same size and view transform
// but a different field of view
func (c *Camera) WithFieldOfView(fieldOfView float64) *Camera {
	changed := NewCamera(c.HSize, c.VSize, fieldOfView)
	changed.transform = c.transform
	changed.inverse = c.inverse
	return changed
}

// RayForPixel returns the ray through the centre of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	// Offset from the canvas edge to the pixel centre
	xOffset := (float64(px) + 0.5) * c.PixelSize
	yOffset := (float64(py) + 0.5) * c.PixelSize

	// Camera looks toward -z, so +x is to the left
	worldX := c.HalfWidth - xOffset
	worldY := c.HalfHeight - yOffset

	pixel := c.inverse.MultiplyPoint(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyPoint(core.Origin())
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
