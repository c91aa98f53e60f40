package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/matrix"
)

func TestCamera_Construction(t *testing.T) {
	c := NewCamera(160, 120, math.Pi/2)
	if c.HSize != 160 || c.VSize != 120 || c.FieldOfView != math.Pi/2 {
		t.Errorf("Unexpected camera %+v", c)
	}
	if !c.Transform().ApproxEqual(matrix.Identity(), core.EpsilonTight) {
		t.Error("Expected identity view transform")
	}
}

func TestCamera_PixelSize(t *testing.T) {
	tests := []struct {
		name   string
		h, v   int
		expect float64
	}{
		{"horizontal canvas", 200, 125, 0.01},
		{"vertical canvas", 125, 200, 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(tt.h, tt.v, math.Pi/2)
			if !core.FloatEqualLoose(c.PixelSize, tt.expect) {
				t.Errorf("Expected pixel size %f, got %f", tt.expect, c.PixelSize)
			}
		})
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	half := math.Sqrt2 / 2

	tests := []struct {
		name      string
		transform matrix.Matrix4
		px, py    int
		origin    core.Point
		direction core.Vector
	}{
		{
			name:      "centre of canvas",
			transform: matrix.Identity(),
			px:        100,
			py:        50,
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVector(0, 0, -1),
		},
		{
			name:      "corner of canvas",
			transform: matrix.Identity(),
			px:        0,
			py:        0,
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVector(0.66519, 0.33259, -0.66851),
		},
		{
			name:      "transformed camera",
			transform: matrix.RotationY(math.Pi / 4).Multiply(matrix.Translation(0, -2, 5)),
			px:        100,
			py:        50,
			origin:    core.NewPoint(0, 2, -5),
			direction: core.NewVector(half, 0, -half),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(201, 101, math.Pi/2)
			if err := c.SetTransform(tt.transform); err != nil {
				t.Fatal(err)
			}
			r := c.RayForPixel(tt.px, tt.py)
			if !r.Origin.ApproxEqual(tt.origin, core.EpsilonLoose) {
				t.Errorf("Expected origin %v, got %v", tt.origin, r.Origin)
			}
			if !r.Direction.ApproxEqual(tt.direction, core.EpsilonLoose) {
				t.Errorf("Expected direction %v, got %v", tt.direction, r.Direction)
			}
		})
	}
}

func TestCamera_SetTransformSingular(t *testing.T) {
	c := NewCamera(10, 10, math.Pi/3)
	err := c.SetTransform(matrix.Scaling(1, 0, 1))
	if !errors.Is(err, matrix.ErrNotInvertible) {
		t.Errorf("Expected ErrNotInvertible, got %v", err)
	}
}

func TestCamera_Resized(t *testing.T) {
	c := NewCamera(100, 50, math.Pi/3)
	view := matrix.ViewOrientation(core.NewPoint(0, 1, -5), core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0))
	if err := c.SetTransform(view); err != nil {
		t.Fatal(err)
	}

	r := c.Resized(200, 100)
	if r.HSize != 200 || r.VSize != 100 || r.FieldOfView != c.FieldOfView {
		t.Errorf("Unexpected resized camera %+v", r)
	}
	if !r.Transform().ApproxEqual(view, core.EpsilonTight) {
		t.Error("Resized camera should keep the view transform")
	}
	// Same relative pixel maps to the same ray
	if !r.RayForPixel(100, 50).Direction.ApproxEqual(c.RayForPixel(50, 25).Direction, 0.02) {
		t.Error("Expected centre rays to roughly agree")
	}
}

func TestCamera_WithFieldOfView(t *testing.T) {
	c := NewCamera(200, 125, math.Pi/2)
	view := matrix.ViewOrientation(core.NewPoint(0, 0, -5), core.Origin(), core.NewVector(0, 1, 0))
	if err := c.SetTransform(view); err != nil {
		t.Fatal(err)
	}

	narrow := c.WithFieldOfView(math.Pi / 4)
	if narrow.HSize != 200 || narrow.VSize != 125 || narrow.FieldOfView != math.Pi/4 {
		t.Errorf("Unexpected camera %+v", narrow)
	}
	if narrow.PixelSize >= c.PixelSize {
		t.Errorf("Expected smaller pixels, got %f >= %f", narrow.PixelSize, c.PixelSize)
	}
	if !narrow.Transform().ApproxEqual(view, core.EpsilonTight) {
		t.Error("Expected the view transform to be kept")
	}
}
