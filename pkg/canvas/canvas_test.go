package canvas

import (
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestCanvas_New(t *testing.T) {
	c := New(10, 20)
	if c.Width != 10 || c.Height != 20 {
		t.Fatalf("Expected 10x20, got %dx%d", c.Width, c.Height)
	}
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.PixelAt(x, y) != core.Black() {
				t.Fatalf("Expected black at (%d,%d)", x, y)
			}
		}
	}
}

func TestCanvas_WritePixel(t *testing.T) {
	c := New(10, 20)
	red := core.NewColor(1, 0, 0)
	c.WritePixel(2, 3, red)
	if c.PixelAt(2, 3) != red {
		t.Errorf("Expected red, got %v", c.PixelAt(2, 3))
	}
	if c.Band(3, 4)[2] != red {
		t.Error("Band should expose the written pixel")
	}
}

func TestCanvas_BandAliases(t *testing.T) {
	c := New(4, 3)
	band := c.Band(1, 3)
	if len(band) != 8 {
		t.Fatalf("Expected 8 pixels, got %d", len(band))
	}
	band[5] = core.White()
	if c.PixelAt(1, 2) != core.White() {
		t.Error("Writes to a band should land in the canvas")
	}

	// appending to a band must not spill into the next rows
	first := c.Band(0, 1)
	_ = append(first, core.NewColor(9, 9, 9))
	if c.PixelAt(0, 1) != core.Black() {
		t.Error("Append on a band overwrote the following row")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(1.5, 0.0, 1.0) != 1.0 || Clamp(-0.5, 0.0, 1.0) != 0.0 || Clamp(0.25, 0.0, 1.0) != 0.25 {
		t.Error("float clamp failed")
	}
	if Clamp(300, 0, 255) != 255 {
		t.Error("int clamp failed")
	}
}

func TestToByte(t *testing.T) {
	tests := []struct {
		in       float64
		expected uint8
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 127},
		{1, 255},
		{1.5, 255},
	}
	for _, tt := range tests {
		if got := ToByte(tt.in); got != tt.expected {
			t.Errorf("ToByte(%f): expected %d, got %d", tt.in, tt.expected, got)
		}
	}
}

func TestCanvas_Bytes(t *testing.T) {
	c := New(2, 1)
	c.WritePixel(0, 0, core.NewColor(1.5, 0, 0))
	c.WritePixel(1, 0, core.NewColor(0, 0.5, -0.5))

	expected := []byte{255, 0, 0, 0, 127, 0}
	got := c.Bytes()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d bytes, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Byte %d: expected %d, got %d", i, expected[i], got[i])
		}
	}

	img := c.ToRGBA()
	if px := img.RGBAAt(1, 0); px.G != 127 || px.A != 255 {
		t.Errorf("Unexpected RGBA pixel %v", px)
	}
}
