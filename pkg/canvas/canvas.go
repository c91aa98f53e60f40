package canvas

import (
	"image"
	"image/color"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"golang.org/x/exp/constraints"
)

// Canvas is a row-major grid of unclamped colours
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// New creates a black canvas
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// PixelAt returns the colour at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// WritePixel sets the colour at (x, y)
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	c.pixels[y*c.Width+x] = col
}

// Band returns rows [y0, y1) as one slice aliasing the canvas. Disjoint
// bands can be written from different goroutines.
func (c *Canvas) Band(y0, y1 int) []core.Color {
	return c.pixels[y0*c.Width : y1*c.Width : y1*c.Width]
}

// Clamp limits v to [lo, hi]
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToByte clamps a channel to [0, 1], scales by 255 and truncates
func ToByte(v float64) uint8 {
	return uint8(Clamp(v, 0, 1) * 255)
}

// Bytes returns the canvas as packed 8-bit RGB triples
func (c *Canvas) Bytes() []byte {
	out := make([]byte, 0, len(c.pixels)*3)
	for _, p := range c.pixels {
		out = append(out, ToByte(p.R), ToByte(p.G), ToByte(p.B))
	}
	return out
}

// ToRGBA converts the canvas to an opaque image
func (c *Canvas) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			img.SetRGBA(x, y, color.RGBA{R: ToByte(p.R), G: ToByte(p.G), B: ToByte(p.B), A: 255})
		}
	}
	return img
}
