package renderer

import (
	"github.com/df07/go-recursive-raytracer/pkg/canvas"
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// World is what the renderer needs from a scene. Declared here to avoid
// an import cycle with the scene package.
type World interface {
	ColorAt(r core.Ray) core.Color
}

// Band is a half-open range of canvas rows
type Band struct {
	Y0, Y1 int
}

// Bands splits height rows into strips of at most bandHeight rows
func Bands(height, bandHeight int) []Band {
	if bandHeight <= 0 {
		bandHeight = 1
	}
	bands := make([]Band, 0, (height+bandHeight-1)/bandHeight)
	for y := 0; y < height; y += bandHeight {
		bands = append(bands, Band{Y0: y, Y1: min(y+bandHeight, height)})
	}
	return bands
}

// Raytracer fills canvas rows by asking the world for one colour per pixel
type Raytracer struct {
	world  World
	camera *Camera
	target *canvas.Canvas
}

// NewRaytracer creates a raytracer writing into target
func NewRaytracer(world World, camera *Camera, target *canvas.Canvas) *Raytracer {
	return &Raytracer{world: world, camera: camera, target: target}
}

// RenderBand traces every pixel in b and returns the pixel count
func (rt *Raytracer) RenderBand(b Band) int {
	pixels := rt.target.Band(b.Y0, b.Y1)
	width := rt.target.Width
	for y := b.Y0; y < b.Y1; y++ {
		row := pixels[(y-b.Y0)*width : (y-b.Y0+1)*width]
		for x := range row {
			row[x] = rt.world.ColorAt(rt.camera.RayForPixel(x, y))
		}
	}
	return (b.Y1 - b.Y0) * width
}
