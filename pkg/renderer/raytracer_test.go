package renderer

import (
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/canvas"
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestRaytracer_RenderBandTouchesOnlyItsRows(t *testing.T) {
	camera := newTestCamera(t, 8, 6)
	target := canvas.New(8, 6)
	rt := NewRaytracer(gradientWorld{}, camera, target)

	if n := rt.RenderBand(Band{Y0: 2, Y1: 4}); n != 16 {
		t.Errorf("Expected 16 pixels, got %d", n)
	}

	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			got := target.PixelAt(x, y)
			inBand := y >= 2 && y < 4
			if inBand {
				expected := gradientWorld{}.ColorAt(camera.RayForPixel(x, y))
				if !got.ApproxEqual(expected, core.EpsilonTight) {
					t.Errorf("Pixel (%d,%d): expected %v, got %v", x, y, expected, got)
				}
			} else if got != core.Black() {
				t.Errorf("Pixel (%d,%d) outside the band was written: %v", x, y, got)
			}
		}
	}
}

func TestWorkerPool(t *testing.T) {
	camera := newTestCamera(t, 5, 7)
	target := canvas.New(5, 7)
	bands := Bands(7, 2)

	pool := NewWorkerPool(gradientWorld{}, camera, target, len(bands), 3)
	if pool.GetNumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}
	pool.Start()
	for i, b := range bands {
		pool.SubmitTask(BandTask{TaskID: i, Band: b})
	}

	seen := make(map[int]bool)
	total := 0
	for range bands {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Result queue closed early")
		}
		seen[result.TaskID] = true
		total += result.Pixels
	}
	pool.Stop()

	if len(seen) != len(bands) || total != 35 {
		t.Errorf("Expected %d distinct tasks and 35 pixels, got %d and %d", len(bands), len(seen), total)
	}
	if _, ok := pool.GetResult(); ok {
		t.Error("Expected result queue to be closed after Stop")
	}
}

func TestNewWorkerPool_DefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(gradientWorld{}, newTestCamera(t, 1, 1), canvas.New(1, 1), 1, 0)
	if pool.GetNumWorkers() < 1 {
		t.Errorf("Expected at least one worker, got %d", pool.GetNumWorkers())
	}
}
