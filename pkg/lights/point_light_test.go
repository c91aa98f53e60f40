package lights

import (
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestPointLight_DirectionFrom(t *testing.T) {
	light := NewPointLight(core.NewPoint(0, 10, 0), core.White())

	dir, distance := light.DirectionFrom(core.NewPoint(0, 0, 0))
	if !dir.ApproxEqual(core.NewVector(0, 1, 0), core.EpsilonTight) {
		t.Errorf("Expected direction (0,1,0), got %v", dir)
	}
	if !core.FloatEqual(distance, 10) {
		t.Errorf("Expected distance 10, got %f", distance)
	}
	if light.Intensity != core.White() {
		t.Errorf("Expected white intensity, got %v", light.Intensity)
	}
}
