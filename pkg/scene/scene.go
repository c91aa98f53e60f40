package scene

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned for names missing from the builtin registry
var ErrUnknownScene = errors.New("unknown scene")

// Scene pairs a world with the camera that views it
type Scene struct {
	Name   string
	World  *World
	Camera *renderer.Camera
}

// Resize swaps the camera for one with a new canvas size
func (s *Scene) Resize(width, height int) {
	s.Camera = s.Camera.Resized(width, height)
}

// Bounds returns the bounding box of every finite shape in the world
func (s *Scene) Bounds() core.AABB {
	box := core.EmptyAABB()
	for _, shape := range s.World.Shapes {
		b := shape.Bounds()
		if isFinite(b) {
			box = box.Union(b)
		}
	}
	return box
}

// ShapeCount returns the number of shapes in the world
func (s *Scene) ShapeCount() int {
	return len(s.World.Shapes)
}

func isFinite(b core.AABB) bool {
	for _, v := range []float64{b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

var builtins = map[string]func() *Scene{
	"default":    NewDefaultScene,
	"refraction": NewRefractionScene,
	"cubes":      NewCubesScene,
}

// Builtin returns a freshly built copy of a named demo scene
func Builtin(name string) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return build(), nil
}

// BuiltinNames lists the builtin scenes in alphabetical order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
