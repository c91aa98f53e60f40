package loaders

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/pattern"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
	"github.com/df07/go-recursive-raytracer/pkg/transform"
	"github.com/pelletier/go-toml/v2"
)

var (
	ErrUnknownShape   = errors.New("unknown shape type")
	ErrUnknownPattern = errors.New("unknown pattern type")
	ErrInvalidScene   = errors.New("invalid scene")
)

// Camera defaults for scene files that leave them out
const (
	defaultWidth  = 400
	defaultHeight = 200
	defaultFOV    = 60.0
)

var media = map[string]float64{
	"vacuum":  material.Vacuum,
	"air":     material.Air,
	"water":   material.Water,
	"glass":   material.Glass,
	"diamond": material.Diamond,
}

// LoadScene reads and builds a TOML scene file. The scene is named after
// the file.
func LoadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}

	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return s, nil
}

// DecodeSceneFile decodes TOML without building anything. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func DecodeSceneFile(data []byte) (*SceneFile, error) {
	var file SceneFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return &file, nil
}

// ParseScene decodes and builds a scene
func ParseScene(data []byte) (*scene.Scene, error) {
	file, err := DecodeSceneFile(data)
	if err != nil {
		return nil, err
	}
	return Build(file)
}

// Build turns a decoded scene file into a scene
func Build(file *SceneFile) (*scene.Scene, error) {
	opts := []scene.Option{scene.WithFresnel(file.Fresnel)}
	if file.Depth > 0 {
		opts = append(opts, scene.WithDepth(file.Depth))
	}
	w := scene.NewWorld(opts...)

	for i, spec := range file.Lights {
		light, err := buildLight(spec)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		w.AddLight(light)
	}

	for i, spec := range file.Shapes {
		shape, err := buildShape(spec)
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, spec.Type, err)
		}
		w.AddShape(shape)
	}

	camera, err := buildCamera(file.Camera)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	name := file.Title
	if name == "" {
		name = "untitled"
	}
	return &scene.Scene{Name: name, World: w, Camera: camera}, nil
}

func buildCamera(spec CameraSpec) (*renderer.Camera, error) {
	width, height, fov := spec.Width, spec.Height, spec.FOV
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}
	if fov == 0 {
		fov = defaultFOV
	}
	if width < 0 || height < 0 || fov < 0 || fov >= 180 {
		return nil, fmt.Errorf("%w: size %dx%d fov %g", ErrInvalidScene, width, height, fov)
	}

	from, err := pointOr(spec.From, core.NewPoint(0, 0, -5))
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	to, err := pointOr(spec.To, core.Origin())
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	up, err := vectorOr(spec.Up, core.NewVector(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("up: %w", err)
	}

	camera := renderer.NewCamera(width, height, fov*math.Pi/180)
	if err := transform.New().ViewOrientation(from, to, up).Apply(camera); err != nil {
		return nil, err
	}
	return camera, nil
}

func buildLight(spec LightSpec) (lights.PointLight, error) {
	if spec.Position == nil {
		return lights.PointLight{}, fmt.Errorf("%w: light needs a position", ErrInvalidScene)
	}
	position, err := toPoint(spec.Position)
	if err != nil {
		return lights.PointLight{}, fmt.Errorf("position: %w", err)
	}

	intensity := core.White()
	if spec.Intensity != nil {
		if intensity, err = ParseColor(spec.Intensity); err != nil {
			return lights.PointLight{}, fmt.Errorf("intensity: %w", err)
		}
	}
	return lights.NewPointLight(position, intensity), nil
}

func buildShape(spec ShapeSpec) (*geometry.Shape, error) {
	var shape *geometry.Shape
	switch strings.ToLower(spec.Type) {
	case "sphere":
		shape = geometry.NewSphere()
	case "plane":
		shape = geometry.NewPlane()
	case "cube":
		shape = geometry.NewCube()
	case "triangle":
		if len(spec.Vertices) != 3 {
			return nil, fmt.Errorf("%w: triangle needs 3 vertices, got %d", ErrInvalidScene, len(spec.Vertices))
		}
		var v [3]core.Point
		for i, raw := range spec.Vertices {
			p, err := toPoint(raw)
			if err != nil {
				return nil, fmt.Errorf("vertex %d: %w", i, err)
			}
			v[i] = p
		}
		shape = geometry.NewTriangle(v[0], v[1], v[2])
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, spec.Type)
	}

	if spec.Material != nil {
		m, err := buildMaterial(*spec.Material)
		if err != nil {
			return nil, fmt.Errorf("material: %w", err)
		}
		shape.Material = m
	}

	if err := applyTransforms(spec.Transform, shape); err != nil {
		return nil, err
	}
	return shape, nil
}

func buildMaterial(spec MaterialSpec) (material.Material, error) {
	m := material.Default()

	if spec.Color != nil {
		c, err := ParseColor(spec.Color)
		if err != nil {
			return m, fmt.Errorf("color: %w", err)
		}
		m.Pattern = pattern.NewPlain(c)
	}
	if spec.Pattern != nil {
		p, err := buildPattern(*spec.Pattern)
		if err != nil {
			return m, fmt.Errorf("pattern: %w", err)
		}
		m.Pattern = p
	}

	overrides := []struct {
		value *float64
		field *float64
	}{
		{spec.Ambient, &m.Ambient},
		{spec.Diffuse, &m.Diffuse},
		{spec.Specular, &m.Specular},
		{spec.Shininess, &m.Shininess},
		{spec.Reflective, &m.Reflective},
		{spec.Transparency, &m.Transparency},
	}
	for _, o := range overrides {
		if o.value != nil {
			*o.field = *o.value
		}
	}

	if spec.RefractiveIndex != nil {
		index, err := parseRefractiveIndex(spec.RefractiveIndex)
		if err != nil {
			return m, err
		}
		m.RefractiveIndex = index
	}
	return m, nil
}

func parseRefractiveIndex(v any) (float64, error) {
	if name, ok := v.(string); ok {
		index, known := media[strings.ToLower(name)]
		if !known {
			return 0, fmt.Errorf("%w: unknown medium %q", ErrInvalidScene, name)
		}
		return index, nil
	}
	index, err := toFloat(v)
	if err != nil {
		return 0, fmt.Errorf("refractive_index: %w", err)
	}
	if index <= 0 {
		return 0, fmt.Errorf("%w: refractive_index %g must be positive", ErrInvalidScene, index)
	}
	return index, nil
}

func buildPattern(spec PatternSpec) (pattern.Pattern, error) {
	kind, ok := pattern.ParseKind(strings.ToLower(spec.Type))
	if !ok {
		return pattern.Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, spec.Type)
	}

	colors := make([]core.Color, len(spec.Colors))
	for i, raw := range spec.Colors {
		c, err := ParseColor(raw)
		if err != nil {
			return pattern.Pattern{}, fmt.Errorf("color %d: %w", i, err)
		}
		colors[i] = c
	}

	need := 2
	switch kind {
	case pattern.Plain:
		need = 1
	case pattern.Test:
		need = 0
	}
	if len(colors) != need {
		return pattern.Pattern{}, fmt.Errorf("%w: %s pattern needs %d colors, got %d",
			ErrInvalidScene, kind, need, len(colors))
	}

	var p pattern.Pattern
	switch kind {
	case pattern.Plain:
		p = pattern.NewPlain(colors[0])
	case pattern.Stripe:
		p = pattern.NewStripe(colors[0], colors[1])
	case pattern.Gradient:
		p = pattern.NewGradient(colors[0], colors[1])
	case pattern.Ring:
		p = pattern.NewRing(colors[0], colors[1])
	case pattern.Checker:
		p = pattern.NewChecker(colors[0], colors[1])
	case pattern.Test:
		p = pattern.NewTest()
	}

	if err := applyTransforms(spec.Transform, &p); err != nil {
		return pattern.Pattern{}, err
	}
	return p, nil
}

// applyTransforms composes specs in list order and commits them to target
func applyTransforms(specs []TransformSpec, target transform.Transformable) error {
	b := transform.New()
	for i, spec := range specs {
		if err := addTransform(b, spec); err != nil {
			return fmt.Errorf("transform %d: %w", i, err)
		}
	}
	return b.Apply(target)
}

func addTransform(b *transform.Builder, spec TransformSpec) error {
	switch strings.ToLower(spec.Op) {
	case "translate":
		if len(spec.Values) != 3 {
			return fmt.Errorf("%w: translate needs 3 values", ErrInvalidScene)
		}
		b.Translate(spec.Values[0], spec.Values[1], spec.Values[2])
	case "scale":
		switch len(spec.Values) {
		case 1:
			b.Scale(spec.Values[0], spec.Values[0], spec.Values[0])
		case 3:
			b.Scale(spec.Values[0], spec.Values[1], spec.Values[2])
		default:
			return fmt.Errorf("%w: scale needs 1 or 3 values", ErrInvalidScene)
		}
	case "rotate":
		axis, err := transform.ParseAxis(spec.Axis)
		if err != nil {
			return err
		}
		b.Rotate(axis, spec.Angle*math.Pi/180)
	case "shear":
		v := spec.Values
		if len(v) != 6 {
			return fmt.Errorf("%w: shear needs 6 values", ErrInvalidScene)
		}
		b.Shear(v[0], v[1], v[2], v[3], v[4], v[5])
	default:
		return fmt.Errorf("%w: unknown transform %q", ErrInvalidScene, spec.Op)
	}
	return nil
}
