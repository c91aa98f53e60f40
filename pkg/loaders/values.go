package loaders

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor accepts a hex string or a three element numeric array
func ParseColor(v any) (core.Color, error) {
	switch val := v.(type) {
	case string:
		c, err := colorful.Hex(val)
		if err != nil {
			return core.Color{}, fmt.Errorf("%w: color %q: %v", ErrInvalidScene, val, err)
		}
		return core.NewColor(c.R, c.G, c.B), nil
	case []any:
		f, err := toFloats(val)
		if err != nil {
			return core.Color{}, err
		}
		if len(f) != 3 {
			return core.Color{}, fmt.Errorf("%w: color needs 3 components, got %d", ErrInvalidScene, len(f))
		}
		return core.NewColor(f[0], f[1], f[2]), nil
	case []float64:
		if len(val) != 3 {
			return core.Color{}, fmt.Errorf("%w: color needs 3 components, got %d", ErrInvalidScene, len(val))
		}
		return core.NewColor(val[0], val[1], val[2]), nil
	default:
		return core.Color{}, fmt.Errorf("%w: unsupported color value %v", ErrInvalidScene, v)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: %v is not a number", ErrInvalidScene, v)
	}
}

func toFloats(values []any) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func toPoint(v []float64) (core.Point, error) {
	if len(v) != 3 {
		return core.Point{}, fmt.Errorf("%w: expected 3 coordinates, got %d", ErrInvalidScene, len(v))
	}
	return core.NewPoint(v[0], v[1], v[2]), nil
}

func pointOr(v []float64, fallback core.Point) (core.Point, error) {
	if v == nil {
		return fallback, nil
	}
	return toPoint(v)
}

func vectorOr(v []float64, fallback core.Vector) (core.Vector, error) {
	if v == nil {
		return fallback, nil
	}
	if len(v) != 3 {
		return core.Vector{}, fmt.Errorf("%w: expected 3 components, got %d", ErrInvalidScene, len(v))
	}
	return core.NewVector(v[0], v[1], v[2]), nil
}
