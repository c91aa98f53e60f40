package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// NewCube creates an axis-aligned cube spanning [-1, 1] on every axis
func NewCube() *Shape {
	return newShape(Cube)
}

func intersectCube(r core.Ray) []float64 {
	xMin, xMax := checkAxis(r.Origin.X, r.Direction.X)
	yMin, yMax := checkAxis(r.Origin.Y, r.Direction.Y)
	zMin, zMax := checkAxis(r.Origin.Z, r.Direction.Z)

	tMin := math.Max(xMin, math.Max(yMin, zMin))
	tMax := math.Min(xMax, math.Min(yMax, zMax))
	if tMin > tMax {
		return nil
	}
	return []float64{tMin, tMax}
}

// checkAxis returns the entry and exit times for one pair of slabs
func checkAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	var tMin, tMax float64
	if math.Abs(direction) >= core.EpsilonTight {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
	}

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// cubeNormal picks the face by the largest absolute component, x before y before z
func cubeNormal(p core.Point) core.Vector {
	ax, ay, az := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	maxC := math.Max(ax, math.Max(ay, az))

	switch maxC {
	case ax:
		return core.NewVector(math.Copysign(1, p.X), 0, 0)
	case ay:
		return core.NewVector(0, math.Copysign(1, p.Y), 0)
	default:
		return core.NewVector(0, 0, math.Copysign(1, p.Z))
	}
}
