package core

import (
	"fmt"
	"math"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Point // Minimum corner
	Max Point // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Point) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns a box that contains nothing; any Union replaces it
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewPoint(inf, inf, inf),
		Max: NewPoint(-inf, -inf, -inf),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Point) AABB {
	box := EmptyAABB()
	for _, point := range points {
		box = box.Extend(point)
	}
	return box
}

// Extend grows the box to include point
func (aabb AABB) Extend(point Point) AABB {
	return AABB{
		Min: NewPoint(math.Min(aabb.Min.X, point.X), math.Min(aabb.Min.Y, point.Y), math.Min(aabb.Min.Z, point.Z)),
		Max: NewPoint(math.Max(aabb.Max.X, point.X), math.Max(aabb.Max.Y, point.Y), math.Max(aabb.Max.Z, point.Z)),
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return aabb.Extend(other.Min).Extend(other.Max)
}

// Corners returns the eight corners of the box
func (aabb AABB) Corners() [8]Point {
	lo, hi := aabb.Min, aabb.Max
	return [8]Point{
		NewPoint(lo.X, lo.Y, lo.Z),
		NewPoint(hi.X, lo.Y, lo.Z),
		NewPoint(lo.X, hi.Y, lo.Z),
		NewPoint(lo.X, lo.Y, hi.Z),
		NewPoint(hi.X, hi.Y, lo.Z),
		NewPoint(hi.X, lo.Y, hi.Z),
		NewPoint(lo.X, hi.Y, hi.Z),
		NewPoint(hi.X, hi.Y, hi.Z),
	}
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// String formats the box as min..max, or "empty" for a box with no extent
func (aabb AABB) String() string {
	if !aabb.IsValid() {
		return "empty"
	}
	return fmt.Sprintf("(%.2f, %.2f, %.2f)..(%.2f, %.2f, %.2f)",
		aabb.Min.X, aabb.Min.Y, aabb.Min.Z, aabb.Max.X, aabb.Max.Y, aabb.Max.Z)
}
