package intersect

import (
	"cmp"
	"math"
	"slices"

	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// Intersection records where along a ray an object was hit
type Intersection struct {
	T      float64
	Object *geometry.Shape
}

// New creates an intersection
func New(t float64, object *geometry.Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is an ordered collection of intersections
type Intersections []Intersection

// FromTimes wraps the raw times returned by a shape
func FromTimes(object *geometry.Shape, times []float64) Intersections {
	xs := make(Intersections, len(times))
	for i, t := range times {
		xs[i] = New(t, object)
	}
	return xs
}

// Compare orders intersections by time. NaN sorts after every real value.
func Compare(a, b Intersection) int {
	aNaN, bNaN := math.IsNaN(a.T), math.IsNaN(b.T)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	return cmp.Compare(a.T, b.T)
}

// Sort orders the collection in place, keeping equal times in insertion order
func (xs Intersections) Sort() {
	slices.SortStableFunc(xs, Compare)
}

// Merge appends other collections and returns the sorted result
func (xs Intersections) Merge(others ...Intersections) Intersections {
	merged := slices.Clone(xs)
	for _, other := range others {
		merged = append(merged, other...)
	}
	merged.Sort()
	return merged
}

// Hit returns the intersection with the lowest non-negative time
func (xs Intersections) Hit() (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 || math.IsNaN(x.T) {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}
