package core

import "math"

// Tolerances used for every geometric comparison in the tracer.
const (
	// EpsilonTight is used for exact derived-value checks (parallel rays,
	// singular determinants, checker parity).
	EpsilonTight = 1e-7

	// EpsilonLoose absorbs error accumulated through chains of matrix
	// multiplication. It is also the acne offset for over/under points.
	EpsilonLoose = 1e-4
)

// ApproxEqual reports whether a and b differ by less than eps
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// FloatEqual compares using EpsilonTight
func FloatEqual(a, b float64) bool {
	return ApproxEqual(a, b, EpsilonTight)
}

// FloatEqualLoose compares using EpsilonLoose
func FloatEqualLoose(a, b float64) bool {
	return ApproxEqual(a, b, EpsilonLoose)
}
