package core

// Color is an unclamped linear RGB triple
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns (0, 0, 0)
func Black() Color {
	return Color{}
}

// White returns (1, 1, 1)
func White() Color {
	return Color{1, 1, 1}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply scales every channel by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the component-wise (Hadamard) product
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// ApproxEqual compares channel-wise within eps
func (c Color) ApproxEqual(other Color, eps float64) bool {
	return ApproxEqual(c.R, other.R, eps) &&
		ApproxEqual(c.G, other.G, eps) &&
		ApproxEqual(c.B, other.B, eps)
}
