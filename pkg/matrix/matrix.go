// Package matrix implements the 4x4 affine transform algebra used to move
// rays, points and normals between world and object space.
package matrix

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ErrNotInvertible is returned when a matrix has a (near) zero determinant
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix4 is a row-major 4x4 matrix
type Matrix4 struct {
	M [4][4]float64
}

// Identity returns the multiplicative identity
func Identity() Matrix4 {
	return Matrix4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// New builds a matrix from 16 row-major values
func New(values ...float64) Matrix4 {
	if len(values) != 16 {
		panic(fmt.Sprintf("matrix.New: expected 16 values, got %d", len(values)))
	}
	var m Matrix4
	for i, v := range values {
		m.M[i/4][i%4] = v
	}
	return m
}

// Multiply returns the standard matrix product m × other
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var r Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m.M[row][k] * other.M[k][col]
			}
			r.M[row][col] = sum
		}
	}
	return r
}

// Transpose swaps rows and columns
func (m Matrix4) Transpose() Matrix4 {
	var r Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r.M[row][col] = m.M[col][row]
		}
	}
	return r
}

// MultiplyPoint applies the full affine transform (w = 1)
func (m Matrix4) MultiplyPoint(p core.Point) core.Point {
	return core.NewPoint(
		m.M[0][0]*p.X+m.M[0][1]*p.Y+m.M[0][2]*p.Z+m.M[0][3],
		m.M[1][0]*p.X+m.M[1][1]*p.Y+m.M[1][2]*p.Z+m.M[1][3],
		m.M[2][0]*p.X+m.M[2][1]*p.Y+m.M[2][2]*p.Z+m.M[2][3],
	)
}

// MultiplyVector applies the linear part only (w = 0), so translation is ignored
func (m Matrix4) MultiplyVector(v core.Vector) core.Vector {
	return core.NewVector(
		m.M[0][0]*v.X+m.M[0][1]*v.Y+m.M[0][2]*v.Z,
		m.M[1][0]*v.X+m.M[1][1]*v.Y+m.M[1][2]*v.Z,
		m.M[2][0]*v.X+m.M[2][1]*v.Y+m.M[2][2]*v.Z,
	)
}

// TransformRay returns a new ray with origin and direction transformed by m.
// The direction is not renormalized, so ray parameters stay comparable
// between spaces.
func (m Matrix4) TransformRay(r core.Ray) core.Ray {
	return core.NewRay(m.MultiplyPoint(r.Origin), m.MultiplyVector(r.Direction))
}

// Determinant uses cofactor expansion along the first row
func (m Matrix4) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m.M[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Submatrix removes the given row and column
func (m Matrix4) Submatrix(row, col int) Matrix3 {
	var r Matrix3
	ri := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		ci := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			r.M[ri][ci] = m.M[i][j]
			ci++
		}
		ri++
	}
	return r
}

// Minor is the determinant of the submatrix at row, col
func (m Matrix4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor is the minor negated when row+col is odd
func (m Matrix4) Cofactor(row, col int) float64 {
	return cofactorSign(row, col) * m.Minor(row, col)
}

// Invertible reports whether the determinant is non-zero
func (m Matrix4) Invertible() bool {
	return math.Abs(m.Determinant()) >= core.EpsilonTight
}

// Invert returns the adjugate divided by the determinant. It fails with
// ErrNotInvertible, naming the offending matrix, when the determinant is ~0.
func (m Matrix4) Invert() (Matrix4, error) {
	det := m.Determinant()
	if math.Abs(det) < core.EpsilonTight {
		return Matrix4{}, fmt.Errorf("%w: determinant %g of %s", ErrNotInvertible, det, m)
	}

	var r Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// transposed assignment builds the adjugate
			r.M[col][row] = m.Cofactor(row, col) / det
		}
	}
	return r, nil
}

// MustInvert is Invert for matrices known to be valid. It panics on a
// singular matrix.
func (m Matrix4) MustInvert() Matrix4 {
	inv, err := m.Invert()
	if err != nil {
		panic(err)
	}
	return inv
}

// ApproxEqual compares element-wise within eps
func (m Matrix4) ApproxEqual(other Matrix4, eps float64) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !core.ApproxEqual(m.M[row][col], other.M[row][col], eps) {
				return false
			}
		}
	}
	return true
}

// String formats the matrix row by row
func (m Matrix4) String() string {
	rows := make([]string, 4)
	for i, row := range m.M {
		rows[i] = fmt.Sprintf("[%g %g %g %g]", row[0], row[1], row[2], row[3])
	}
	return "[" + strings.Join(rows, " ") + "]"
}

func cofactorSign(row, col int) float64 {
	if (row+col)%2 == 1 {
		return -1
	}
	return 1
}
