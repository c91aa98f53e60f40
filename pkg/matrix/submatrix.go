package matrix

// Matrix3 is a 3x3 submatrix used during cofactor expansion
type Matrix3 struct {
	M [3][3]float64
}

// Submatrix removes the given row and column
func (m Matrix3) Submatrix(row, col int) Matrix2 {
	var r Matrix2
	ri := 0
	for i := 0; i < 3; i++ {
		if i == row {
			continue
		}
		ci := 0
		for j := 0; j < 3; j++ {
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
func (m Matrix3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor is the minor negated when row+col is odd
func (m Matrix3) Cofactor(row, col int) float64 {
	return cofactorSign(row, col) * m.Minor(row, col)
}

// Determinant uses cofactor expansion along the first row
func (m Matrix3) Determinant() float64 {
	det := 0.0
	for col := 0; col < 3; col++ {
		det += m.M[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Matrix2 is the base case of the recursive determinant
type Matrix2 struct {
	M [2][2]float64
}

// Determinant returns ad - bc
func (m Matrix2) Determinant() float64 {
	return m.M[0][0]*m.M[1][1] - m.M[0][1]*m.M[1][0]
}
