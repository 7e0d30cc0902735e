package phong3d

// Mat3 is a 3×3 matrix (row-major), the submatrix type of Mat4.
type Mat3 struct {
	E [9]Real
}

func NewMat3(rows [][]Real) Mat3 {
	var M Mat3
	flatten(rows, 3, 3, M.E[:])
	return M
}

func (A Mat3) At(r, c int) Real      { return A.E[r*3+c] }
func (A *Mat3) Set(r, c int, v Real) { A.E[r*3+c] = v }
func (A Mat3) Equal(B Mat3) bool     { return approxEqualAll(A.E[:], B.E[:]) }

func (A Mat3) Submatrix(row, col int) Mat2 {
	var S Mat2
	submatrixInto(A.E[:], 3, row, col, S.E[:])
	return S
}

func (A Mat3) Minor(row, col int) Real    { return A.Submatrix(row, col).Det() }
func (A Mat3) Cofactor(row, col int) Real { return cofactorOf(row, col, A.Minor(row, col)) }

func (A Mat3) Det() Real {
	det := 0.0
	for c := 0; c < 3; c++ {
		det += A.E[c] * A.Cofactor(0, c)
	}
	return det
}
