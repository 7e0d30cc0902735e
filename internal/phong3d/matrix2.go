package phong3d

// Mat2 is a 2×2 matrix (row-major). Only the determinant is needed at this size.
type Mat2 struct {
	E [4]Real
}

func NewMat2(rows [][]Real) Mat2 {
	var M Mat2
	flatten(rows, 2, 2, M.E[:])
	return M
}

func (A Mat2) At(r, c int) Real      { return A.E[r*2+c] }
func (A *Mat2) Set(r, c int, v Real) { A.E[r*2+c] = v }
func (A Mat2) Equal(B Mat2) bool     { return approxEqualAll(A.E[:], B.E[:]) }

func (A Mat2) Det() Real { return A.E[0]*A.E[3] - A.E[1]*A.E[2] }
