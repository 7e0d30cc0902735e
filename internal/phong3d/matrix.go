package phong3d

// Mat2, Mat3 and Mat4 share their storage scheme: a flat row-major array
// addressed as r*cols + c. The helpers below work on that flat layout so every
// size reuses the same construction, equality and submatrix code.

func flatten(rows [][]Real, nr, nc int, dst []Real) {
	if len(rows) != nr {
		fail(ErrDimensionMismatch, "expected %d rows, got %d", nr, len(rows))
	}
	for r, row := range rows {
		if len(row) != nc {
			fail(ErrDimensionMismatch, "row %d: expected %d columns, got %d", r, nc, len(row))
		}
		copy(dst[r*nc:(r+1)*nc], row)
	}
}

func approxEqualAll(a, b []Real) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !approxEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// submatrixInto copies the n×n matrix src into dst with row and col removed,
// keeping the relative order of the remaining elements.
func submatrixInto(src []Real, n, row, col int, dst []Real) {
	i := 0
	for r := 0; r < n; r++ {
		if r == row {
			continue
		}
		for c := 0; c < n; c++ {
			if c == col {
				continue
			}
			dst[i] = src[r*n+c]
			i++
		}
	}
}

func cofactorOf(row, col int, minor Real) Real {
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Mat4 is a 4×4 matrix (row-major).
type Mat4 struct {
	E [16]Real
}

// NewMat4 builds a matrix from 4 rows of 4 values; any other shape panics.
func NewMat4(rows [][]Real) Mat4 {
	var M Mat4
	flatten(rows, 4, 4, M.E[:])
	return M
}

func I4() Mat4 {
	return Mat4{E: [16]Real{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

func (A Mat4) At(r, c int) Real      { return A.E[r*4+c] }
func (A *Mat4) Set(r, c int, v Real) { A.E[r*4+c] = v }

func (A Mat4) Equal(B Mat4) bool { return approxEqualAll(A.E[:], B.E[:]) }

func (A Mat4) Mul(B Mat4) Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += A.E[r*4+k] * B.E[k*4+c]
			}
			R.E[r*4+c] = sum
		}
	}
	return R
}

// MulTuple treats t as a column vector.
func (A Mat4) MulTuple(t Tuple) Tuple {
	return Tuple{
		A.E[0]*t.X + A.E[1]*t.Y + A.E[2]*t.Z + A.E[3]*t.W,
		A.E[4]*t.X + A.E[5]*t.Y + A.E[6]*t.Z + A.E[7]*t.W,
		A.E[8]*t.X + A.E[9]*t.Y + A.E[10]*t.Z + A.E[11]*t.W,
		A.E[12]*t.X + A.E[13]*t.Y + A.E[14]*t.Z + A.E[15]*t.W,
	}
}

func (A Mat4) Transpose() Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.E[r*4+c] = A.E[c*4+r]
		}
	}
	return R
}

func (A *Mat4) TransposeInPlace() { *A = A.Transpose() }

func (A Mat4) Submatrix(row, col int) Mat3 {
	var S Mat3
	submatrixInto(A.E[:], 4, row, col, S.E[:])
	return S
}

func (A Mat4) Minor(row, col int) Real    { return A.Submatrix(row, col).Det() }
func (A Mat4) Cofactor(row, col int) Real { return cofactorOf(row, col, A.Minor(row, col)) }

// Det expands along the first row.
func (A Mat4) Det() Real {
	det := 0.0
	for c := 0; c < 4; c++ {
		det += A.E[c] * A.Cofactor(0, c)
	}
	return det
}

func (A Mat4) IsInvertible() bool { return A.Det() != 0 }

// Invert replaces A with its inverse. The determinant is not checked:
// a singular matrix turns into NaN/Inf entries, use IsInvertible or
// InverseChecked when that matters.
func (A *Mat4) Invert() {
	orig := *A
	det := orig.Det()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// [c][r] transposes while dividing
			A.E[c*4+r] = orig.Cofactor(r, c) / det
		}
	}
}

func (A Mat4) Inverse() Mat4 {
	A.Invert()
	return A
}

// InverseChecked is Inverse with an explicit singularity check. A determinant
// small enough to overflow the division counts as singular too.
func (A Mat4) InverseChecked() (Mat4, error) {
	if !A.IsInvertible() {
		return Mat4{}, ErrSingularMatrix
	}
	inv := A.Inverse()
	for _, v := range inv.E {
		if !isFinite(v) {
			return Mat4{}, ErrSingularMatrix
		}
	}
	return inv, nil
}
