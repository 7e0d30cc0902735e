package phong3d

import "math"

// Each builder patches the identity matrix.

func Translation(x, y, z Real) Mat4 {
	M := I4()
	M.E[3], M.E[7], M.E[11] = x, y, z
	return M
}

func Scaling(x, y, z Real) Mat4 {
	M := I4()
	M.E[0], M.E[5], M.E[10] = x, y, z
	return M
}

func RotationX(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.Set(1, 1, c)
	M.Set(1, 2, -s)
	M.Set(2, 1, s)
	M.Set(2, 2, c)
	return M
}

func RotationY(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.Set(0, 0, c)
	M.Set(0, 2, s)
	M.Set(2, 0, -s)
	M.Set(2, 2, c)
	return M
}

func RotationZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.Set(0, 0, c)
	M.Set(0, 1, -s)
	M.Set(1, 0, s)
	M.Set(1, 1, c)
	return M
}

func Radians(deg Real) Real { return deg / 180 * math.Pi }

func RotationXDeg(deg Real) Mat4 { return RotationX(Radians(deg)) }
func RotationYDeg(deg Real) Mat4 { return RotationY(Radians(deg)) }
func RotationZDeg(deg Real) Mat4 { return RotationZ(Radians(deg)) }

// Shearing moves each coordinate in proportion to the other two,
// e.g. xy moves x in proportion to y.
func Shearing(xy, xz, yx, yz, zx, zy Real) Mat4 {
	M := I4()
	M.Set(0, 1, xy)
	M.Set(0, 2, xz)
	M.Set(1, 0, yx)
	M.Set(1, 2, yz)
	M.Set(2, 0, zx)
	M.Set(2, 1, zy)
	return M
}

// Chain composes transforms in application order: ms[0] is applied first.
func Chain(ms ...Mat4) Mat4 {
	R := I4()
	for _, M := range ms {
		R = M.Mul(R)
	}
	return R
}
