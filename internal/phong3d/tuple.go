package phong3d

import "math"

// Tuple is a homogeneous 4-component value: W == 1 marks a point, W == 0 a vector.
type Tuple struct {
	X, Y, Z, W Real
}

// Zero is the zero vector.
var Zero = Tuple{}

func NewTuple(x, y, z, w Real) Tuple { return Tuple{x, y, z, w} }

// Point returns a tuple with W = 1.
func Point(x, y, z Real) Tuple { return Tuple{x, y, z, 1} }

// Vector returns a tuple with W = 0.
func Vector(x, y, z Real) Tuple { return Tuple{x, y, z, 0} }

func (t Tuple) IsPoint() bool  { return t.W == 1 }
func (t Tuple) IsVector() bool { return t.W == 0 }

// Equal compares component-wise within Epsilon.
func (t Tuple) Equal(o Tuple) bool {
	return approxEqual(t.X, o.X) && approxEqual(t.Y, o.Y) && approxEqual(t.Z, o.Z) && approxEqual(t.W, o.W)
}

// Add panics when both operands are points.
func (t Tuple) Add(o Tuple) Tuple {
	if t.W+o.W == 2 {
		fail(ErrInvalidTupleCombination, "adding two points %+v + %+v", t, o)
	}
	return Tuple{t.X + o.X, t.Y + o.Y, t.Z + o.Z, t.W + o.W}
}

// Sub panics when subtracting a point from a vector.
func (t Tuple) Sub(o Tuple) Tuple {
	if t.W-o.W < 0 {
		fail(ErrInvalidTupleCombination, "subtracting point %+v from vector %+v", o, t)
	}
	return Tuple{t.X - o.X, t.Y - o.Y, t.Z - o.Z, t.W - o.W}
}

func (t Tuple) Neg() Tuple       { return Tuple{-t.X, -t.Y, -t.Z, -t.W} }
func (t Tuple) Mul(s Real) Tuple { return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s} }
func (t Tuple) Div(s Real) Tuple { return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s} }

// Dot returns the dot product over all four components.
func (t Tuple) Dot(o Tuple) Real {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Len returns the magnitude, W included.
func (t Tuple) Len() Real { return math.Sqrt(t.Dot(t)) }

// Norm returns a unit-length copy; a zero-magnitude tuple panics.
func (t Tuple) Norm() Tuple {
	l := t.Len()
	if l == 0 {
		fail(ErrDegenerateVector, "normalizing %+v", t)
	}
	return Tuple{t.X / l, t.Y / l, t.Z / l, t.W / l}
}

// Cross is defined for vectors only.
func (t Tuple) Cross(o Tuple) Tuple {
	if !t.IsVector() || !o.IsVector() {
		fail(ErrWrongOperandKind, "cross product of %+v and %+v", t, o)
	}
	return Vector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	)
}

// Reflect mirrors the incoming vector around the normal.
func Reflect(in, normal Tuple) Tuple {
	if !in.IsVector() || !normal.IsVector() {
		fail(ErrWrongOperandKind, "reflecting %+v around %+v", in, normal)
	}
	return in.Sub(normal.Mul(2 * in.Dot(normal)))
}
