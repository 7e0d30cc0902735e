package phong3d

type Ray struct {
	Origin    Tuple // point
	Direction Tuple // vector
}

// NewRay panics unless origin is a point and direction is a vector.
func NewRay(origin, direction Tuple) Ray {
	if !origin.IsPoint() || !direction.IsVector() {
		fail(ErrMalformedRay, "origin %+v, direction %+v", origin, direction)
	}
	return Ray{Origin: origin, Direction: direction}
}

// Position returns origin + direction*t.
func (r Ray) Position(t Real) Tuple { return r.Origin.Add(r.Direction.Mul(t)) }

func (r Ray) Transform(M Mat4) Ray {
	return Ray{Origin: M.MulTuple(r.Origin), Direction: M.MulTuple(r.Direction)}
}

func (r Ray) Intersect(s *Sphere) Intersections { return Intersect(r, s) }
