package phong3d

import (
	"math"
)

// Sphere is defined in object space by Origin and Radius and placed into the
// world by Transform. Transform and Material may be reassigned at any time.
type Sphere struct {
	Origin    Tuple
	Radius    Real
	Transform Mat4
	Material  Material
}

func NewSphere(origin Tuple, radius Real) *Sphere {
	if !origin.IsPoint() {
		fail(ErrMalformedSphere, "origin %+v is not a point", origin)
	}
	s := &Sphere{
		Origin:    origin,
		Radius:    radius,
		Transform: I4(),
		Material:  DefaultMaterial(),
	}
	DebugLog("Created sphere: origin=%+v radius=%g", origin, radius)
	return s
}

// UnitSphere is a radius 1 sphere at the world origin with identity transform.
func UnitSphere() *Sphere { return NewSphere(Point(0, 0, 0), 1) }

// Intersect solves the ray/unit-sphere quadratic in object space. The result
// holds both roots in t1, t2 order (a tangent hit yields the same t twice),
// or nothing on a miss.
func Intersect(r Ray, s *Sphere) Intersections {
	lr := r.Transform(s.Transform.Inverse())
	sphereToRay := pointDiff(lr.Origin, s.Origin)

	a := lr.Direction.Dot(lr.Direction)
	b := 2 * lr.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1
	disc := b*b - 4*a*c
	if disc < 0 {
		return Intersections{}
	}
	sqrtD := math.Sqrt(disc)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return Intersections{{T: t1, Object: s}, {T: t2, Object: s}}
}

// NormalAt returns the unit world-space normal at a world-space point on the surface.
func (s *Sphere) NormalAt(worldPoint Tuple) Tuple {
	if !worldPoint.IsPoint() {
		fail(ErrWrongOperandKind, "normal at non-point %+v", worldPoint)
	}
	inv := s.Transform.Inverse()
	objectPoint := inv.MulTuple(worldPoint)
	objectNormal := pointDiff(objectPoint, s.Origin)
	worldNormal := inv.Transpose().MulTuple(objectNormal)
	// translation leaks into W through the inverse transpose
	worldNormal.W = 0
	return worldNormal.Norm()
}

// pointDiff is p - q for two points in object space. The cofactor inverse
// leaves W within rounding of 1, which the Sub precondition would reject.
func pointDiff(p, q Tuple) Tuple {
	return Vector(p.X-q.X, p.Y-q.Y, p.Z-q.Z)
}
