package phong3d

import (
	"math"
	"testing"
)

func intersectTs(xs Intersections) []Real {
	ts := make([]Real, len(xs))
	for i, x := range xs {
		ts[i] = x.T
	}
	return ts
}

func TestIntersect(t *testing.T) {
	s := UnitSphere()
	tests := []struct {
		name string
		r    Ray
		want []Real
	}{
		{"two points", NewRay(Point(0, 0, -5), Vector(0, 0, 1)), []Real{4, 6}},
		{"tangent", NewRay(Point(0, 1, -5), Vector(0, 0, 1)), []Real{5, 5}},
		{"miss", NewRay(Point(0, 2, -5), Vector(0, 0, 1)), nil},
		{"origin inside", NewRay(Point(0, 0, 0), Vector(0, 0, 1)), []Real{-1, 1}},
		{"sphere behind", NewRay(Point(0, 0, 5), Vector(0, 0, 1)), []Real{-6, -4}},
	}
	for _, tt := range tests {
		xs := Intersect(tt.r, s)
		if len(xs) != len(tt.want) {
			t.Fatalf("%s: got %v want %v", tt.name, intersectTs(xs), tt.want)
		}
		for i, want := range tt.want {
			if !approxEqual(xs[i].T, want) {
				t.Fatalf("%s: got %v want %v", tt.name, intersectTs(xs), tt.want)
			}
			if xs[i].Object != s {
				t.Fatalf("%s: intersection %d does not reference the sphere", tt.name, i)
			}
		}
	}
}

func TestRayIntersectMethod(t *testing.T) {
	s := UnitSphere()
	r := NewRay(Point(0, 0, -5), Vector(0, 0, 1))
	if got := intersectTs(r.Intersect(s)); len(got) != 2 || got[0] != 4 || got[1] != 6 {
		t.Fatalf("Ray.Intersect: %v", got)
	}
}

func TestIntersectTransformedSphere(t *testing.T) {
	r := NewRay(Point(0, 0, -5), Vector(0, 0, 1))
	s := UnitSphere()
	s.Transform = Scaling(2, 2, 2)
	xs := Intersect(r, s)
	if len(xs) != 2 || !approxEqual(xs[0].T, 3) || !approxEqual(xs[1].T, 7) {
		t.Fatalf("scaled sphere: %v", intersectTs(xs))
	}
	s.Transform = Translation(5, 0, 0)
	if xs := Intersect(r, s); len(xs) != 0 {
		t.Fatalf("translated sphere must be missed: %v", intersectTs(xs))
	}
	if r.Origin != Point(0, 0, -5) || r.Direction != Vector(0, 0, 1) {
		t.Fatal("Intersect must not modify the ray")
	}
}

func TestSphereDefaults(t *testing.T) {
	s := UnitSphere()
	if !s.Transform.Equal(I4()) {
		t.Fatal("default transform must be identity")
	}
	if !s.Material.Equal(DefaultMaterial()) {
		t.Fatal("default material mismatch")
	}
	if s.Origin != Point(0, 0, 0) || s.Radius != 1 {
		t.Fatalf("unit sphere: %+v", s)
	}
	T := Translation(2, 3, 4)
	s.Transform = T
	if !s.Transform.Equal(T) {
		t.Fatal("transform not reassigned")
	}
	m := DefaultMaterial()
	m.SetAmbient(1)
	s.Material = m
	if s.Material.Ambient() != 1 {
		t.Fatal("material not reassigned")
	}
	mustPanicWith(t, ErrMalformedSphere, func() { NewSphere(Vector(0, 0, 0), 1) })
}

func TestNormalAt(t *testing.T) {
	s := UnitSphere()
	k := math.Sqrt(3) / 3
	tests := []struct {
		p, want Tuple
	}{
		{Point(1, 0, 0), Vector(1, 0, 0)},
		{Point(0, 1, 0), Vector(0, 1, 0)},
		{Point(0, 0, 1), Vector(0, 0, 1)},
		{Point(k, k, k), Vector(k, k, k)},
	}
	for _, tt := range tests {
		n := s.NormalAt(tt.p)
		if !n.Equal(tt.want) {
			t.Fatalf("normal at %+v = %+v want %+v", tt.p, n, tt.want)
		}
		if !n.Equal(n.Norm()) {
			t.Fatalf("normal at %+v is not unit", tt.p)
		}
	}
	mustPanicWith(t, ErrWrongOperandKind, func() { s.NormalAt(Vector(1, 0, 0)) })
}

func TestNormalAtTransformed(t *testing.T) {
	s := UnitSphere()
	s.Transform = Translation(0, 1, 0)
	n := s.NormalAt(Point(0, 1.70711, -0.70711))
	if !n.Equal(Vector(0, 0.70711, -0.70711)) {
		t.Fatalf("translated sphere normal: %+v", n)
	}
	if n.W != 0 {
		t.Fatalf("normal must be a vector, w=%g", n.W)
	}

	s.Transform = Chain(RotationZ(math.Pi/5), Scaling(1, 0.5, 1))
	n = s.NormalAt(Point(0, sqrt2_2, -sqrt2_2))
	if !n.Equal(Vector(0, 0.97014, -0.24254)) {
		t.Fatalf("scaled and rotated sphere normal: %+v", n)
	}
	if !approxEqual(n.Len(), 1) || n.W != 0 {
		t.Fatalf("normal not a unit vector: %+v", n)
	}
}
