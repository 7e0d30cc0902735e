package phong3d

import (
	"math"
	"testing"
)

func TestIntersectionFields(t *testing.T) {
	s := UnitSphere()
	i := Intersection{T: 3.5, Object: s}
	if i.T != 3.5 || i.Object != s {
		t.Fatalf("intersection fields wrong: %+v", i)
	}
	xs := NewIntersections(Intersection{1, s}, Intersection{2, s})
	if len(xs) != 2 || xs[0].T != 1 || xs[1].T != 2 {
		t.Fatalf("aggregate wrong: %v", intersectTs(xs))
	}
}

func TestMergeKeepsOrder(t *testing.T) {
	s1, s2 := UnitSphere(), UnitSphere()
	s2.Transform = Translation(0, 0, 5)
	r := NewRay(Point(0, 0, 0), Vector(0, 0, 1))
	xs := Merge(Intersect(r, s1), Intersect(r, s2))
	want := []Real{-1, 1, 4, 6}
	if len(xs) != len(want) {
		t.Fatalf("merged: %v", intersectTs(xs))
	}
	for i := range want {
		if !approxEqual(xs[i].T, want[i]) {
			t.Fatalf("merged: %v want %v", intersectTs(xs), want)
		}
	}
	if xs[0].Object != s1 || xs[3].Object != s2 {
		t.Fatal("merged intersections lost their objects")
	}
	if got := Merge(); len(got) != 0 {
		t.Fatal("merge of nothing must be empty")
	}
}

func TestHit(t *testing.T) {
	s := UnitSphere()
	tests := []struct {
		name   string
		ts     []Real
		want   Real
		wantOK bool
	}{
		{"all positive", []Real{1, 2}, 1, true},
		{"some negative", []Real{-1, 1}, 1, true},
		{"all negative", []Real{-2, -1}, 0, false},
		{"lowest non-negative", []Real{5, 7, -3, 2}, 2, true},
		{"zero counts", []Real{0, 3}, 0, true},
		{"empty", nil, 0, false},
	}
	for _, tt := range tests {
		var xs Intersections
		for _, v := range tt.ts {
			xs = append(xs, Intersection{T: v, Object: s})
		}
		hit, ok := xs.Hit()
		if ok != tt.wantOK || (ok && hit.T != tt.want) {
			t.Fatalf("%s: hit=%+v ok=%v want %g/%v", tt.name, hit, ok, tt.want, tt.wantOK)
		}
	}
}

func TestHitTieKeepsFirst(t *testing.T) {
	a, b := UnitSphere(), UnitSphere()
	xs := NewIntersections(Intersection{4, b}, Intersection{2, a}, Intersection{2, b})
	hit, ok := xs.Hit()
	if !ok || hit.T != 2 || hit.Object != a {
		t.Fatalf("tie must resolve to the first inserted: %+v", hit)
	}
}

func TestHitSkipsNaN(t *testing.T) {
	s := UnitSphere()
	xs := NewIntersections(Intersection{math.NaN(), s}, Intersection{2, s})
	hit, ok := xs.Hit()
	if !ok || hit.T != 2 {
		t.Fatalf("NaN must not be a hit: %+v ok=%v", hit, ok)
	}
	if _, ok := NewIntersections(Intersection{math.NaN(), s}).Hit(); ok {
		t.Fatal("only NaN intersections must not hit")
	}
}

func TestFlattenedSphereHasNoHit(t *testing.T) {
	s := UnitSphere()
	s.Transform = Scaling(0, 1, 1)
	r := NewRay(Point(0, 0, -5), Vector(0, 0, 1))
	if hit, ok := Intersect(r, s).Hit(); ok {
		t.Fatalf("sphere with a singular transform must not be hit: %+v", hit)
	}
	// the valid sphere still wins in a merged result
	u := UnitSphere()
	hit, ok := Merge(Intersect(r, s), Intersect(r, u)).Hit()
	if !ok || hit.Object != u || !approxEqual(hit.T, 4) {
		t.Fatalf("merged hit: %+v ok=%v", hit, ok)
	}
}
