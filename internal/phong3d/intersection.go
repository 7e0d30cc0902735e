package phong3d

// Intersection records the ray parameter t at which Object was hit.
type Intersection struct {
	T      Real
	Object *Sphere
}

// Intersections keeps computation order, it is never sorted. Empty means a miss.
type Intersections []Intersection

func NewIntersections(xs ...Intersection) Intersections {
	return append(Intersections{}, xs...)
}

// Merge concatenates results in argument order.
func Merge(results ...Intersections) Intersections {
	n := 0
	for _, r := range results {
		n += len(r)
	}
	out := make(Intersections, 0, n)
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// Hit returns the intersection with the smallest non-negative t.
// On ties the earlier one wins. NaN t values (singular transforms) never hit.
func (xs Intersections) Hit() (Intersection, bool) {
	best := Intersection{}
	ok := false
	for _, x := range xs {
		if !(x.T >= 0) {
			continue
		}
		if !ok || x.T < best.T {
			best, ok = x, true
		}
	}
	return best, ok
}
