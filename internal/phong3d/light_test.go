package phong3d

import "testing"

func TestNewPointLight(t *testing.T) {
	l := NewPointLight(Point(0, 0, 0), White)
	if l.Position != Point(0, 0, 0) || l.Intensity != White {
		t.Fatalf("light fields wrong: %+v", l)
	}
	mustPanicWith(t, ErrMalformedPointLight, func() { NewPointLight(Vector(0, 0, 0), White) })
}
