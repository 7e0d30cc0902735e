package phong3d

import (
	"errors"
	"math"
	"testing"
)

// mustPanicWith runs fn and fails unless it panics with an error wrapping sentinel.
func mustPanicWith(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", sentinel)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, sentinel) {
			t.Fatalf("expected panic with %v, got %v", sentinel, r)
		}
	}()
	fn()
}

var sqrt2_2 = math.Sqrt(2) / 2
