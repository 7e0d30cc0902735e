package phong3d

import (
	"errors"
	"fmt"
)

// Precondition violations panic with an error wrapping one of these sentinels,
// environmental failures (config, files, PPM input) are returned as plain errors.
var (
	ErrInvalidTupleCombination = errors.New("invalid tuple combination")
	ErrDegenerateVector        = errors.New("degenerate vector")
	ErrWrongOperandKind        = errors.New("wrong operand kind")
	ErrDimensionMismatch       = errors.New("dimension mismatch")
	ErrSingularMatrix          = errors.New("singular matrix")
	ErrMalformedPointLight     = errors.New("malformed point light")
	ErrMalformedRay            = errors.New("malformed ray")
	ErrMalformedSphere         = errors.New("malformed sphere")
	ErrInvalidCanvasIndex      = errors.New("invalid canvas index")
	ErrMalformedPPM            = errors.New("malformed PPM")
)

func fail(sentinel error, format string, args ...interface{}) {
	panic(fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...))
}
