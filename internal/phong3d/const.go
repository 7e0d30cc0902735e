package phong3d

// Real is the scalar type used by every geometric and color value.
type Real = float64

const (
	// Epsilon is the tolerance used by every approximate equality check.
	Epsilon = 1e-5

	// PPM encoding.
	PPMMaxValue   = 255
	PPMLineLength = 70

	// Material defaults and clamping ranges.
	DefaultAmbient   = 0.1
	DefaultDiffuse   = 0.9
	DefaultSpecular  = 0.9
	DefaultShininess = 200.0
	MinShininess     = 10.0
	MaxShininess     = 200.0

	// Config defaults.
	CanvasWidth  = 100
	CanvasHeight = 100
	Output       = "sphere.ppm"
	Format       = "ppm"
	Upscale      = 1
	MaxUpscale   = 16
	Frames       = 1
	MaxFrames    = 360
	GIFDelay     = 5         // 100ths of a second
	MaxTicks     = 1_000_000 // trajectory safety stop
)
