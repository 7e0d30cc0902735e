package phong3d

// Color stores RGB channels. Values are unbounded while shading and
// only clamped to [0,1] when encoded.
type Color struct {
	R, G, B Real
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

func NewColor(r, g, b Real) Color { return Color{r, g, b} }

func (c Color) Equal(o Color) bool {
	return approxEqual(c.R, o.R) && approxEqual(c.G, o.G) && approxEqual(c.B, o.B)
}

func (c Color) Add(o Color) Color { return Color{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c Color) Sub(o Color) Color { return Color{c.R - o.R, c.G - o.G, c.B - o.B} }
func (c Color) Mul(s Real) Color  { return Color{c.R * s, c.G * s, c.B * s} }

// Hadamard multiplies channel by channel (blending a surface with a light).
func (c Color) Hadamard(o Color) Color { return Color{c.R * o.R, c.G * o.G, c.B * o.B} }

// clamp01 clamps each channel to [0,1].
func (c Color) clamp01() Color {
	return Color{clamp(c.R, 0, 1), clamp(c.G, 0, 1), clamp(c.B, 0, 1)}
}
