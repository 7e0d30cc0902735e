package phong3d

// Canvas is a Width×Height grid of colors, (0,0) at the top-left.
// Pixels are stored row-major: Pix[y*Width + x].
type Canvas struct {
	Width, Height int
	Pix           []Color
}

// NewCanvas allocates a black canvas.
func NewCanvas(width, height int) *Canvas {
	return NewCanvasFilled(width, height, Black)
}

func NewCanvasFilled(width, height int, c Color) *Canvas {
	if width <= 0 || height <= 0 {
		panic("canvas size must be positive")
	}
	pix := make([]Color, width*height)
	for i := range pix {
		pix[i] = c
	}
	DebugLog("Created canvas %dx%d filled with %+v", width, height, c)
	return &Canvas{Width: width, Height: height, Pix: pix}
}

func (c *Canvas) Contains(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// Flat pixel index helper.
func (c *Canvas) idx(x, y int) int {
	if !c.Contains(x, y) {
		fail(ErrInvalidCanvasIndex, "(%d,%d) outside %dx%d", x, y, c.Width, c.Height)
	}
	return y*c.Width + x
}

func (c *Canvas) At(x, y int) Color     { return c.Pix[c.idx(x, y)] }
func (c *Canvas) Set(x, y int, v Color) { c.Pix[c.idx(x, y)] = v }

// Equal compares sizes and every pixel within Epsilon.
func (c *Canvas) Equal(o *Canvas) bool {
	if c.Width != o.Width || c.Height != o.Height {
		return false
	}
	for i := range c.Pix {
		if !c.Pix[i].Equal(o.Pix[i]) {
			return false
		}
	}
	return true
}
