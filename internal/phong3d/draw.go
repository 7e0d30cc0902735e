package phong3d

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// primaryRay returns the ray from the eye at the world origin through pixel
// (x,y) of a projection plane at z=1 spanning [-1,1] on the shorter axis.
func primaryRay(c *Canvas, x, y int) Ray {
	half := Real((min(c.Width, c.Height) - 1) / 2)
	if half == 0 {
		half = 1
	}
	cx, cy := Real((c.Width-1)/2), Real((c.Height-1)/2)
	dx := (Real(x) - cx) / half
	dy := (cy - Real(y)) / half
	return NewRay(Point(0, 0, 0), Vector(dx, dy, 1).Norm())
}

// shadePixel returns the Phong color of the first visible surface, false on a miss.
func shadePixel(r Ray, s *Sphere, light PointLight) (Color, bool) {
	hit, ok := Intersect(r, s).Hit()
	if !ok {
		return Color{}, false
	}
	point := r.Position(hit.T)
	normal := hit.Object.NormalAt(point)
	eye := r.Direction.Neg()
	return Lighting(hit.Object.Material, light, point, eye, normal), true
}

// DrawSphere ray casts s onto the canvas, one ray per pixel. Rows are rendered
// in parallel; pixels that miss the sphere are left untouched. A precondition
// violation inside a row is returned as that row's error.
func DrawSphere(c *Canvas, s *Sphere, light PointLight) error {
	workers := Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = imax(1, workers)

	var done int64
	nextPrint := int64(imax(1, c.Height/100)) // every ~1%
	var g errgroup.Group
	g.SetLimit(workers)
	DebugLogOnce("Render workers: %d", workers)
	DebugLog("Drawing %dx%d, light %+v", c.Width, c.Height, light)
	for y := 0; y < c.Height; y++ {
		y := y
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("row %d: %v", y, r)
				}
			}()
			for x := 0; x < c.Width; x++ {
				if col, ok := shadePixel(primaryRay(c, x, y), s, light); ok {
					c.Pix[y*c.Width+x] = col
				}
			}
			rows := atomic.AddInt64(&done, 1)
			if Progress && rows%nextPrint == 0 {
				fmt.Printf("[RENDER] %.2f%%\n", Real(rows)*100/Real(c.Height))
			}
			return nil
		})
	}
	return g.Wait()
}
