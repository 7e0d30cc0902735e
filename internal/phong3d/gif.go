package phong3d

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// EncodeGIF writes frames as a looping animated GIF, each frame dithered to
// the Plan9 palette. delay is in 100ths of a second (e.g. 5 => 20 fps).
func EncodeGIF(w io.Writer, frames []*Canvas, delay, upscale int) error {
	if len(frames) == 0 {
		return fmt.Errorf("gif: no frames")
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	step := imax(1, len(frames)/100)
	for k, c := range frames {
		if Progress && len(frames) > 1 && k%step == 0 {
			fmt.Printf("[GIF] %.2f%%\n", Real(k+1)*100/Real(len(frames)))
		}
		src := c.Upscale(upscale)
		pimg := image.NewPaletted(src.Bounds(), palette.Plan9)
		xdraw.FloydSteinberg.Draw(pimg, pimg.Bounds(), src, image.Point{})
		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}
	return gif.EncodeAll(w, out)
}

// SaveGIF writes the animation to path.
func SaveGIF(path string, frames []*Canvas, delay, upscale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeGIF(f, frames, delay, upscale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("[GIF] saved %s (%d frames)\n", path, len(frames))
	return nil
}
