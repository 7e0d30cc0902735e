package phong3d

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Image converts the canvas to an 8-bit NRGBA image, clamping every channel to [0,1].
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	toByte := func(v Real) uint8 { return uint8(math.Round(clamp(v, 0, 1) * 255)) }
	for y := 0; y < c.Height; y++ {
		rowOff := y * img.Stride
		for x := 0; x < c.Width; x++ {
			p := c.Pix[y*c.Width+x]
			o := rowOff + x*4
			img.Pix[o+0] = toByte(p.R)
			img.Pix[o+1] = toByte(p.G)
			img.Pix[o+2] = toByte(p.B)
			img.Pix[o+3] = 255
		}
	}
	return img
}

// Upscale resamples the canvas image by an integer factor with Catmull-Rom.
// factor <= 1 returns the plain image.
func (c *Canvas) Upscale(factor int) image.Image {
	src := c.Image()
	if factor <= 1 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, c.Width*factor, c.Height*factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	DebugLog("Upscaled %dx%d by %d", c.Width, c.Height, factor)
	return dst
}

// FormatFromPath guesses the output format from a file extension.
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "tif":
		return "tiff"
	case "ppm", "png", "bmp", "tiff", "gif":
		return ext
	}
	return Format
}

// Encode writes the canvas in the given format: ppm, png, bmp, tiff or gif.
// upscale only applies to the raster formats, PPM keeps the canvas resolution.
func (c *Canvas) Encode(w io.Writer, format string, upscale int) error {
	switch format {
	case "ppm":
		return c.WritePPM(w)
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, c.Upscale(upscale))
	case "bmp":
		return bmp.Encode(w, c.Upscale(upscale))
	case "tiff":
		return tiff.Encode(w, c.Upscale(upscale), &tiff.Options{Compression: tiff.Deflate})
	case "gif":
		return EncodeGIF(w, []*Canvas{c}, 0, upscale)
	}
	return fmt.Errorf("unknown image format %q (want ppm, png, bmp, tiff or gif)", format)
}

// Save writes the canvas to path in the given format.
func (c *Canvas) Save(path, format string, upscale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Encode(f, format, upscale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("[%s] saved %s\n", strings.ToUpper(format), path)
	return nil
}
