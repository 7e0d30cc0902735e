package phong3d

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// channelByte maps a channel to [0..PPMMaxValue], clamping out-of-range values.
func channelByte(v Real) int {
	return int(clamp(math.Round(v*PPMMaxValue), 0, PPMMaxValue))
}

// WritePPM encodes the canvas as plain (P3) PPM. Every pixel row starts a new
// line and no line reaches PPMLineLength characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n%d\n", c.Width, c.Height, PPMMaxValue)
	var line []byte
	for y := 0; y < c.Height; y++ {
		line = line[:0]
		for x := 0; x < c.Width; x++ {
			p := c.Pix[y*c.Width+x]
			for _, ch := range [3]Real{p.R, p.G, p.B} {
				v := strconv.Itoa(channelByte(ch))
				if len(line) > 0 && len(line)+1+len(v) >= PPMLineLength {
					line = append(line, '\n')
					bw.Write(line)
					line = line[:0]
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = append(line, v...)
			}
		}
		line = append(line, '\n')
		bw.Write(line)
	}
	return bw.Flush()
}

// PPM returns the encoded canvas.
func (c *Canvas) PPM() []byte {
	var buf bytes.Buffer
	_ = c.WritePPM(&buf)
	return buf.Bytes()
}

// ReadPPM decodes a plain (P3) PPM. Comments ('#' to end of line) are skipped.
func ReadPPM(r io.Reader) (*Canvas, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	var fields []string
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields = append(fields, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: incomplete header", ErrMalformedPPM)
	}
	if fields[0] != "P3" {
		return nil, fmt.Errorf("%w: only plain 'P3' images are supported, got %q", ErrMalformedPPM, fields[0])
	}
	hdr := make([]int, 3)
	for i, name := range []string{"width", "height", "max value"} {
		v, err := strconv.Atoi(fields[i+1])
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%w: invalid %s %q", ErrMalformedPPM, name, fields[i+1])
		}
		hdr[i] = v
	}
	width, height, maxv := hdr[0], hdr[1], Real(hdr[2])
	data := fields[4:]
	if len(data) < width*height*3 {
		return nil, fmt.Errorf("%w: expected %d values, got %d", ErrMalformedPPM, width*height*3, len(data))
	}
	cv := NewCanvas(width, height)
	for i := range cv.Pix {
		var ch [3]Real
		for k := 0; k < 3; k++ {
			v, err := strconv.Atoi(data[i*3+k])
			if err != nil {
				return nil, fmt.Errorf("%w: invalid value %q", ErrMalformedPPM, data[i*3+k])
			}
			ch[k] = Real(v) / maxv
		}
		cv.Pix[i] = Color{ch[0], ch[1], ch[2]}
	}
	DebugLog("Read PPM %dx%d, max value %g", width, height, maxv)
	return cv, nil
}

// Quantized returns the canvas as it comes back from a PPM round trip.
func (c *Canvas) Quantized() *Canvas {
	q := &Canvas{Width: c.Width, Height: c.Height, Pix: make([]Color, len(c.Pix))}
	for i, p := range c.Pix {
		q.Pix[i] = Color{
			Real(channelByte(p.R)) / PPMMaxValue,
			Real(channelByte(p.G)) / PPMMaxValue,
			Real(channelByte(p.B)) / PPMMaxValue,
		}
	}
	return q
}
