package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
)

// Negate returns the color negative of img: each of R, G and B becomes
// 255 minus its input value while alpha is copied unchanged.
//
// The transform is a pure per-pixel map. Rows are split across worker
// goroutines; each worker writes a disjoint band of the output, so no
// synchronisation beyond the final join is needed.
//
// Applying Negate twice yields the original pixel values.
func Negate(img image.Image) (*Buffer, error) {
	src, err := NewBufferFromImage(img)
	if err != nil {
		return nil, err
	}
	return NegateBuffer(src), nil
}

// NegateBuffer is Negate for an already-decoded Buffer. src is not modified.
func NegateBuffer(src *Buffer) *Buffer {
	w, h := src.Width(), src.Height()
	dst := NewBuffer(w, h)

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			in := src.Row(y)
			out := dst.Row(y)
			for i := 0; i < len(in); i += 4 {
				out[i+0] = 255 - in[i+0]
				out[i+1] = 255 - in[i+1]
				out[i+2] = 255 - in[i+2]
				out[i+3] = in[i+3]
			}
		}
	})

	return dst
}

// NegateColor returns the channel-wise negative of c, preserving alpha.
func NegateColor(c Color) Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}
