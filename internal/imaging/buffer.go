package imaging

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// ErrNilImage is returned when an operation is handed an absent source image.
var ErrNilImage = errors.New("source image is nil")

// Color is an 8-bit, non-premultiplied RGBA pixel value.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Opaque returns c with its alpha forced to 255.
func (c Color) Opaque() Color {
	c.A = 255
	return c
}

// Buffer is a width×height grid of pixels addressed by (x, y) with the origin
// at the top-left corner.
//
// Buffer wraps an *image.NRGBA whose bounds always start at (0,0), so pixel
// offsets can be computed without consulting Bounds().Min.
type Buffer struct {
	img *image.NRGBA
}

// NewBuffer allocates a buffer of the given size with every pixel set to the
// zero Color (fully transparent black).
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// NewBufferFromImage copies img into a new Buffer.
//
// Any image type and any bounds origin are accepted; the copy is converted
// to non-premultiplied 8-bit RGBA and re-anchored at (0,0). The source image
// is never retained, so later changes to it are not observed.
func NewBufferFromImage(img image.Image) (*Buffer, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	return &Buffer{img: imaging.Clone(img)}, nil
}

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.img.Rect.Dx() }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

// Len returns the number of pixels in the buffer.
func (b *Buffer) Len() int { return b.Width() * b.Height() }

// In reports whether (x, y) addresses a pixel inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width() && y < b.Height()
}

// At returns the pixel at (x, y). The caller must ensure In(x, y).
func (b *Buffer) At(x, y int) Color {
	i := b.img.PixOffset(x, y)
	p := b.img.Pix[i : i+4 : i+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Set writes c at (x, y). The caller must ensure In(x, y).
func (b *Buffer) Set(x, y int, c Color) {
	i := b.img.PixOffset(x, y)
	p := b.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Image exposes the buffer as a standard library image. The returned image
// shares pixel memory with the buffer.
func (b *Buffer) Image() *image.NRGBA { return b.img }

// Row returns the raw NRGBA bytes of row y (4 bytes per pixel).
func (b *Buffer) Row(y int) []uint8 {
	i := b.img.PixOffset(0, y)
	return b.img.Pix[i : i+4*b.Width()]
}
