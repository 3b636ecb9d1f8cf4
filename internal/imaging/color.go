package imaging

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string   `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGBA Color    `json:"rgba"` // 8-bit components with alpha
	HSL  HSLColor `json:"hsl"`  // HSL representation
}

// Describe renders c as a ColorResult.
func Describe(c Color) ColorResult {
	cf := toColorful(c)
	h, s, l := cf.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return ColorResult{
		Hex:  Hex(c),
		RGBA: c,
		HSL: HSLColor{
			H: int(h),
			S: int(s * 100),
			L: int(l * 100),
		},
	}
}

// Hex formats c as "#RRGGBB", ignoring alpha.
func Hex(c Color) string {
	return strings.ToUpper(toColorful(c).Hex())
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Coordinates are 0-based relative to the image's top-left corner, so images
// whose bounds do not start at (0,0) are sampled at Min + (x, y).
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	bounds := img.Bounds()
	px, py := bounds.Min.X+x, bounds.Min.Y+y
	if x < 0 || y < 0 || px >= bounds.Max.X || py >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(px, py).RGBA()
	c := Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	if a != 0 && a != 0xffff {
		// Un-premultiply so partially transparent pixels report their own hue.
		c.R = uint8(r * 0xffff / a >> 8)
		c.G = uint8(g * 0xffff / a >> 8)
		c.B = uint8(b * 0xffff / a >> 8)
	}

	result := Describe(c)
	return &result, nil
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
