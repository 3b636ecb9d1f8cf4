package segment

import (
	"errors"

	"github.com/ironsheep/pixels-mcp/internal/imaging"
)

// ErrEmptyRegion is returned when averaging a region with no samples.
// Regions produced from an unvisited seed always contain the seed, so
// seeing this error indicates a broken invariant.
var ErrEmptyRegion = errors.New("cannot average an empty region")

// AverageColor returns the per-channel arithmetic mean of the region's
// sample colors. Results are truncated, not rounded. The average is opaque.
func AverageColor(r Region) (imaging.Color, error) {
	n := uint64(len(r.Samples))
	if n == 0 {
		return imaging.Color{}, ErrEmptyRegion
	}

	var red, green, blue uint64
	for _, s := range r.Samples {
		red += uint64(s.Color.R)
		green += uint64(s.Color.G)
		blue += uint64(s.Color.B)
	}

	return imaging.Color{
		R: uint8(red / n),
		G: uint8(green / n),
		B: uint8(blue / n),
		A: 255,
	}, nil
}

// Paint writes c at every sample location of r.
func Paint(r Region, out *imaging.Buffer, c imaging.Color) {
	for _, s := range r.Samples {
		out.Set(s.X, s.Y, c)
	}
}
