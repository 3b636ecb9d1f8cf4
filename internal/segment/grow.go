package segment

import (
	"errors"
	"fmt"

	"github.com/ironsheep/pixels-mcp/internal/imaging"
)

var (
	// ErrOutOfBounds is returned when a seed coordinate lies outside the image.
	ErrOutOfBounds = errors.New("seed outside image bounds")

	// ErrSeedVisited is returned when a seed pixel already belongs to a region.
	ErrSeedVisited = errors.New("seed pixel already visited")
)

// Point is a pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// neighbors lists the 4-connected offsets in the order they are expanded:
// +x, -x, +y, -y.
var neighbors = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Sample is one pixel admitted to a region: its source color and location.
type Sample struct {
	Color imaging.Color
	X, Y  int
}

// Region is a 4-connected set of pixels whose colors all lie within the
// metric's tolerance of Seed. Samples are in admission order, so the first
// sample is always the seed pixel.
type Region struct {
	Seed    imaging.Color
	Samples []Sample
}

// Len returns the number of pixels in the region.
func (r Region) Len() int { return len(r.Samples) }

// Marks records which pixels have been claimed by a region. A pixel moves
// from unvisited to visited exactly once and never back.
type Marks struct {
	width, height int
	seen          []bool
	count         int
}

// NewMarks returns a width×height grid with every pixel unvisited.
func NewMarks(width, height int) *Marks {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Marks{width: width, height: height, seen: make([]bool, width*height)}
}

// Visited reports whether (x, y) has been claimed.
func (m *Marks) Visited(x, y int) bool { return m.seen[y*m.width+x] }

// Count returns the number of visited pixels.
func (m *Marks) Count() int { return m.count }

// Complete reports whether every pixel has been visited.
func (m *Marks) Complete() bool { return m.count == len(m.seen) }

// mark claims (x, y). It reports false if the pixel was already claimed.
func (m *Marks) mark(x, y int) bool {
	i := y*m.width + x
	if m.seen[i] {
		return false
	}
	m.seen[i] = true
	m.count++
	return true
}

// Grower runs region growing over one source buffer. It reuses its frontier
// between calls, so a single Grower should serve a whole scan.
//
// A Grower holds the only write access to its Marks for as long as it is in
// use; it is not safe for concurrent use.
type Grower struct {
	src      *imaging.Buffer
	marks    *Marks
	metric   imaging.Metric
	frontier []Point
}

// NewGrower returns a Grower reading src and claiming pixels in marks.
func NewGrower(src *imaging.Buffer, marks *Marks, metric imaging.Metric) (*Grower, error) {
	if src == nil {
		return nil, imaging.ErrNilImage
	}
	if marks == nil || marks.width != src.Width() || marks.height != src.Height() {
		return nil, fmt.Errorf("marks do not match %dx%d source", src.Width(), src.Height())
	}
	return &Grower{src: src, marks: marks, metric: metric}, nil
}

// Grow collects every pixel 4-connected to (x, y) through pixels similar to
// seed, marking each as visited the moment it is admitted.
//
// Similarity is always measured against seed, never against neighbours
// already in the region, so long gradients cannot drift. Neighbours outside
// the image are skipped. If the start pixel itself is not similar to seed
// the returned region is empty and no pixel is marked.
//
// The traversal uses an explicit stack and expands neighbours in the fixed
// order +x, -x, +y, -y, so results are deterministic for a given input.
func (g *Grower) Grow(seed imaging.Color, x, y int) (Region, error) {
	if !g.src.In(x, y) {
		return Region{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.src.Width(), g.src.Height())
	}
	if g.marks.Visited(x, y) {
		return Region{}, fmt.Errorf("%w: (%d,%d)", ErrSeedVisited, x, y)
	}

	region := Region{Seed: seed}
	if !g.admit(&region, x, y) {
		return region, nil
	}

	stack := append(g.frontier[:0], Point{x, y})
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range neighbors {
			nx, ny := p.X+d.X, p.Y+d.Y
			if g.admit(&region, nx, ny) {
				stack = append(stack, Point{nx, ny})
			}
		}
	}
	g.frontier = stack

	return region, nil
}

// admit claims (x, y) for region when it is in bounds, unvisited and
// similar to the region's seed.
func (g *Grower) admit(region *Region, x, y int) bool {
	if !g.src.In(x, y) || g.marks.Visited(x, y) {
		return false
	}
	c := g.src.At(x, y)
	if !g.metric.Similar(c, region.Seed) {
		return false
	}
	g.marks.mark(x, y)
	region.Samples = append(region.Samples, Sample{Color: c, X: x, Y: y})
	return true
}

// Grow is a convenience wrapper that runs a single region-growing pass.
func Grow(src *imaging.Buffer, marks *Marks, metric imaging.Metric, seed imaging.Color, x, y int) (Region, error) {
	g, err := NewGrower(src, marks, metric)
	if err != nil {
		return Region{}, err
	}
	return g.Grow(seed, x, y)
}
