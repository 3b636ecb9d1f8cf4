package segment

import (
	"errors"
	"testing"

	"github.com/ironsheep/pixels-mcp/internal/imaging"
)

// createBuffer builds a buffer from rows of colors (rows[y][x]).
func createBuffer(rows [][]imaging.Color) *imaging.Buffer {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	buf := imaging.NewBuffer(w, h)
	for y, row := range rows {
		for x, c := range row {
			buf.Set(x, y, c)
		}
	}
	return buf
}

// createUniformBuffer builds a width×height buffer of a single color.
func createUniformBuffer(width, height int, c imaging.Color) *imaging.Buffer {
	buf := imaging.NewBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.Set(x, y, c)
		}
	}
	return buf
}

func rgb(r, g, b uint8) imaging.Color { return imaging.Color{R: r, G: g, B: b, A: 255} }

func TestGrow_SeedOnly(t *testing.T) {
	src := createBuffer([][]imaging.Color{
		{rgb(0, 0, 0), rgb(255, 255, 255)},
		{rgb(255, 255, 255), rgb(0, 0, 0)},
	})
	marks := NewMarks(2, 2)

	region, err := Grow(src, marks, imaging.DefaultMetric, src.At(0, 0), 0, 0)
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if region.Len() != 1 {
		t.Fatalf("diagonal neighbours must not join: got %d samples", region.Len())
	}
	if s := region.Samples[0]; s.X != 0 || s.Y != 0 {
		t.Errorf("first sample: got (%d,%d), want seed (0,0)", s.X, s.Y)
	}
	if marks.Count() != 1 || !marks.Visited(0, 0) {
		t.Errorf("only the seed should be marked, count=%d", marks.Count())
	}
}

func TestGrow_FixedNeighbourOrder(t *testing.T) {
	// Plus-shaped region around (1,1) with distinct but similar colors.
	bg := rgb(255, 0, 0)
	src := createBuffer([][]imaging.Color{
		{bg, rgb(4, 0, 0), bg},
		{rgb(2, 0, 0), rgb(0, 0, 0), rgb(1, 0, 0)},
		{bg, rgb(3, 0, 0), bg},
	})

	region, err := Grow(src, NewMarks(3, 3), imaging.DefaultMetric, src.At(1, 1), 1, 1)
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}

	want := []Point{{1, 1}, {2, 1}, {0, 1}, {1, 2}, {1, 0}}
	if region.Len() != len(want) {
		t.Fatalf("got %d samples, want %d", region.Len(), len(want))
	}
	for i, p := range want {
		s := region.Samples[i]
		if s.X != p.X || s.Y != p.Y {
			t.Errorf("sample %d: got (%d,%d), want (%d,%d)", i, s.X, s.Y, p.X, p.Y)
		}
		if s.Color != src.At(p.X, p.Y) {
			t.Errorf("sample %d color: got %+v, want source color", i, s.Color)
		}
	}
}

func TestGrow_ComparesAgainstSeedNotNeighbour(t *testing.T) {
	// A gradient where each step is 60 apart: neighbours are similar to
	// each other but the third pixel is 120 away from the seed.
	src := createBuffer([][]imaging.Color{
		{rgb(0, 0, 0), rgb(20, 20, 20), rgb(40, 40, 40), rgb(60, 60, 60)},
	})

	region, err := Grow(src, NewMarks(4, 1), imaging.DefaultMetric, src.At(0, 0), 0, 0)
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if region.Len() != 2 {
		t.Errorf("got %d samples, want 2 (distances 0 and 60; 120 and 180 rejected)", region.Len())
	}
}

func TestGrow_ThresholdBoundary(t *testing.T) {
	seed := rgb(100, 100, 100)

	tests := []struct {
		name string
		next imaging.Color
		want int
	}{
		{"distance 99 joins", rgb(133, 133, 133), 2},
		{"distance 100 rejected", rgb(134, 133, 133), 1},
		{"distance 765 rejected", rgb(255, 255, 255), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := createBuffer([][]imaging.Color{{seed, tt.next}})
			region, err := Grow(src, NewMarks(2, 1), imaging.DefaultMetric, seed, 0, 0)
			if err != nil {
				t.Fatalf("Grow failed: %v", err)
			}
			if region.Len() != tt.want {
				t.Errorf("got %d samples, want %d", region.Len(), tt.want)
			}
		})
	}
}

func TestGrow_ReachabilityThroughQualifyingPixels(t *testing.T) {
	a := rgb(10, 10, 10)
	x := rgb(250, 250, 250)
	// The two 'a' blocks are connected only around the wall of 'x'.
	src := createBuffer([][]imaging.Color{
		{a, x, a},
		{a, x, a},
		{a, a, a},
	})
	marks := NewMarks(3, 3)

	region, err := Grow(src, marks, imaging.DefaultMetric, a, 0, 0)
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if region.Len() != 7 {
		t.Errorf("got %d samples, want 7", region.Len())
	}
	if marks.Visited(1, 0) || marks.Visited(1, 1) {
		t.Error("wall pixels must stay unvisited")
	}
}

func TestGrow_SkipsVisitedPixels(t *testing.T) {
	src := createUniformBuffer(3, 1, rgb(5, 5, 5))
	marks := NewMarks(3, 1)
	marks.mark(1, 0)

	region, err := Grow(src, marks, imaging.DefaultMetric, src.At(0, 0), 0, 0)
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if region.Len() != 1 {
		t.Errorf("visited pixel must block growth: got %d samples", region.Len())
	}
}

func TestGrow_LargeRegionIsIterative(t *testing.T) {
	// One region of a million pixels; a recursive fill would need a call
	// stack about as deep.
	const w, h = 2000, 500
	src := createUniformBuffer(w, h, rgb(42, 42, 42))
	marks := NewMarks(w, h)

	region, err := Grow(src, marks, imaging.DefaultMetric, src.At(0, 0), 0, 0)
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if region.Len() != w*h {
		t.Errorf("got %d samples, want %d", region.Len(), w*h)
	}
	if !marks.Complete() {
		t.Error("all pixels should be visited")
	}
}

func TestGrow_Errors(t *testing.T) {
	src := createUniformBuffer(2, 2, rgb(1, 1, 1))

	t.Run("out of bounds", func(t *testing.T) {
		_, err := Grow(src, NewMarks(2, 2), imaging.DefaultMetric, rgb(1, 1, 1), 2, 0)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("got %v, want ErrOutOfBounds", err)
		}
	})

	t.Run("seed visited", func(t *testing.T) {
		marks := NewMarks(2, 2)
		marks.mark(0, 0)
		_, err := Grow(src, marks, imaging.DefaultMetric, rgb(1, 1, 1), 0, 0)
		if !errors.Is(err, ErrSeedVisited) {
			t.Errorf("got %v, want ErrSeedVisited", err)
		}
	})

	t.Run("nil source", func(t *testing.T) {
		_, err := Grow(nil, NewMarks(2, 2), imaging.DefaultMetric, rgb(1, 1, 1), 0, 0)
		if !errors.Is(err, imaging.ErrNilImage) {
			t.Errorf("got %v, want ErrNilImage", err)
		}
	})

	t.Run("mismatched marks", func(t *testing.T) {
		if _, err := NewGrower(src, NewMarks(3, 2), imaging.DefaultMetric); err == nil {
			t.Error("NewGrower should reject marks of a different size")
		}
	})
}

func TestGrow_DissimilarStartYieldsEmptyRegion(t *testing.T) {
	src := createUniformBuffer(2, 2, rgb(0, 0, 0))
	marks := NewMarks(2, 2)

	region, err := Grow(src, marks, imaging.DefaultMetric, rgb(255, 255, 255), 0, 0)
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if region.Len() != 0 || marks.Count() != 0 {
		t.Errorf("got %d samples, %d marks; want none", region.Len(), marks.Count())
	}
}

func TestMarks(t *testing.T) {
	m := NewMarks(2, 2)
	if m.Complete() || m.Count() != 0 {
		t.Fatal("new marks should be empty")
	}
	if !m.mark(1, 1) {
		t.Error("first mark should succeed")
	}
	if m.mark(1, 1) {
		t.Error("second mark of the same pixel should fail")
	}
	if m.Count() != 1 {
		t.Errorf("Count: got %d, want 1", m.Count())
	}
	if !NewMarks(0, 0).Complete() {
		t.Error("empty grid is trivially complete")
	}
}
