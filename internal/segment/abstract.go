package segment

import (
	"context"
	"fmt"
	"image"
	"sort"

	"github.com/ironsheep/pixels-mcp/internal/imaging"
)

// Options configures Abstract.
type Options struct {
	// Metric decides which pixels join a seed's region. The zero value is
	// replaced by imaging.DefaultMetric.
	Metric imaging.Metric

	// PaletteSize is the number of largest regions to report in
	// Result.Palette. Zero disables palette collection.
	PaletteSize int
}

// PaletteEntry describes one region in the abstracted output.
type PaletteEntry struct {
	Hex        string        `json:"hex"`
	Color      imaging.Color `json:"rgba"`
	Seed       Point         `json:"seed"`
	Pixels     int           `json:"pixels"`
	Percentage float64       `json:"percentage"`
}

// Result is the outcome of an abstraction run.
type Result struct {
	// Image is the painted output. Pixels that were never reached (only
	// possible when Partial is set) remain fully transparent.
	Image *imaging.Buffer `json:"-"`

	Width  int `json:"width"`
	Height int `json:"height"`

	// Regions is the number of regions painted.
	Regions int `json:"regions"`

	// LargestRegion is the pixel count of the biggest region.
	LargestRegion int `json:"largest_region"`

	// Visited is the number of pixels painted. It equals Width×Height
	// unless the run was cancelled.
	Visited int `json:"visited"`

	// Partial is set when the run stopped before every pixel was painted.
	Partial bool `json:"partial"`

	// Palette lists the largest regions, biggest first.
	Palette []PaletteEntry `json:"palette,omitempty"`
}

// Abstract segments img into regions of similar color and paints each region
// with its average color. See AbstractBuffer.
func Abstract(ctx context.Context, img image.Image, opts Options) (*Result, error) {
	src, err := imaging.NewBufferFromImage(img)
	if err != nil {
		return nil, err
	}
	return AbstractBuffer(ctx, src, opts)
}

// AbstractBuffer partitions src into regions and paints every region with its
// average color, producing a posterised copy of the image.
//
// Pixels are scanned column by column (x outer, y inner). Each pixel not yet
// claimed seeds a new region grown against its own color; the region is
// averaged and painted immediately. Every pixel ends up in exactly one
// region. Output pixels are opaque.
//
// ctx is checked before each region is grown. When it is done the run stops,
// Result.Partial is set, the pixels already painted are kept, and the
// returned error wraps ctx.Err(). src is never modified.
func AbstractBuffer(ctx context.Context, src *imaging.Buffer, opts Options) (*Result, error) {
	if src == nil {
		return nil, imaging.ErrNilImage
	}
	metric := opts.Metric
	if metric.Threshold == 0 {
		metric = imaging.DefaultMetric
	}
	if _, err := imaging.NewMetric(metric.Threshold); err != nil {
		return nil, err
	}

	w, h := src.Width(), src.Height()
	out := imaging.NewBuffer(w, h)
	marks := NewMarks(w, h)
	grower, err := NewGrower(src, marks, metric)
	if err != nil {
		return nil, err
	}

	result := &Result{Image: out, Width: w, Height: h}
	var palette []PaletteEntry

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if marks.Visited(x, y) {
				continue
			}
			if err := ctx.Err(); err != nil {
				result.Visited = marks.Count()
				result.Partial = true
				result.Palette = topRegions(palette, opts.PaletteSize, result.Visited)
				return result, fmt.Errorf("abstract stopped after %d regions: %w", result.Regions, err)
			}

			region, err := grower.Grow(src.At(x, y), x, y)
			if err != nil {
				return nil, err
			}
			avg, err := AverageColor(region)
			if err != nil {
				return nil, fmt.Errorf("region at (%d,%d): %w", x, y, err)
			}
			Paint(region, out, avg)

			result.Regions++
			if region.Len() > result.LargestRegion {
				result.LargestRegion = region.Len()
			}
			if opts.PaletteSize > 0 {
				palette = append(palette, PaletteEntry{
					Color:  avg,
					Seed:   Point{x, y},
					Pixels: region.Len(),
				})
			}
		}
	}

	if !marks.Complete() {
		return nil, fmt.Errorf("scan finished with %d of %d pixels visited", marks.Count(), w*h)
	}
	result.Visited = marks.Count()
	result.Palette = topRegions(palette, opts.PaletteSize, w*h)
	return result, nil
}

// topRegions keeps the n largest entries, ordered by size then scan order,
// and fills in their display fields.
func topRegions(entries []PaletteEntry, n, total int) []PaletteEntry {
	if n <= 0 || len(entries) == 0 {
		return nil
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Pixels > entries[j].Pixels
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Hex = imaging.Hex(entries[i].Color)
		if total > 0 {
			entries[i].Percentage = float64(entries[i].Pixels) / float64(total) * 100
		}
	}
	return entries
}
