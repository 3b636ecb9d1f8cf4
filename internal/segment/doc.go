// Package segment implements region-growing segmentation and the
// "abstract" recoloring built on it.
//
// # Region Growing
//
// Grower performs an iterative 4-connected flood fill from a seed pixel. A
// neighbour joins the region when it is inside the image, not yet visited,
// and within the metric's tolerance of the seed color. Comparisons are made
// against the seed only, so a region cannot drift along a slow gradient.
// Pixels are marked visited as they are admitted, which bounds the work to
// one visit per pixel.
//
// # Abstraction
//
// AbstractBuffer scans every pixel column by column. Each pixel not yet
// claimed seeds a region, which is averaged (truncating per channel) and
// painted into the output. The regions of one run partition the image.
//
// The scan is single-threaded: every region claims pixels through the shared
// visited grid, and two fills started in parallel could race for the same
// pixels. Long runs can be stopped through the context; a stopped run
// reports Partial and leaves the unreached pixels transparent.
package segment
