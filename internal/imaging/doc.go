// Package imaging provides the pixel-level building blocks for the transforms
// served by this module.
//
// # Pixel Buffers
//
// Buffer owns a width×height grid of 8-bit non-premultiplied RGBA pixels.
// Any image.Image can be copied into a Buffer with NewBufferFromImage; the
// copy is re-anchored so that (0,0) is always the top-left pixel, X increases
// rightward and Y increases downward.
//
// # Color Similarity
//
// Metric compares two colors by channel-sum distance, |ΔR| + |ΔG| + |ΔB|,
// against an exclusive threshold. DefaultMetric uses a threshold of 100,
// i.e. an average per-channel difference of roughly 33. Alpha does not take
// part in the comparison.
//
// # Negation
//
// Negate inverts R, G and B (255 - v) and keeps alpha. Rows are processed
// in parallel because every output pixel depends on one input pixel only.
//
// # Loading and Encoding
//
// ImageCache decodes files once and hands out shared read-only buffers.
// EncodePNG and Save turn results back into base64 PNG or files on disk.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. A Buffer is not; callers that share
// one across goroutines must not write to it.
package imaging
