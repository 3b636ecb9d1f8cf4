package imaging

import "fmt"

// DefaultThreshold is the channel-sum distance below which two colors are
// considered similar.
const DefaultThreshold = 100

// MaxThreshold is one more than the largest possible channel-sum distance
// (3 × 255). A metric with this threshold treats every pair as similar.
const MaxThreshold = 3*255 + 1

// DefaultMetric compares colors with DefaultThreshold.
var DefaultMetric = Metric{Threshold: DefaultThreshold}

// Metric decides color similarity using the channel-sum distance
// |ΔR| + |ΔG| + |ΔB|. Alpha is ignored.
type Metric struct {
	// Threshold is exclusive: distances strictly below it are similar.
	Threshold int
}

// NewMetric returns a Metric with the given threshold.
//
// The threshold must be in [1, MaxThreshold]. A threshold of 0 would reject
// even identical colors and leave a seed unable to admit itself.
func NewMetric(threshold int) (Metric, error) {
	if threshold < 1 || threshold > MaxThreshold {
		return Metric{}, fmt.Errorf("threshold %d outside [1,%d]", threshold, MaxThreshold)
	}
	return Metric{Threshold: threshold}, nil
}

// Distance returns the channel-sum distance between a and b.
func Distance(a, b Color) int {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
}

// Similar reports whether c lies within the metric's tolerance of seed.
func (m Metric) Similar(c, seed Color) bool {
	return Distance(c, seed) < m.Threshold
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
