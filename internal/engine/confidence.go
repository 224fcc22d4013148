package engine

import "math"

// Confidence bounds. The score never leaves [low, high] no matter how
// pathological the recorded stability is.
const (
	confidenceLow  = 0.70
	confidenceHigh = 0.95
)

// Confidence derives a bounded confidence score from the model's
// cross-validation stability (standard deviation of CV scores):
// clamp(1 − stability, 0.70, 0.95). A tighter CV distribution means a
// higher score; the mapping is monotonically decreasing in stability.
func Confidence(stability float64) float64 {
	c := 1 - stability
	if math.IsNaN(c) || c < confidenceLow {
		return confidenceLow
	}
	if c > confidenceHigh {
		return confidenceHigh
	}
	return c
}
