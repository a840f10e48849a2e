package entity

import "math"

// Viewport scale bounds and defaults.
const (
	ScaleDefault = 1.0
	ScaleMin     = 0.1 // 10%
	ScaleMax     = 5.0 // 500%
)

// ScaleState tracks an active pinch. It lives only between the second
// pointer going down and the pinch ending.
type ScaleState struct {
	BaseScale float64 // Scale the next damped ratio compounds onto
	LastSpan  float64 // Distance between the two pointers at the previous sample
}

// ClampScale constrains a scale factor to the viewport's valid range.
func ClampScale(factor float64) float64 {
	if math.IsNaN(factor) {
		return ScaleDefault
	}
	if factor < ScaleMin {
		return ScaleMin
	}
	if factor > ScaleMax {
		return ScaleMax
	}
	return factor
}

// ScalePercentage returns the scale as a percentage (e.g., 150 for 1.5).
func ScalePercentage(factor float64) int {
	return int(math.Round(factor * 100))
}
