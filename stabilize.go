package vgrade

import "math"

// Jitter returns the synthetic camera shake, in pixels, for playback time
// t (seconds) at the given stabilization strength. Strength is a
// percentage clamped to [0, 100]; 100 cancels the shake entirely.
//
// Jitter is a pure function of its arguments. The frame source applies
// it as a translation before the frame reaches the pipeline.
func Jitter(t, strength float64) (dx, dy float64) {
	residual := 1 - clampRange(strength, 0, 100)/100
	dx = math.Sin(t*10) * 4 * residual
	dy = math.Cos(t*9) * 3 * residual
	return dx, dy
}
