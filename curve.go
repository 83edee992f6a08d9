package reel

import "github.com/tanema/gween/ease"

// sampleCurve remaps a normalized progress value through an easing function.
// A nil curve is linear. The result is not clamped; easing functions such as
// ease.OutBack intentionally overshoot [0, 1].
func sampleCurve(fn ease.TweenFunc, t float64) float64 {
	if fn == nil {
		return t
	}
	return float64(fn(float32(t), 0, 1, 1))
}
