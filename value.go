package reel

// Value is the algebra an animatable type must satisfy. It is implemented
// once per type and monomorphized into the evaluators at tree-build time, so
// no runtime type registry is involved.
//
// Add and Sub must form a group: for linear types Add is vector addition and
// Identity is zero; for rotation-like types Add is composition and Sub is the
// composing inverse, not subtraction.
type Value[T any] interface {
	// Lerp interpolates from the receiver toward other by t. t is typically
	// in [0, 1] but is not clamped; easing curves may overshoot.
	Lerp(other T, t float64) T

	// Add combines a delta onto the receiver and returns the result.
	Add(delta T) T

	// Sub returns the delta carrying other to the receiver, the inverse of
	// Add: o.Add(v.Sub(o)) == v in exact arithmetic.
	Sub(other T) T

	// Identity returns the neutral element of Add, used as the fold basis
	// for additive evaluation.
	Identity() T
}
