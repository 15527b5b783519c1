package transform

import "math"

// sigmoidCutoff bounds the exponent fed to math.Exp inside Sigmoid.
// Beyond ±30 the logistic saturates well past float64 resolution, so the
// exact 0/1 shortcut is taken instead of risking overflow in e^-x.
// Fixed design constant, not configurable.
const sigmoidCutoff = 30.0

// Sigmoid returns the logistic function 1/(1+e^-x), numerically guarded:
// exactly 0 for x < -30 and exactly 1 for x > 30.
func Sigmoid(x float64) float64 {
	switch {
	case x < -sigmoidCutoff:
		return 0
	case x > sigmoidCutoff:
		return 1
	}
	return 1 / (1 + math.Exp(-x))
}

// Clamp returns x restricted to [minimum, maximum], evaluated as
// max(min(x, maximum), minimum). The degenerate range minimum > maximum
// is not validated: the evaluation order makes minimum win, so the result
// is minimum itself. Callers relying on that quirk get it unchanged.
func Clamp(x, minimum, maximum float64) float64 {
	return math.Max(math.Min(x, maximum), minimum)
}

// Clamp01 restricts x to the unit interval [0, 1], the common case for
// probabilities and normalized weights.
func Clamp01(x float64) float64 {
	return Clamp(x, 0, 1)
}
