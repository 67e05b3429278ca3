package ops

import "math"

// TanhForward returns the hyperbolic tangent of a.
func TanhForward(a float64) float64 {
	return math.Tanh(a)
}

// tanhBackward uses the already computed output:
// d(tanh a)/da = 1 - tanh²(a) = 1 - y².
func tanhBackward(ctx Context) []float64 {
	y := ctx.Out
	return []float64{(1 - y*y) * ctx.Grad}
}
