package ops

import "math"

// ExpForward returns e^a.
func ExpForward(a float64) float64 {
	return math.Exp(a)
}

// expBackward: d(e^a)/da = e^a, which is the node's own value.
func expBackward(ctx Context) []float64 {
	return []float64{ctx.Out * ctx.Grad}
}
