package ops

import "math"

// LogForward returns the natural logarithm of a.
//
// Non-positive inputs are not rejected: ln(0) = -Inf and ln(a<0) = NaN flow
// into every downstream value.
func LogForward(a float64) float64 {
	return math.Log(a)
}

// logBackward: d(ln a)/da = 1/a.
func logBackward(ctx Context) []float64 {
	return []float64{ctx.Grad / ctx.In[0]}
}
