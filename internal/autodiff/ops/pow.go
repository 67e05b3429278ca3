package ops

import "math"

// PowForward returns base raised to exponent.
//
// A negative base with a non-integer exponent yields NaN, which is propagated
// rather than reported.
func PowForward(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// powBackward propagates into both the base and the exponent.
//
// For y = a^k:
//
//	dy/da = k * a^(k-1)
//	dy/dk = y * ln(a)
//
// The exponent term is NaN for a <= 0 (y*ln(a) with ln undefined or -Inf).
// It lands only in the exponent operand, which for literal powers is a
// throwaway constant leaf.
func powBackward(ctx Context) []float64 {
	a, k := ctx.In[0], ctx.In[1]
	da := k * math.Pow(a, k-1) * ctx.Grad
	dk := ctx.Out * math.Log(a) * ctx.Grad
	return []float64{da, dk}
}
