package ops

// ReciprocalForward returns 1/a. Division by zero yields ±Inf.
func ReciprocalForward(a float64) float64 {
	return 1 / a
}

// reciprocalBackward: d(1/a)/da = -1/a².
func reciprocalBackward(ctx Context) []float64 {
	a := ctx.In[0]
	return []float64{-(1 / (a * a)) * ctx.Grad}
}
