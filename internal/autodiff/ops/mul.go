package ops

// MulForward returns a * b.
func MulForward(a, b float64) float64 {
	return a * b
}

// mulBackward applies the product rule:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
func mulBackward(ctx Context) []float64 {
	a, b := ctx.In[0], ctx.In[1]
	return []float64{b * ctx.Grad, a * ctx.Grad}
}
