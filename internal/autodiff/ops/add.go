package ops

// AddForward returns a + b.
func AddForward(a, b float64) float64 {
	return a + b
}

// addBackward distributes g unchanged to both operands:
// d(a+b)/da = d(a+b)/db = 1.
func addBackward(ctx Context) []float64 {
	return []float64{ctx.Grad, ctx.Grad}
}
