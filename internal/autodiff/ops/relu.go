package ops

// ReLUForward returns max(0, a).
func ReLUForward(a float64) float64 {
	if a > 0 {
		return a
	}
	return 0
}

// reluBackward passes g through where the output is positive and blocks it
// elsewhere. The subgradient at 0 is taken as 0.
func reluBackward(ctx Context) []float64 {
	if ctx.Out > 0 {
		return []float64{ctx.Grad}
	}
	return []float64{0}
}
