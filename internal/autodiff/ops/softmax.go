package ops

import "math"

// SoftmaxForward computes the joint softmax of logits.
//
//	softmax(x)_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
//
// Subtracting the maximum keeps every exponent <= 0, so large logits do not
// overflow. An empty input yields an empty result.
func SoftmaxForward(logits []float64) []float64 {
	if len(logits) == 0 {
		return nil
	}

	maxVal := logits[0]
	for _, v := range logits[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	probs := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		probs[i] = math.Exp(v - maxVal)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// softmaxBackward computes the contribution of output Index to every input,
// i.e. one row of the softmax Jacobian scaled by that output's upstream
// gradient:
//
//	∂p_i/∂x_j = p_i * (1 - p_i)   if i == j
//	∂p_i/∂x_j = -p_i * p_j        otherwise
//
// Probabilities are recomputed from the operand values so every row uses the
// same p vector the forward pass produced.
func softmaxBackward(ctx Context) []float64 {
	probs := SoftmaxForward(ctx.In)
	i := ctx.Index
	pi := probs[i]

	grads := make([]float64, len(probs))
	for j, pj := range probs {
		if j == i {
			grads[j] = pi * (1 - pi) * ctx.Grad
		} else {
			grads[j] = -pi * pj * ctx.Grad
		}
	}
	return grads
}
