package autodiff

import "github.com/born-ml/micrograd/internal/autodiff/ops"

// Softmax returns one node per logit. Every output depends on every logit, so
// each output node lists all logits as operands and its backward rule applies
// one row of the softmax Jacobian.
func Softmax(logits []*Node) []*Node {
	values := make([]float64, len(logits))
	for i, l := range logits {
		values[i] = l.value
	}
	probs := ops.SoftmaxForward(values)

	operands := make([]*Node, len(logits))
	copy(operands, logits)

	out := make([]*Node, len(logits))
	for i, p := range probs {
		out[i] = newNode(p, ops.Softmax, operands, i)
	}
	return out
}
