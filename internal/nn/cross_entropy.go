package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// CrossEntropy returns -log(probs[class]) for a probability vector produced
// by a softmax output layer.
//
// Gradient with respect to the logits feeding the softmax:
//
//	∂L/∂z = softmax(z) - one_hot(class)
//
// Returns an error wrapping ErrTargetSize if class is out of range.
func CrossEntropy(probs []*autodiff.Node, class int) (*autodiff.Node, error) {
	if class < 0 || class >= len(probs) {
		return nil, fmt.Errorf("%w: class %d out of range [0, %d)", ErrTargetSize, class, len(probs))
	}
	return probs[class].Log().Neg(), nil
}
