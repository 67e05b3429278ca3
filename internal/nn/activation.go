package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLayer(2, 8, autodiff.ActLinear, nil, rng),
//	    nn.NewReLU(),
//	)
type ReLU struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU to every element.
func (r *ReLU) Forward(x []*autodiff.Node) ([]*autodiff.Node, error) {
	return autodiff.Activate(x, autodiff.ActReLU), nil
}

// Parameters returns an empty slice (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*autodiff.Node {
	return nil
}

// Tanh is a hyperbolic tangent activation module.
//
// Applies the element-wise function: tanh(x) = (e^2x - 1) / (e^2x + 1)
type Tanh struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies tanh to every element.
func (t *Tanh) Forward(x []*autodiff.Node) ([]*autodiff.Node, error) {
	return autodiff.Activate(x, autodiff.ActTanh), nil
}

// Parameters returns an empty slice (Tanh has no trainable parameters).
func (t *Tanh) Parameters() []*autodiff.Node {
	return nil
}

// Softmax normalises its whole input vector into a probability distribution.
//
// Unlike ReLU and Tanh it is not element-wise: every output depends on every
// input.
type Softmax struct{}

// NewSoftmax creates a new Softmax module.
func NewSoftmax() *Softmax {
	return &Softmax{}
}

// Forward returns softmax(x). An empty input yields an empty output.
func (s *Softmax) Forward(x []*autodiff.Node) ([]*autodiff.Node, error) {
	return autodiff.Activate(x, autodiff.ActSoftmax), nil
}

// Parameters returns an empty slice (Softmax has no trainable parameters).
func (s *Softmax) Parameters() []*autodiff.Node {
	return nil
}
