// Package nn builds multi-layer perceptrons on top of the scalar autodiff engine.
//
// This package provides:
//   - Module interface: anything with a forward pass and trainable parameters
//   - Layer: fully connected layer with an activation
//   - MLP: stack of layers built from a runtime list of sizes
//   - Sequential, ReLU, Tanh, Softmax: free-form composition of modules
//   - Losses: squared error, hinge, cross-entropy, L2 regularisation
//   - Metrics: sign accuracy and class accuracy
//
// Every parameter is an *autodiff.Node leaf. A training step builds a fresh
// graph per forward pass:
//
//	model, _ := nn.NewMLP(nn.MLPConfig{Sizes: []int{2, 16, 16, 1}, Rand: rng})
//
//	model.ZeroGrad()
//	scores, _ := model.Forward(inputs)
//	loss, _ := nn.Hinge(scores, targets)
//	loss.Backward()
//	for _, p := range model.Parameters() {
//	    p.Adjust(-lr)
//	}
package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Module is the base interface for all network components.
//
// Modules can be composed: an MLP is a Module made of Layers.
type Module interface {
	// Forward maps an input vector to an output vector, building new graph
	// nodes. It returns an error wrapping ErrInputSize if len(x) is wrong.
	Forward(x []*autodiff.Node) ([]*autodiff.Node, error)

	// Parameters returns every trainable leaf in a stable order.
	Parameters() []*autodiff.Node
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// Inputs wraps raw feature values in fresh leaves.
func Inputs(x []float64) []*autodiff.Node {
	out := make([]*autodiff.Node, len(x))
	for i, v := range x {
		out[i] = autodiff.New(v)
	}
	return out
}

// Values extracts the forward values of nodes.
func Values(nodes []*autodiff.Node) []float64 {
	out := make([]float64, len(nodes))
	for i, n := range nodes {
		out[i] = n.Value()
	}
	return out
}
