package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a fully connected layer: y = act(W·x + b).
//
// W has one row of fan-in weights per output neuron; b holds one bias per
// neuron. Weights come from an Initializer, biases start at zero.
//
// Example:
//
//	layer := nn.NewLayer(3, 4, autodiff.ActReLU, nn.UnitUniform, rng)
//	y, err := layer.Forward(nn.Inputs([]float64{2, 3, -1}))
type Layer struct {
	in, out int
	weights [][]*autodiff.Node // [out][in]
	bias    []*autodiff.Node   // [out]
	act     autodiff.Activation
}

// NewLayer creates a layer with in inputs and out neurons.
//
// initializer may be nil, meaning UnitUniform. rng may be nil, meaning the
// package-level math/rand source.
func NewLayer(in, out int, act autodiff.Activation, initializer Initializer, rng *rand.Rand) *Layer {
	if initializer == nil {
		initializer = UnitUniform
	}

	flat := initializer(in*out, in, out, rng)
	weights := make([][]*autodiff.Node, out)
	for i := range weights {
		weights[i] = flat[i*in : (i+1)*in : (i+1)*in]
	}

	return &Layer{
		in:      in,
		out:     out,
		weights: weights,
		bias:    Zeros(out),
		act:     act,
	}
}

// Forward computes act(W·x + b).
//
// Returns an error wrapping ErrInputSize if len(x) differs from the fan-in.
func (l *Layer) Forward(x []*autodiff.Node) ([]*autodiff.Node, error) {
	if len(x) != l.in {
		return nil, fmt.Errorf("%w: layer expects %d inputs, got %d", ErrInputSize, l.in, len(x))
	}
	return autodiff.Activate(autodiff.MatVecAdd(l.weights, x, l.bias), l.act), nil
}

// Parameters returns the weights and bias neuron by neuron: the fan-in
// weights of neuron 0, its bias, then neuron 1, and so on.
func (l *Layer) Parameters() []*autodiff.Node {
	params := make([]*autodiff.Node, 0, l.out*(l.in+1))
	for i, row := range l.weights {
		params = append(params, row...)
		params = append(params, l.bias[i])
	}
	return params
}

// In returns the fan-in.
func (l *Layer) In() int { return l.in }

// Out returns the number of neurons.
func (l *Layer) Out() int { return l.out }

// Activation returns the layer's activation.
func (l *Layer) Activation() autodiff.Activation { return l.act }

// Weight returns the weight connecting input j to neuron i.
func (l *Layer) Weight(i, j int) *autodiff.Node { return l.weights[i][j] }

// Bias returns the bias of neuron i.
func (l *Layer) Bias(i int) *autodiff.Node { return l.bias[i] }

// String implements fmt.Stringer, e.g. "Layer [ReLU, 16]".
func (l *Layer) String() string {
	return fmt.Sprintf("Layer [%s, %d]", activationTitle(l.act), l.out)
}

func activationTitle(act autodiff.Activation) string {
	switch act {
	case autodiff.ActLinear:
		return "Linear"
	case autodiff.ActReLU:
		return "ReLU"
	case autodiff.ActTanh:
		return "Tanh"
	case autodiff.ActSoftmax:
		return "Softmax"
	default:
		return act.String()
	}
}
