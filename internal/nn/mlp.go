package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MLPConfig describes a multi-layer perceptron.
type MLPConfig struct {
	// Sizes lists the input width followed by every layer's width, e.g.
	// [2, 16, 16, 1] is two hidden layers of 16 and one output.
	Sizes []int

	// Activations has one entry per layer (len(Sizes)-1). Nil means ReLU on
	// hidden layers and linear output.
	Activations []autodiff.Activation

	// Init creates layer weights. Nil means UnitUniform.
	Init Initializer

	// Rand seeds weight initialization. Nil means the package-level source.
	Rand *rand.Rand
}

// MLP chains fully connected layers; each layer's output is the next one's
// input.
type MLP struct {
	layers []*Layer
}

// NewMLP builds an MLP from cfg.
//
// Returns an error wrapping ErrConfig if fewer than two sizes are given, a
// size is not positive, or the activation list has the wrong length.
func NewMLP(cfg MLPConfig) (*MLP, error) {
	if len(cfg.Sizes) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 sizes, got %v", ErrConfig, cfg.Sizes)
	}
	for i, s := range cfg.Sizes {
		if s <= 0 {
			return nil, fmt.Errorf("%w: size %d is %d", ErrConfig, i, s)
		}
	}

	acts := cfg.Activations
	if acts == nil {
		acts = DefaultActivations(len(cfg.Sizes) - 1)
	}
	if len(acts) != len(cfg.Sizes)-1 {
		return nil, fmt.Errorf("%w: %d layers but %d activations",
			ErrConfig, len(cfg.Sizes)-1, len(acts))
	}

	layers := make([]*Layer, len(acts))
	for i, act := range acts {
		layers[i] = NewLayer(cfg.Sizes[i], cfg.Sizes[i+1], act, cfg.Init, cfg.Rand)
	}
	return &MLP{layers: layers}, nil
}

// DefaultActivations returns ReLU for every hidden layer and linear for the
// output layer.
func DefaultActivations(layers int) []autodiff.Activation {
	acts := make([]autodiff.Activation, layers)
	for i := range acts {
		acts[i] = autodiff.ActReLU
	}
	if layers > 0 {
		acts[layers-1] = autodiff.ActLinear
	}
	return acts
}

// Forward applies every layer in sequence.
func (m *MLP) Forward(x []*autodiff.Node) ([]*autodiff.Node, error) {
	out := x
	for i, l := range m.layers {
		var err error
		if out, err = l.Forward(out); err != nil {
			return nil, fmt.Errorf("mlp layer %d: %w", i, err)
		}
	}
	return out, nil
}

// Predict runs a forward pass on raw features and returns output values.
// The graph it builds is discarded; parameters are only read, so Predict may
// run concurrently with other forward-only calls.
func (m *MLP) Predict(x []float64) ([]float64, error) {
	out, err := m.Forward(Inputs(x))
	if err != nil {
		return nil, err
	}
	return Values(out), nil
}

// Parameters returns the parameters of every layer, first layer first.
func (m *MLP) Parameters() []*autodiff.Node {
	var params []*autodiff.Node
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradient of every parameter.
func (m *MLP) ZeroGrad() {
	ZeroGrad(m)
}

// Layers returns the layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// InputSize returns the expected input width.
func (m *MLP) InputSize() int {
	return m.layers[0].In()
}

// OutputSize returns the output width.
func (m *MLP) OutputSize() int {
	return m.layers[len(m.layers)-1].Out()
}

// String implements fmt.Stringer, e.g.
// "MLP of [Layer [ReLU, 16], Layer [ReLU, 16], Layer [Linear, 1]]".
func (m *MLP) String() string {
	parts := make([]string, len(m.layers))
	for i, l := range m.layers {
		parts[i] = l.String()
	}
	return "MLP of [" + strings.Join(parts, ", ") + "]"
}
