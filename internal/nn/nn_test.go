package nn_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// TestLayer_Forward tests a layer with hand-set weights.
func TestLayer_Forward(t *testing.T) {
	layer := nn.NewLayer(2, 2, autodiff.ActReLU, nil, rand.New(rand.NewSource(1)))
	// W = [[1, -1], [0.5, 0.5]], b = [0, -10]
	layer.Weight(0, 0).SetValue(1)
	layer.Weight(0, 1).SetValue(-1)
	layer.Weight(1, 0).SetValue(0.5)
	layer.Weight(1, 1).SetValue(0.5)
	layer.Bias(1).SetValue(-10)

	y, err := layer.Forward(nn.Inputs([]float64{3, 1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0}, nn.Values(y))

	y[0].Backward()
	assert.Equal(t, 3.0, layer.Weight(0, 0).Grad())
	assert.Equal(t, 1.0, layer.Weight(0, 1).Grad())
	assert.Equal(t, 1.0, layer.Bias(0).Grad())
	assert.Equal(t, 0.0, layer.Weight(1, 0).Grad())
}

// TestLayer_InputSize tests the fan-in check.
func TestLayer_InputSize(t *testing.T) {
	layer := nn.NewLayer(3, 1, autodiff.ActLinear, nil, nil)

	_, err := layer.Forward(nn.Inputs([]float64{1, 2}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, nn.ErrInputSize))
}

// TestLayer_Init tests default initialization bounds.
func TestLayer_Init(t *testing.T) {
	layer := nn.NewLayer(8, 16, autodiff.ActTanh, nil, rand.New(rand.NewSource(3)))

	params := layer.Parameters()
	require.Len(t, params, 16*(8+1))
	for i := range 16 {
		for j := range 8 {
			w := layer.Weight(i, j).Value()
			assert.GreaterOrEqual(t, w, -1.0)
			assert.LessOrEqual(t, w, 1.0)
		}
		assert.Equal(t, 0.0, layer.Bias(i).Value())
	}
}

// TestLayer_ParameterOrder tests that parameters are grouped per neuron:
// weights first, then the neuron's bias.
func TestLayer_ParameterOrder(t *testing.T) {
	layer := nn.NewLayer(2, 2, autodiff.ActLinear, nil, nil)
	want := []*autodiff.Node{
		layer.Weight(0, 0), layer.Weight(0, 1), layer.Bias(0),
		layer.Weight(1, 0), layer.Weight(1, 1), layer.Bias(1),
	}
	assert.Equal(t, want, layer.Parameters())
}

// TestXavier tests the Glorot bound.
func TestXavier(t *testing.T) {
	bound := math.Sqrt(6.0 / float64(10+20))
	for _, w := range nn.Xavier(200, 10, 20, rand.New(rand.NewSource(9))) {
		assert.LessOrEqual(t, math.Abs(w.Value()), bound)
	}
}

// TestParseInitializer tests initializer names.
func TestParseInitializer(t *testing.T) {
	for _, name := range []string{"", "uniform", "xavier", "glorot"} {
		initializer, err := nn.ParseInitializer(name)
		require.NoError(t, err, name)
		assert.Len(t, initializer(6, 2, 3, nil), 6)
	}

	_, err := nn.ParseInitializer("he")
	assert.True(t, errors.Is(err, nn.ErrConfig))
}

// TestNewMLP tests construction and validation.
func TestNewMLP(t *testing.T) {
	model, err := nn.NewMLP(nn.MLPConfig{Sizes: []int{2, 16, 16, 1}, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)

	assert.Equal(t, "MLP of [Layer [ReLU, 16], Layer [ReLU, 16], Layer [Linear, 1]]", model.String())
	assert.Len(t, model.Parameters(), 16*3+16*17+1*17)
	assert.Equal(t, 2, model.InputSize())
	assert.Equal(t, 1, model.OutputSize())

	bad := []nn.MLPConfig{
		{Sizes: []int{2}},
		{Sizes: []int{2, 0, 1}},
		{Sizes: []int{2, 4, 1}, Activations: []autodiff.Activation{autodiff.ActReLU}},
	}
	for _, cfg := range bad {
		_, err := nn.NewMLP(cfg)
		assert.True(t, errors.Is(err, nn.ErrConfig), "%v", cfg.Sizes)
	}
}

// TestMLP_Forward tests input validation and output width.
func TestMLP_Forward(t *testing.T) {
	model, err := nn.NewMLP(nn.MLPConfig{
		Sizes:       []int{3, 4, 4, 2},
		Activations: []autodiff.Activation{autodiff.ActTanh, autodiff.ActTanh, autodiff.ActSoftmax},
		Rand:        rand.New(rand.NewSource(5)),
	})
	require.NoError(t, err)
	assert.Equal(t, "MLP of [Layer [Tanh, 4], Layer [Tanh, 4], Layer [Softmax, 2]]", model.String())

	out, err := model.Predict([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.InDelta(t, 1.0, out[0]+out[1], 1e-12)

	_, err = model.Predict([]float64{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, nn.ErrInputSize))
	assert.Contains(t, err.Error(), "mlp layer 0")
}

// TestMLP_ZeroGrad tests that ZeroGrad clears every parameter.
func TestMLP_ZeroGrad(t *testing.T) {
	model, err := nn.NewMLP(nn.MLPConfig{Sizes: []int{2, 3, 1}, Rand: rand.New(rand.NewSource(2))})
	require.NoError(t, err)

	out, err := model.Forward(nn.Inputs([]float64{0.5, -0.5}))
	require.NoError(t, err)
	autodiff.Sum(out).Backward()

	model.ZeroGrad()
	for _, p := range model.Parameters() {
		assert.Equal(t, 0.0, p.Grad())
	}
}

// TestMLP_FitsTinyDataset trains the 3-4-4-1 network on four samples with
// plain gradient steps and checks the loss collapses.
func TestMLP_FitsTinyDataset(t *testing.T) {
	xs := [][]float64{{2, 3, -1}, {3, -1, 0.5}, {0.5, 1, 1}, {1, 1, -1}}
	ys := []float64{1, -1, -1, 1}

	model, err := nn.NewMLP(nn.MLPConfig{
		Sizes:       []int{3, 4, 4, 1},
		Activations: []autodiff.Activation{autodiff.ActTanh, autodiff.ActTanh, autodiff.ActTanh},
		Rand:        rand.New(rand.NewSource(42)),
	})
	require.NoError(t, err)

	lossAt := func() *autodiff.Node {
		preds := make([]*autodiff.Node, len(xs))
		for i, x := range xs {
			out, err := model.Forward(nn.Inputs(x))
			require.NoError(t, err)
			preds[i] = out[0]
		}
		loss, err := nn.SquaredError(preds, ys)
		require.NoError(t, err)
		return loss
	}

	initial := lossAt().Value()
	var final float64
	for range 500 {
		loss := lossAt()
		model.ZeroGrad()
		loss.Backward()
		for _, p := range model.Parameters() {
			p.Adjust(-0.05)
		}
		final = loss.Value()
	}

	assert.Less(t, final, initial)
	assert.Less(t, final, 0.25)
}
