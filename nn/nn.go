// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Module interface defines the common interface for all network modules.
type Module = nn.Module

// Errors

var (
	// ErrInputSize reports an input vector of the wrong width.
	ErrInputSize = nn.ErrInputSize

	// ErrConfig reports invalid layer sizes or activation lists.
	ErrConfig = nn.ErrConfig

	// ErrTargetSize reports predictions and targets of different lengths.
	ErrTargetSize = nn.ErrTargetSize
)

// Layers

// Layer represents a fully connected layer with an activation.
type Layer = nn.Layer

// NewLayer creates a layer with in inputs and out neurons.
//
// Example:
//
//	layer := nn.NewLayer(3, 4, autodiff.ActTanh, nn.Xavier, rng)
func NewLayer(in, out int, act autodiff.Activation, initializer Initializer, rng *rand.Rand) *Layer {
	return nn.NewLayer(in, out, act, initializer, rng)
}

// MLP represents a stack of fully connected layers.
type MLP = nn.MLP

// MLPConfig describes an MLP.
type MLPConfig = nn.MLPConfig

// NewMLP builds an MLP from cfg.
func NewMLP(cfg MLPConfig) (*MLP, error) {
	return nn.NewMLP(cfg)
}

// Sequential chains modules, feeding each output into the next.
type Sequential = nn.Sequential

// NewSequential creates a Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Activations

// ReLU is a parameter-free max(0, x) module.
type ReLU = nn.ReLU

// NewReLU creates a ReLU module.
func NewReLU() *ReLU { return nn.NewReLU() }

// Tanh is a parameter-free tanh module.
type Tanh = nn.Tanh

// NewTanh creates a Tanh module.
func NewTanh() *Tanh { return nn.NewTanh() }

// Softmax is a parameter-free softmax module.
type Softmax = nn.Softmax

// NewSoftmax creates a Softmax module.
func NewSoftmax() *Softmax { return nn.NewSoftmax() }

// DefaultActivations returns ReLU for hidden layers and linear for the output.
func DefaultActivations(layers int) []autodiff.Activation {
	return nn.DefaultActivations(layers)
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// Inputs wraps raw feature values in fresh leaves.
func Inputs(x []float64) []*autodiff.Node {
	return nn.Inputs(x)
}

// Values extracts the forward values of nodes.
func Values(nodes []*autodiff.Node) []float64 {
	return nn.Values(nodes)
}

// Initialization

// Initializer creates the weights of a layer.
type Initializer = nn.Initializer

// UnitUniform draws weights from U(-1, 1).
func UnitUniform(n, fanIn, fanOut int, rng *rand.Rand) []*autodiff.Node {
	return nn.UnitUniform(n, fanIn, fanOut, rng)
}

// Xavier draws weights from the Glorot uniform distribution.
func Xavier(n, fanIn, fanOut int, rng *rand.Rand) []*autodiff.Node {
	return nn.Xavier(n, fanIn, fanOut, rng)
}

// Uniform returns n leaves drawn from U(-bound, bound).
func Uniform(n int, bound float64, rng *rand.Rand) []*autodiff.Node {
	return nn.Uniform(n, bound, rng)
}

// Zeros returns n leaves holding 0.
func Zeros(n int) []*autodiff.Node {
	return nn.Zeros(n)
}

// ParseInitializer maps "uniform" or "xavier" to an Initializer.
func ParseInitializer(name string) (Initializer, error) {
	return nn.ParseInitializer(name)
}

// Loss Functions

// SquaredError returns Σ (pred - target)².
func SquaredError(preds []*autodiff.Node, targets []float64) (*autodiff.Node, error) {
	return nn.SquaredError(preds, targets)
}

// MSE returns the mean squared error.
func MSE(preds []*autodiff.Node, targets []float64) (*autodiff.Node, error) {
	return nn.MSE(preds, targets)
}

// Hinge returns the mean max-margin loss for ±1 labels.
func Hinge(scores []*autodiff.Node, labels []float64) (*autodiff.Node, error) {
	return nn.Hinge(scores, labels)
}

// CrossEntropy returns -log(probs[class]).
func CrossEntropy(probs []*autodiff.Node, class int) (*autodiff.Node, error) {
	return nn.CrossEntropy(probs, class)
}

// L2 returns alpha·Σ p².
func L2(params []*autodiff.Node, alpha float64) *autodiff.Node {
	return nn.L2(params, alpha)
}

// Metrics

// Accuracy returns the fraction of scores whose sign matches the ±1 label.
func Accuracy(scores, labels []float64) float64 {
	return nn.Accuracy(scores, labels)
}

// ClassAccuracy returns the fraction of rows whose arg-max equals the class.
func ClassAccuracy(probs [][]float64, classes []int) float64 {
	return nn.ClassAccuracy(probs, classes)
}
