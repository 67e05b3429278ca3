// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides multi-layer perceptrons built on scalar autodiff nodes.
//
// # Overview
//
// This package contains:
//   - Layers: Layer (fully connected + activation), MLP
//   - Loss functions: SquaredError, MSE, Hinge, CrossEntropy, L2
//   - Metrics: Accuracy, ClassAccuracy
//   - Initialization: UnitUniform, Xavier, Zeros
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    model, err := nn.NewMLP(nn.MLPConfig{Sizes: []int{3, 4, 4, 1}})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, _ := model.Forward(nn.Inputs([]float64{2, 3, -1}))
//	    loss, _ := nn.SquaredError(out, []float64{1})
//
//	    model.ZeroGrad()
//	    loss.Backward()
//	    for _, p := range model.Parameters() {
//	        p.Adjust(-0.01)
//	    }
//	}
//
// # Layers
//
// Layer: weights drawn from an Initializer (U(-1, 1) by default), zero bias
//
//	layer := nn.NewLayer(in, out, autodiff.ActReLU, nil, rng)
//
// MLP: one Layer per consecutive pair of sizes. Hidden layers default to
// ReLU and the output layer to linear.
//
//	model, err := nn.NewMLP(nn.MLPConfig{Sizes: []int{2, 16, 16, 1}})
//	fmt.Println(model) // MLP of [Layer [ReLU, 16], Layer [ReLU, 16], Layer [Linear, 1]]
//
// # Loss Functions
//
// Hinge is the max-margin loss for ±1 labels:
//
//	loss, err := nn.Hinge(scores, labels)
//	total := loss.Add(nn.L2(model.Parameters(), 1e-4))
//
// Every loss returns an error wrapping ErrTargetSize when predictions and
// targets disagree in length. Forward returns an error wrapping ErrInputSize
// when the input width is wrong.
package nn
