// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training scalar networks.
//
// # Overview
//
// This package contains:
//   - SGD: plain gradient steps with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Schedules: Constant, LinearDecay
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/nn"
//	    "github.com/born-ml/micrograd/optim"
//	)
//
//	func main() {
//	    model, _ := nn.NewMLP(nn.MLPConfig{Sizes: []int{2, 16, 16, 1}})
//
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 1.0})
//	    schedule := optim.LinearDecay{Start: 1.0, End: 0.1, Steps: 100}
//
//	    for k := range 100 {
//	        loss := computeLoss(model)
//	        optimizer.ZeroGrad()
//	        loss.Backward()
//	        optimizer.SetLR(schedule.LR(k))
//	        optimizer.Step()
//	    }
//	}
//
// SGD without momentum is exactly node.Adjust(-lr) on every parameter.
package optim
