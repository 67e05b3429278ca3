// Package optim implements optimization algorithms for training scalar networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: plain gradient steps (node Adjust) with optional momentum
//   - Adam: Adaptive Moment Estimation
//   - Schedule: learning-rate schedules (Constant, LinearDecay)
//
// Parameters are *autodiff.Node leaves; their gradients are read from the
// nodes after Backward.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 1.0})
//	schedule := optim.LinearDecay{Start: 1.0, End: 0.1, Steps: epochs}
//
//	for k := range epochs {
//	    loss := computeLoss(model, data)
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.SetLR(schedule.LR(k))
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR/SetLR: Read and change the learning rate (for scheduling)
type Optimizer interface {
	// Step updates every parameter from its accumulated gradient.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Call it before each backward pass: Backward adds into gradients and
	// never resets them.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate.
	SetLR(lr float64)
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

func zeroGrad(params []*autodiff.Node) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
