package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLayer(2, 16, autodiff.ActLinear, nil, rng),
//	    nn.NewTanh(),
//	    nn.NewLayer(16, 1, autodiff.ActLinear, nil, rng),
//	)
//
//	scores, err := model.Forward(nn.Inputs(x))
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward runs x through every module in order.
//
// Errors are wrapped with the index of the failing module.
func (s *Sequential) Forward(x []*autodiff.Node) ([]*autodiff.Node, error) {
	out := x
	for i, m := range s.modules {
		var err error
		if out, err = m.Forward(out); err != nil {
			return nil, fmt.Errorf("sequential module %d: %w", i, err)
		}
	}
	return out, nil
}

// Parameters returns all trainable parameters from all modules, in order.
func (s *Sequential) Parameters() []*autodiff.Node {
	var params []*autodiff.Node
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}

// Add appends a module to the end of the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}
