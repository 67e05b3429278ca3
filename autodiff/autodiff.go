// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Every arithmetic call on a *Node records a new vertex of the computation
// graph. Backward on a terminal node replays the primitives' backward rules
// in reverse topological order and accumulates d(terminal)/d(node) into every
// reachable node's gradient.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    a := autodiff.New(-4.0)
//	    b := autodiff.New(2.0)
//	    c := a.Mul(b).Add(b.PowScalar(3))
//
//	    c.Backward()
//	    fmt.Println(c.Value(), a.Grad(), b.Grad()) // 0 2 8
//	}
//
// Gradients are never reset automatically: call ZeroGrad on reused nodes
// between passes.
package autodiff

import (
	"io"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Node is a vertex of the computation graph holding a value and an
// accumulated gradient.
type Node = autodiff.Node

// New creates a leaf node holding value.
func New(value float64) *Node {
	return autodiff.New(value)
}

// Scalar creates a constant leaf. It is identical to New.
func Scalar(value float64) *Node {
	return autodiff.Scalar(value)
}

// Sum folds nodes with Add from left to right.
func Sum(nodes []*Node) *Node {
	return autodiff.Sum(nodes)
}

// Softmax returns one jointly normalised node per logit.
func Softmax(logits []*Node) []*Node {
	return autodiff.Softmax(logits)
}

// TopologicalOrder returns every node reachable from root, operands before
// dependents, root last.
func TopologicalOrder(root *Node) []*Node {
	return autodiff.TopologicalOrder(root)
}

// WriteDOT renders the graph reachable from root in Graphviz DOT syntax.
func WriteDOT(w io.Writer, root *Node) error {
	return autodiff.WriteDOT(w, root)
}

// Batch helpers

// ErrShapeMismatch is the error batch helpers panic with on mismatched lengths.
var ErrShapeMismatch = autodiff.ErrShapeMismatch

// MatAdd adds two matrices of nodes elementwise.
func MatAdd(a, b [][]*Node) [][]*Node {
	return autodiff.MatAdd(a, b)
}

// MatVec multiplies an [N][P] matrix of nodes by a length-P vector.
func MatVec(w [][]*Node, x []*Node) []*Node {
	return autodiff.MatVec(w, x)
}

// MatVecAdd computes w·x + b.
func MatVecAdd(w [][]*Node, x, b []*Node) []*Node {
	return autodiff.MatVecAdd(w, x, b)
}

// Activations

// Activation selects the elementwise function applied to a layer's outputs.
type Activation = autodiff.Activation

// Supported activations.
const (
	ActLinear  = autodiff.ActLinear
	ActTanh    = autodiff.ActTanh
	ActReLU    = autodiff.ActReLU
	ActSoftmax = autodiff.ActSoftmax
)

// Activate applies act to xs.
func Activate(xs []*Node, act Activation) []*Node {
	return autodiff.Activate(xs, act)
}

// ParseActivation maps a case-insensitive name to an Activation.
func ParseActivation(name string) (Activation, error) {
	return autodiff.ParseActivation(name)
}
