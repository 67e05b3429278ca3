// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Every arithmetic call on a *Node allocates a new node that records its operands
// and the primitive that produced it, so the computation graph grows as the
// expression is evaluated. Calling Backward on a terminal node replays the
// primitives' backward rules in reverse topological order and accumulates
// gradients into every reachable node.
//
// Architecture:
//   - Node: value cell + gradient accumulator + operand list
//   - ops.Kind: tag of the primitive that produced a node (see package ops)
//   - Backward: post-order DFS, then reversed replay through ops.Backward
//
// Usage:
//
//	a := autodiff.New(2)
//	b := autodiff.New(-3)
//	y := a.Mul(b).Tanh()
//
//	y.Backward()
//	fmt.Println(a.Grad(), b.Grad())
//
// Gradients are never reset automatically. Call ZeroGrad on every node that is
// reused across passes, otherwise contributions from successive passes add up.
//
// A graph must be mutated by a single goroutine. Building independent graphs
// that only read shared leaves is safe from several goroutines.
package autodiff

import (
	"fmt"
	"sync/atomic"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

var nextID atomic.Uint64

// Node is a vertex of the computation graph.
//
// Nodes are compared by pointer identity, never by value: two leaves holding
// the same number are different nodes. The operand list is fixed at creation.
type Node struct {
	id       uint64
	value    float64
	grad     float64
	op       ops.Kind
	operands []*Node
	index    int // output position for multi-output primitives (softmax)
}

func newNode(value float64, op ops.Kind, operands []*Node, index int) *Node {
	return &Node{
		id:       nextID.Add(1),
		value:    value,
		op:       op,
		operands: operands,
		index:    index,
	}
}

// New creates a leaf node holding value. Leaves are graph inputs, trainable
// parameters and constants alike.
func New(value float64) *Node {
	return newNode(value, ops.Leaf, nil, 0)
}

// Scalar is an alias for New, typically used for constants.
func Scalar(value float64) *Node {
	return New(value)
}

// Value returns the current value.
func (n *Node) Value() float64 {
	return n.value
}

// Grad returns the accumulated gradient.
func (n *Node) Grad() float64 {
	return n.grad
}

// ZeroGrad resets the gradient to 0. Value and graph structure are untouched.
func (n *Node) ZeroGrad() {
	n.grad = 0
}

// Adjust performs a raw gradient step: value += step * grad.
//
// Pass a negative step to descend.
func (n *Node) Adjust(step float64) {
	n.value += step * n.grad
}

// SetValue overwrites the value. Optimizers with their own state use it;
// plain gradient descent should prefer Adjust.
func (n *Node) SetValue(v float64) {
	n.value = v
}

// Op returns the primitive that produced the node (ops.Leaf for leaves).
func (n *Node) Op() ops.Kind {
	return n.op
}

// IsLeaf reports whether the node has no operands.
func (n *Node) IsLeaf() bool {
	return n.op == ops.Leaf
}

// Operands returns a copy of the operand list in declared order.
func (n *Node) Operands() []*Node {
	out := make([]*Node, len(n.operands))
	copy(out, n.operands)
	return out
}

// ID returns a process-unique, monotonically increasing identifier.
// It is meant for display; use pointer comparison for identity.
func (n *Node) ID() uint64 {
	return n.id
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("Value(data=%g, grad=%g)", n.value, n.grad)
}
