// Package ops defines the catalogue of differentiable scalar primitives.
//
// Each primitive pairs a forward function with a backward rule:
//   - Forward: computes the output value from operand values
//   - Backward: returns one gradient contribution per operand
//
// Backward rules never touch gradient cells themselves. They return contributions
// and the driver in package autodiff adds them into operand gradients, so a rule
// cannot overwrite an accumulated gradient.
//
// Supported primitives:
//   - Add: a + b (d/da = 1, d/db = 1)
//   - Mul: a * b (d/da = b, d/db = a)
//   - Pow: a^k with k taken from the second operand (two-sided rule)
//   - Reciprocal: 1/a (d/da = -1/a²), used to build division
//   - Exp, Log, Tanh, ReLU: unary elementwise functions
//   - Softmax: joint softmax over n operands, one node per output
package ops

import "fmt"

// Kind identifies the primitive that produced a node.
type Kind uint8

// Primitive kinds. Leaf marks a node with no operands and no backward rule.
const (
	Leaf Kind = iota
	Add
	Mul
	Pow
	Reciprocal
	Exp
	Log
	Tanh
	ReLU
	Softmax
	numKinds
)

var kindNames = [numKinds]string{
	Leaf:       "",
	Add:        "+",
	Mul:        "*",
	Pow:        "^",
	Reciprocal: "inv",
	Exp:        "exp",
	Log:        "log",
	Tanh:       "tanh",
	ReLU:       "ReLU",
	Softmax:    "softmax",
}

// String returns the short operator tag used in debug output and graph labels.
func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Arity returns the number of operands the primitive expects.
// Softmax is variadic and reports -1.
func (k Kind) Arity() int {
	switch k {
	case Leaf:
		return 0
	case Add, Mul, Pow:
		return 2
	case Softmax:
		return -1
	default:
		return 1
	}
}

// Context carries everything a backward rule may read.
type Context struct {
	Out   float64   // value of the node whose rule runs (y)
	Grad  float64   // upstream gradient of that node (g)
	In    []float64 // operand values, in declared order
	Index int       // output position for multi-output primitives
}

// Rule computes one gradient contribution per operand.
type Rule func(ctx Context) []float64

var rules = [numKinds]Rule{
	Add:        addBackward,
	Mul:        mulBackward,
	Pow:        powBackward,
	Reciprocal: reciprocalBackward,
	Exp:        expBackward,
	Log:        logBackward,
	Tanh:       tanhBackward,
	ReLU:       reluBackward,
	Softmax:    softmaxBackward,
}

// Backward dispatches to the backward rule of kind.
// Leaves have no rule and yield nil.
func Backward(kind Kind, ctx Context) []float64 {
	if kind >= numKinds {
		panic(fmt.Sprintf("ops: unknown kind %d", uint8(kind)))
	}
	rule := rules[kind]
	if rule == nil {
		return nil
	}
	return rule(ctx)
}
