package autodiff

import "github.com/born-ml/micrograd/internal/autodiff/ops"

// Add returns n + other.
func (n *Node) Add(other *Node) *Node {
	return newNode(ops.AddForward(n.value, other.value), ops.Add, []*Node{n, other}, 0)
}

// Mul returns n * other.
func (n *Node) Mul(other *Node) *Node {
	return newNode(ops.MulForward(n.value, other.value), ops.Mul, []*Node{n, other}, 0)
}

// Pow returns n raised to exponent's value.
//
// Gradient flows into both operands: k*a^(k-1) into the base and y*ln(a) into
// the exponent. For a non-positive base the exponent's gradient is NaN.
func (n *Node) Pow(exponent *Node) *Node {
	return newNode(ops.PowForward(n.value, exponent.value), ops.Pow, []*Node{n, exponent}, 0)
}

// Reciprocal returns 1 / n.
func (n *Node) Reciprocal() *Node {
	return newNode(ops.ReciprocalForward(n.value), ops.Reciprocal, []*Node{n}, 0)
}

// Exp returns e^n.
func (n *Node) Exp() *Node {
	return newNode(ops.ExpForward(n.value), ops.Exp, []*Node{n}, 0)
}

// Log returns ln(n).
func (n *Node) Log() *Node {
	return newNode(ops.LogForward(n.value), ops.Log, []*Node{n}, 0)
}

// Tanh returns tanh(n).
func (n *Node) Tanh() *Node {
	return newNode(ops.TanhForward(n.value), ops.Tanh, []*Node{n}, 0)
}

// ReLU returns max(0, n).
func (n *Node) ReLU() *Node {
	return newNode(ops.ReLUForward(n.value), ops.ReLU, []*Node{n}, 0)
}

// Neg returns -n, built as n * -1.
func (n *Node) Neg() *Node {
	return n.Mul(Scalar(-1))
}

// Sub returns n - other, built as n + (other * -1).
func (n *Node) Sub(other *Node) *Node {
	return n.Add(other.Neg())
}

// Div returns n / other, built as n * (1/other).
func (n *Node) Div(other *Node) *Node {
	return n.Mul(other.Reciprocal())
}

// AddScalar returns n + s, wrapping s in a constant leaf.
func (n *Node) AddScalar(s float64) *Node {
	return n.Add(Scalar(s))
}

// MulScalar returns n * s, wrapping s in a constant leaf.
func (n *Node) MulScalar(s float64) *Node {
	return n.Mul(Scalar(s))
}

// PowScalar returns n^k, wrapping k in a constant leaf.
func (n *Node) PowScalar(k float64) *Node {
	return n.Pow(Scalar(k))
}

// Sum folds nodes with Add from left to right.
// A single node is returned as is; an empty list yields a fresh zero leaf.
func Sum(nodes []*Node) *Node {
	if len(nodes) == 0 {
		return Scalar(0)
	}
	acc := nodes[0]
	for _, n := range nodes[1:] {
		acc = acc.Add(n)
	}
	return acc
}
