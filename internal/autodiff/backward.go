package autodiff

import "github.com/born-ml/micrograd/internal/autodiff/ops"

// TopologicalOrder returns every node reachable from root in post-order: each
// node appears exactly once and after all of its operands. root is last.
//
// Operands are visited in declared order, giving the same sequence as a
// recursive depth-first traversal. The traversal uses an explicit stack so
// deep graphs (long sums over many samples) do not grow the goroutine stack.
func TopologicalOrder(root *Node) []*Node {
	type frame struct {
		node *Node
		next int // index of the next operand to visit
	}

	order := make([]*Node, 0, 64)
	visited := make(map[*Node]struct{}, 64)

	visited[root] = struct{}{}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.operands) {
			child := top.node.operands[top.next]
			top.next++
			if _, seen := visited[child]; !seen {
				visited[child] = struct{}{}
				stack = append(stack, frame{node: child})
			}
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}

// Backward computes d(n)/d(x) for every node x reachable from n and adds it
// into x's gradient.
//
// Algorithm:
//  1. Topologically sort the graph (operands before dependents)
//  2. Seed n with 1
//  3. Walk the order in reverse; for each non-leaf node, run its backward rule
//     with the gradient it received during this pass and add the returned
//     contributions into its operands
//
// Reversal guarantees a node's upstream gradient is complete before its rule
// runs, however many paths lead to it.
//
// Gradient cells are only ever added to. Calling Backward twice without
// ZeroGrad in between doubles every gradient, the seed on n included.
func (n *Node) Backward() {
	order := TopologicalOrder(n)

	// Upstream gradient received during this pass, indexed like order.
	pos := make(map[*Node]int, len(order))
	for i, node := range order {
		pos[node] = i
	}
	upstream := make([]float64, len(order))

	upstream[len(order)-1] = 1
	n.grad += 1

	var in []float64
	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.op == ops.Leaf {
			continue
		}

		in = in[:0]
		for _, operand := range node.operands {
			in = append(in, operand.value)
		}

		contributions := ops.Backward(node.op, ops.Context{
			Out:   node.value,
			Grad:  upstream[i],
			In:    in,
			Index: node.index,
		})

		for j, operand := range node.operands {
			upstream[pos[operand]] += contributions[j]
			operand.grad += contributions[j]
		}
	}
}
