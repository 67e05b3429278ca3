package autodiff

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// WriteDOT renders the graph reachable from root in Graphviz DOT syntax.
//
// Every node becomes a record showing its value and gradient. Non-leaf nodes get
// an extra ellipse holding the operator tag, wired operands -> op -> result:
//
//	strict digraph G {
//	  graph [
//	    rankdir=LR
//	  ];
//	  node [
//	    shape=record
//	  ];
//
//	  // Node definitions.
//	  n3 [label="{ data 6.0000 | grad 1.0000 }"];
//	  n3_op [
//	    shape=ellipse
//	    label="*"
//	  ];
//	  ...
//	  // Edge definitions.
//	  n1 -> n3_op;
//	  n3_op -> n3;
//	}
//
// Variadic primitives (softmax) carry their output index in the tag.
//
// Render with: dot -Tsvg graph.dot -o graph.svg
func WriteDOT(w io.Writer, root *Node) error {
	g := dotGraph{simple.NewDirectedGraph()}

	order := TopologicalOrder(root)
	for _, n := range order {
		g.AddNode(valueVertex(n))
		if !n.IsLeaf() {
			g.AddNode(opVertex(n))
		}
	}
	for _, n := range order {
		if n.IsLeaf() {
			continue
		}
		op := g.Node(opVertexID(n))
		g.SetEdge(g.NewEdge(op, g.Node(valueVertexID(n))))
		for _, operand := range n.operands {
			g.SetEdge(g.NewEdge(g.Node(valueVertexID(operand)), op))
		}
	}

	b, err := dot.Marshal(g, "G", "", "  ")
	if err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	return nil
}

// dotGraph adds graph-wide DOT attributes to a simple directed graph.
type dotGraph struct {
	*simple.DirectedGraph
}

func (dotGraph) DOTAttributers() (g, n, e encoding.Attributer) {
	return &encoding.Attributes{{Key: "rankdir", Value: "LR"}},
		&encoding.Attributes{{Key: "shape", Value: "record"}},
		nil
}

// vertex is a DOT node. Value and operator vertices of a Node share its ID:
// 2*id for the value, 2*id+1 for the operator.
type vertex struct {
	id    int64
	name  string
	attrs []encoding.Attribute
}

func (v vertex) ID() int64 { return v.id }
func (v vertex) DOTID() string { return v.name }
func (v vertex) Attributes() []encoding.Attribute { return v.attrs }

var (
	_ graph.Node          = vertex{}
	_ dot.Node            = vertex{}
	_ encoding.Attributer = vertex{}
)

func valueVertexID(n *Node) int64 { return 2 * int64(n.id) }
func opVertexID(n *Node) int64 { return 2*int64(n.id) + 1 }

func valueVertex(n *Node) vertex {
	return vertex{
		id:   valueVertexID(n),
		name: fmt.Sprintf("n%d", n.id),
		attrs: []encoding.Attribute{
			{Key: "label", Value: fmt.Sprintf("{ data %.4f | grad %.4f }", n.value, n.grad)},
		},
	}
}

func opVertex(n *Node) vertex {
	label := n.op.String()
	if n.op.Arity() < 0 {
		label = fmt.Sprintf("%s[%d]", label, n.index)
	}
	return vertex{
		id:   opVertexID(n),
		name: fmt.Sprintf("n%d_op", n.id),
		attrs: []encoding.Attribute{
			{Key: "shape", Value: "ellipse"},
			{Key: "label", Value: label},
		},
	}
}
