package autodiff_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// readmeExpression builds the reference expression used throughout the docs
// and returns the leaves and the terminal g.
func readmeExpression() (a, b, g *autodiff.Node) {
	a = autodiff.New(-4.0)
	b = autodiff.New(2.0)

	c := a.Add(b)
	d := a.Mul(b).Add(b.PowScalar(3))
	c = autodiff.Scalar(2).Mul(c).AddScalar(1)
	c = autodiff.Scalar(1).Add(autodiff.Scalar(2).Mul(c)).Add(a.Neg())
	d = d.Add(d.MulScalar(2)).Add(b.Add(a).ReLU())
	d = d.Add(autodiff.Scalar(3).Mul(d)).Add(b.Sub(a).ReLU())
	e := c.Sub(d)
	f := e.PowScalar(2)
	g = f.Div(autodiff.Scalar(2))
	g = g.Add(autodiff.Scalar(10).Div(f))
	return a, b, g
}

// TestBackward_ReadmeScenario tests the end-to-end reference values.
func TestBackward_ReadmeScenario(t *testing.T) {
	a, b, g := readmeExpression()

	assert.InDelta(t, 24.7041, g.Value(), 1e-4)

	g.Backward()
	assert.InDelta(t, 138.8338, a.Grad(), 1e-4)
	assert.InDelta(t, 645.5773, b.Grad(), 1e-4)
}

// TestBackward_Diamond tests that a node reachable via two paths receives the
// sum of both contributions.
func TestBackward_Diamond(t *testing.T) {
	tests := []struct {
		name  string
		build func(a, b *autodiff.Node) *autodiff.Node
		want  func(a, b float64) float64 // d/da
	}{
		{
			// c = a*b, d = a + c => dd/da = 1 + b
			name:  "add over mul",
			build: func(a, b *autodiff.Node) *autodiff.Node { return a.Add(a.Mul(b)) },
			want:  func(_, b float64) float64 { return 1 + b },
		},
		{
			// c = a+b, d = a*c => dd/da = c + a = 2a + b
			name:  "mul over add",
			build: func(a, b *autodiff.Node) *autodiff.Node { return a.Mul(a.Add(b)) },
			want:  func(a, b float64) float64 { return 2*a + b },
		},
		{
			// c = tanh(a*b), d = a*c => dd/da = c + a*(1-c²)*b
			name: "mul over tanh",
			build: func(a, b *autodiff.Node) *autodiff.Node {
				return a.Mul(a.Mul(b).Tanh())
			},
			want: func(a, b float64) float64 {
				c := math.Tanh(a * b)
				return c + a*(1-c*c)*b
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := autodiff.New(0.7)
			b := autodiff.New(-1.3)
			d := tc.build(a, b)
			d.Backward()
			assert.InDelta(t, tc.want(0.7, -1.3), a.Grad(), tolerance)
		})
	}
}

// TestBackward_SharedSubexpression tests a deeper diamond where the shared node
// is itself an intermediate result used three times.
func TestBackward_SharedSubexpression(t *testing.T) {
	x := autodiff.New(1.5)
	s := x.Mul(x)
	// x² + x⁴ + e^(x²)
	y := s.Add(s.Mul(s)).Add(s.Exp())
	y.Backward()

	want := 2*1.5 + 4*math.Pow(1.5, 3) + 2*1.5*math.Exp(1.5*1.5)
	assert.InDelta(t, want, x.Grad(), 1e-9)

	// s receives 1 + 2s + e^s from its three consumers.
	sv := 1.5 * 1.5
	assert.InDelta(t, 1+2*sv+math.Exp(sv), s.Grad(), 1e-9)
}

// TestBackward_Accumulates tests that a second pass without ZeroGrad doubles
// every gradient, including intermediates and the terminal.
func TestBackward_Accumulates(t *testing.T) {
	_, _, g := readmeExpression()
	nodes := autodiff.TopologicalOrder(g)

	g.Backward()
	first := make([]float64, len(nodes))
	for i, n := range nodes {
		first[i] = n.Grad()
	}

	g.Backward()
	for i, n := range nodes {
		if math.IsNaN(first[i]) {
			assert.True(t, math.IsNaN(n.Grad()))
			continue
		}
		assert.InDelta(t, 2*first[i], n.Grad(), 1e-9*math.Max(1, math.Abs(first[i])), "node %d", i)
	}
}

// TestBackward_ResetIsIdempotent tests that ZeroGrad on every node followed by
// Backward reproduces the first pass exactly.
func TestBackward_ResetIsIdempotent(t *testing.T) {
	_, _, g := readmeExpression()
	nodes := autodiff.TopologicalOrder(g)

	g.Backward()
	first := make([]float64, len(nodes))
	for i, n := range nodes {
		first[i] = n.Grad()
	}

	g.Backward() // pollute
	for _, n := range nodes {
		n.ZeroGrad()
	}
	g.Backward()

	for i, n := range nodes {
		if math.IsNaN(first[i]) {
			assert.True(t, math.IsNaN(n.Grad()))
			continue
		}
		assert.Equal(t, first[i], n.Grad(), "node %d", i)
	}
}

// TestBackward_LeafTerminal tests backward on a graph of one node.
func TestBackward_LeafTerminal(t *testing.T) {
	a := autodiff.New(3)
	a.Backward()
	assert.Equal(t, 1.0, a.Grad())
}

// TestBackward_SubgraphOnly tests that nodes not reachable from the terminal
// are untouched.
func TestBackward_SubgraphOnly(t *testing.T) {
	a := autodiff.New(2)
	b := autodiff.New(3)
	unrelated := autodiff.New(5)
	_ = unrelated.Mul(a)

	a.Mul(b).Backward()
	assert.Equal(t, 0.0, unrelated.Grad())
}

// TestBackward_SoftmaxUniformUpstream tests that a uniform upstream gradient
// through softmax leaves every logit with zero gradient.
func TestBackward_SoftmaxUniformUpstream(t *testing.T) {
	logits := []*autodiff.Node{
		autodiff.New(0.2), autodiff.New(-1.1), autodiff.New(2.4), autodiff.New(0.9),
	}
	probs := autodiff.Softmax(logits)
	autodiff.Sum(probs).Backward()

	for i, l := range logits {
		assert.InDelta(t, 0.0, l.Grad(), 1e-12, "logit %d", i)
	}
	for i, p := range probs {
		assert.Equal(t, 1.0, p.Grad(), "output %d", i)
	}
}

// TestBackward_SoftmaxCrossEntropy tests the classic dL/dz = p - y identity.
func TestBackward_SoftmaxCrossEntropy(t *testing.T) {
	logits := []*autodiff.Node{autodiff.New(1.0), autodiff.New(2.0), autodiff.New(0.5)}
	probs := autodiff.Softmax(logits)
	target := 1
	loss := probs[target].Log().Neg()
	loss.Backward()

	for i, l := range logits {
		want := probs[i].Value()
		if i == target {
			want -= 1
		}
		assert.InDelta(t, want, l.Grad(), 1e-9, "logit %d", i)
	}
}

// randomGraph builds a random DAG over a few leaves using every primitive and
// returns the terminal.
func randomGraph(rng *rand.Rand, size int) *autodiff.Node {
	pool := []*autodiff.Node{
		autodiff.New(rng.Float64() + 0.5),
		autodiff.New(rng.Float64() + 0.5),
		autodiff.New(rng.Float64() + 0.5),
	}
	pick := func() *autodiff.Node { return pool[rng.Intn(len(pool))] }

	for range size {
		var n *autodiff.Node
		switch rng.Intn(7) {
		case 0:
			n = pick().Add(pick())
		case 1:
			n = pick().Mul(pick())
		case 2:
			n = pick().Tanh()
		case 3:
			n = pick().ReLU()
		case 4:
			n = pick().Sub(pick())
		case 5:
			n = pick().Exp().Log()
		case 6:
			n = autodiff.Softmax([]*autodiff.Node{pick(), pick(), pick()})[rng.Intn(3)]
		}
		pool = append(pool, n)
	}
	return autodiff.Sum(pool[len(pool)-5:])
}

// TestTopologicalOrder_OperandsFirst tests that every node's position is
// strictly after each of its operands and that each node appears once.
func TestTopologicalOrder_OperandsFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := range 20 {
		root := randomGraph(rng, 40)
		order := autodiff.TopologicalOrder(root)

		index := make(map[*autodiff.Node]int, len(order))
		for i, n := range order {
			_, dup := index[n]
			require.False(t, dup, "trial %d: node listed twice", trial)
			index[n] = i
		}

		require.Same(t, root, order[len(order)-1])
		for i, n := range order {
			for _, operand := range n.Operands() {
				j, ok := index[operand]
				require.True(t, ok, "trial %d: operand missing from order", trial)
				assert.Less(t, j, i, "trial %d: operand after dependent", trial)
			}
		}
	}
}

// TestTopologicalOrder_DeclaredOrder tests that operands are visited in their
// declared order, matching recursive post-order.
func TestTopologicalOrder_DeclaredOrder(t *testing.T) {
	a := autodiff.New(1)
	b := autodiff.New(2)
	c := a.Mul(b)
	d := c.Add(a)

	order := autodiff.TopologicalOrder(d)
	assert.Equal(t, []*autodiff.Node{a, b, c, d}, order)
}

// TestTopologicalOrder_DeepChain tests a long chain does not overflow.
func TestTopologicalOrder_DeepChain(t *testing.T) {
	x := autodiff.New(1)
	n := x
	for range 100_000 {
		n = n.AddScalar(0)
	}
	order := autodiff.TopologicalOrder(n)
	assert.Len(t, order, 200_001) // chain nodes + one constant per step + x

	n.Backward()
	assert.Equal(t, 1.0, x.Grad())
}
