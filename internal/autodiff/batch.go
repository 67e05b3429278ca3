package autodiff

import "fmt"

// MatAdd adds two matrices of nodes elementwise.
//
// Panics with ErrShapeMismatch if the row counts or any row lengths differ.
func MatAdd(a, b [][]*Node) [][]*Node {
	if len(a) != len(b) {
		panic(fmt.Errorf("%w: MatAdd: %d rows vs %d rows", ErrShapeMismatch, len(a), len(b)))
	}

	out := make([][]*Node, len(a))
	for i := range a {
		if len(a[i]) != len(b[i]) {
			panic(fmt.Errorf("%w: MatAdd: row %d has %d vs %d columns",
				ErrShapeMismatch, i, len(a[i]), len(b[i])))
		}
		out[i] = make([]*Node, len(a[i]))
		for j := range a[i] {
			out[i][j] = a[i][j].Add(b[i][j])
		}
	}
	return out
}

// MatVec multiplies an [N][P] matrix by a length-P vector.
//
// Each output is the left fold w[i][0]*x[0] + w[i][1]*x[1] + ... with no zero
// seed, so a row of length P contributes P products and P-1 additions.
//
// Panics with ErrShapeMismatch if a row length differs from len(x) or if x is
// empty.
func MatVec(w [][]*Node, x []*Node) []*Node {
	if len(x) == 0 {
		panic(fmt.Errorf("%w: MatVec: empty input vector", ErrShapeMismatch))
	}

	out := make([]*Node, len(w))
	products := make([]*Node, len(x))
	for i, row := range w {
		if len(row) != len(x) {
			panic(fmt.Errorf("%w: MatVec: row %d has %d columns, input has %d",
				ErrShapeMismatch, i, len(row), len(x)))
		}
		for j := range row {
			products[j] = row[j].Mul(x[j])
		}
		out[i] = Sum(products)
	}
	return out
}

// MatVecAdd computes w·x + b.
//
// Panics with ErrShapeMismatch if len(b) differs from the number of rows of w,
// or under the same conditions as MatVec.
func MatVecAdd(w [][]*Node, x, b []*Node) []*Node {
	if len(b) != len(w) {
		panic(fmt.Errorf("%w: MatVecAdd: %d rows vs bias of length %d",
			ErrShapeMismatch, len(w), len(b)))
	}

	out := MatVec(w, x)
	for i := range out {
		out[i] = out[i].Add(b[i])
	}
	return out
}
