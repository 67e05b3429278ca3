package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// SquaredError returns Σ (pred_i - target_i)².
//
// Returns an error wrapping ErrTargetSize if the lengths differ.
func SquaredError(preds []*autodiff.Node, targets []float64) (*autodiff.Node, error) {
	if err := checkTargets(len(preds), len(targets)); err != nil {
		return nil, err
	}

	terms := make([]*autodiff.Node, len(preds))
	for i, p := range preds {
		terms[i] = p.Sub(autodiff.Scalar(targets[i])).PowScalar(2)
	}
	return autodiff.Sum(terms), nil
}

// MSE returns the mean squared error (1/n)·Σ (pred_i - target_i)².
func MSE(preds []*autodiff.Node, targets []float64) (*autodiff.Node, error) {
	sum, err := SquaredError(preds, targets)
	if err != nil {
		return nil, err
	}
	return sum.Div(autodiff.Scalar(float64(len(preds)))), nil
}

// Hinge returns the max-margin loss (1/n)·Σ relu(1 - y_i·s_i) for labels
// y_i in {-1, +1}.
func Hinge(scores []*autodiff.Node, labels []float64) (*autodiff.Node, error) {
	if err := checkTargets(len(scores), len(labels)); err != nil {
		return nil, err
	}

	terms := make([]*autodiff.Node, len(scores))
	for i, s := range scores {
		terms[i] = autodiff.Scalar(1).Add(autodiff.Scalar(-labels[i]).Mul(s)).ReLU()
	}
	return autodiff.Sum(terms).Div(autodiff.Scalar(float64(len(scores)))), nil
}

// L2 returns alpha·Σ p² over params.
func L2(params []*autodiff.Node, alpha float64) *autodiff.Node {
	squares := make([]*autodiff.Node, len(params))
	for i, p := range params {
		squares[i] = p.Mul(p)
	}
	return autodiff.Scalar(alpha).Mul(autodiff.Sum(squares))
}

func checkTargets(preds, targets int) error {
	if preds == 0 {
		return fmt.Errorf("%w: empty predictions", ErrTargetSize)
	}
	if preds != targets {
		return fmt.Errorf("%w: %d predictions, %d targets", ErrTargetSize, preds, targets)
	}
	return nil
}
