package train

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"github.com/born-ml/micrograd/internal/nn"
)

// ErrIncompatible is returned when the loss cannot be used with the model's
// output layer or the dataset's targets.
var ErrIncompatible = errors.New("train: loss incompatible with model or data")

// Loss names accepted by Options.Loss.
const (
	LossHinge        = "hinge"
	LossMSE          = "mse"
	LossCrossEntropy = "cross_entropy"
)

// objective turns model outputs into a differentiable loss (for training) or
// plain numbers (for evaluation).
type objective struct {
	name    string
	softmax bool // apply softmax to outputs before cross-entropy
	classes int
}

func newObjective(name string, model *nn.MLP) (objective, error) {
	layers := model.Layers()
	last := layers[len(layers)-1].Activation()
	outputs := model.OutputSize()

	switch name {
	case LossHinge, LossMSE:
		if outputs != 1 {
			return objective{}, fmt.Errorf("%w: %s needs a single output, model has %d", ErrIncompatible, name, outputs)
		}
		return objective{name: name}, nil
	case LossCrossEntropy:
		if outputs < 2 {
			return objective{}, fmt.Errorf("%w: cross_entropy needs at least 2 outputs", ErrIncompatible)
		}
		return objective{name: name, softmax: last != autodiff.ActSoftmax, classes: outputs}, nil
	default:
		return objective{}, fmt.Errorf("%w: unknown loss %q", ErrIncompatible, name)
	}
}

// class converts a target to a class index.
func (o objective) class(y float64) (int, error) {
	c := int(y)
	if float64(c) != y || c < 0 || c >= o.classes {
		return 0, fmt.Errorf("%w: target %v is not a class in [0, %d)", ErrIncompatible, y, o.classes)
	}
	return c, nil
}

// graph builds the mean data loss over a batch of forward outputs.
func (o objective) graph(outputs [][]*autodiff.Node, targets []float64) (*autodiff.Node, error) {
	switch o.name {
	case LossHinge, LossMSE:
		scores := make([]*autodiff.Node, len(outputs))
		for i, out := range outputs {
			scores[i] = out[0]
		}
		if o.name == LossHinge {
			return nn.Hinge(scores, targets)
		}
		return nn.MSE(scores, targets)
	default:
		terms := make([]*autodiff.Node, len(outputs))
		for i, out := range outputs {
			c, err := o.class(targets[i])
			if err != nil {
				return nil, err
			}
			probs := out
			if o.softmax {
				probs = autodiff.Softmax(out)
			}
			if terms[i], err = nn.CrossEntropy(probs, c); err != nil {
				return nil, err
			}
		}
		return autodiff.Sum(terms).Div(autodiff.Scalar(float64(len(terms)))), nil
	}
}

// evaluate computes the mean data loss and accuracy from output values.
func (o objective) evaluate(outputs [][]float64, targets []float64) (loss, accuracy float64, err error) {
	if len(outputs) == 0 {
		return 0, 0, nil
	}

	losses := make([]float64, len(outputs))
	switch o.name {
	case LossHinge, LossMSE:
		scores := make([]float64, len(outputs))
		for i, out := range outputs {
			scores[i] = out[0]
			if o.name == LossHinge {
				losses[i] = math.Max(0, 1-targets[i]*out[0])
			} else {
				d := out[0] - targets[i]
				losses[i] = d * d
			}
		}
		accuracy = nn.Accuracy(scores, targets)
	default:
		probs := make([][]float64, len(outputs))
		classes := make([]int, len(outputs))
		for i, out := range outputs {
			c, err := o.class(targets[i])
			if err != nil {
				return 0, 0, err
			}
			p := out
			if o.softmax {
				p = ops.SoftmaxForward(out)
			}
			probs[i], classes[i] = p, c
			losses[i] = -math.Log(p[c])
		}
		accuracy = nn.ClassAccuracy(probs, classes)
	}

	return floats.Sum(losses) / float64(len(losses)), accuracy, nil
}
