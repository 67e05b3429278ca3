// Package train runs the optimisation loop for scalar MLPs.
//
// One epoch walks the dataset in mini-batches. For every batch the trainer
// builds a fresh graph (forward pass over each sample, data loss plus
// optional L2 penalty), clears parameter gradients, runs Backward on the
// total loss, sets the scheduled learning rate and steps the optimizer.
// After the epoch the whole dataset is evaluated forward-only, in parallel.
//
// Progress is logged with log/slog; every record carries the run's run_id.
package train

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/data"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/born-ml/micrograd/internal/parallel"
)

// Options configures a Trainer.
type Options struct {
	Epochs    int
	Loss      string         // LossHinge, LossMSE or LossCrossEntropy
	L2        float64        // L2 penalty coefficient, 0 disables it
	BatchSize int            // 0 = full batch
	Workers   int            // evaluation workers, 0 = one per CPU
	Schedule  optim.Schedule // nil keeps the optimizer's learning rate
	Rand      *rand.Rand     // batch shuffling; nil = package-level source
	Logger    *slog.Logger   // nil discards progress
	LogEvery  int            // log every n-th epoch, 0 = every epoch
}

// EpochStats summarises one epoch.
type EpochStats struct {
	Epoch     int
	TrainLoss float64 // mean total loss (data + L2) over the epoch's batches
	Loss      float64 // data loss on the whole dataset after the epoch
	Accuracy  float64
	LR        float64
}

// History is the per-epoch record of a Fit call.
type History []EpochStats

// Last returns the final epoch's stats, or the zero value for an empty history.
func (h History) Last() EpochStats {
	if len(h) == 0 {
		return EpochStats{}
	}
	return h[len(h)-1]
}

// Metrics is the result of an evaluation pass.
type Metrics struct {
	Loss     float64
	Accuracy float64
}

// Trainer couples a model with an optimizer and a loss.
type Trainer struct {
	model     *nn.MLP
	optimizer optim.Optimizer
	objective objective
	opts      Options
	parallel  parallel.Config
	runID     string
	log       *slog.Logger
}

// New creates a trainer. It returns an error wrapping ErrIncompatible if the
// loss does not fit the model's output layer.
func New(model *nn.MLP, optimizer optim.Optimizer, opts Options) (*Trainer, error) {
	obj, err := newObjective(opts.Loss, model)
	if err != nil {
		return nil, err
	}
	if opts.Epochs <= 0 {
		opts.Epochs = 1
	}
	if opts.LogEvery <= 0 {
		opts.LogEvery = 1
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	runID := uuid.NewString()

	return &Trainer{
		model:     model,
		optimizer: optimizer,
		objective: obj,
		opts:      opts,
		parallel:  parallel.WithWorkers(opts.Workers),
		runID:     runID,
		log:       logger.With(slog.String("run_id", runID)),
	}, nil
}

// RunID returns the identifier attached to every log record of this trainer.
func (t *Trainer) RunID() string {
	return t.runID
}

// Model returns the model being trained.
func (t *Trainer) Model() *nn.MLP {
	return t.model
}

// Fit trains for the configured number of epochs. It stops early, returning
// the history so far and ctx.Err(), if ctx is cancelled between batches.
func (t *Trainer) Fit(ctx context.Context, d *data.Dataset) (History, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	if d.Features() != t.model.InputSize() {
		return nil, fmt.Errorf("fit: %w: dataset has %d features, model expects %d",
			nn.ErrInputSize, d.Features(), t.model.InputSize())
	}

	t.log.Info("training started",
		slog.String("model", t.model.String()),
		slog.Int("parameters", len(t.model.Parameters())),
		slog.Int("samples", d.Len()),
		slog.Int("epochs", t.opts.Epochs),
		slog.String("loss", t.objective.name),
	)

	history := make(History, 0, t.opts.Epochs)
	for epoch := range t.opts.Epochs {
		if t.opts.Schedule != nil {
			t.optimizer.SetLR(t.opts.Schedule.LR(epoch))
		}

		var total float64
		batches := data.Batches(d.Len(), t.opts.BatchSize, t.opts.Rand)
		for _, idx := range batches {
			if err := ctx.Err(); err != nil {
				return history, err
			}
			loss, err := t.Step(d.Subset(idx))
			if err != nil {
				return history, fmt.Errorf("epoch %d: %w", epoch, err)
			}
			total += loss
		}

		m, err := t.Evaluate(ctx, d)
		if err != nil {
			return history, fmt.Errorf("epoch %d: %w", epoch, err)
		}

		stats := EpochStats{
			Epoch:     epoch,
			TrainLoss: total / float64(len(batches)),
			Loss:      m.Loss,
			Accuracy:  m.Accuracy,
			LR:        t.optimizer.GetLR(),
		}
		history = append(history, stats)

		if epoch%t.opts.LogEvery == 0 || epoch == t.opts.Epochs-1 {
			t.log.Info("epoch",
				slog.Int("epoch", epoch),
				slog.Float64("train_loss", stats.TrainLoss),
				slog.Float64("loss", stats.Loss),
				slog.Float64("accuracy", stats.Accuracy),
				slog.Float64("lr", stats.LR),
			)
		}
	}

	last := history.Last()
	t.log.Info("training finished", slog.Float64("loss", last.Loss), slog.Float64("accuracy", last.Accuracy))
	return history, nil
}

// Step performs one optimisation step on batch and returns the total loss
// (data + L2) before the update.
func (t *Trainer) Step(batch *data.Dataset) (float64, error) {
	outputs := make([][]*autodiff.Node, batch.Len())
	for i, x := range batch.X {
		out, err := t.model.Forward(nn.Inputs(x))
		if err != nil {
			return 0, err
		}
		outputs[i] = out
	}

	loss, err := t.objective.graph(outputs, batch.Y)
	if err != nil {
		return 0, err
	}
	if t.opts.L2 > 0 {
		loss = loss.Add(nn.L2(t.model.Parameters(), t.opts.L2))
	}

	t.optimizer.ZeroGrad()
	loss.Backward()
	t.optimizer.Step()

	t.log.Debug("step", slog.Int("batch", batch.Len()), slog.Float64("loss", loss.Value()))
	return loss.Value(), nil
}

// Evaluate computes the data loss and accuracy over d without building a
// shared graph. Samples are evaluated concurrently; parameters are only read.
func (t *Trainer) Evaluate(ctx context.Context, d *data.Dataset) (Metrics, error) {
	if err := ctx.Err(); err != nil {
		return Metrics{}, err
	}

	outputs, err := parallel.Map(d.Len(), func(i int) ([]float64, error) {
		return t.model.Predict(d.X[i])
	}, t.parallel)
	if err != nil {
		return Metrics{}, fmt.Errorf("evaluate: %w", err)
	}

	loss, acc, err := t.objective.evaluate(outputs, d.Y)
	if err != nil {
		return Metrics{}, fmt.Errorf("evaluate: %w", err)
	}
	return Metrics{Loss: loss, Accuracy: acc}, nil
}
