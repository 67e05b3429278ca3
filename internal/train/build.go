package train

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/born-ml/micrograd/internal/config"
	"github.com/born-ml/micrograd/internal/data"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
)

// FromConfig builds the model, optimizer, schedule and trainer described by
// cfg. All randomness (weights, batch order) derives from cfg.Model.Seed.
func FromConfig(cfg config.Config, logger *slog.Logger) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	//nolint:gosec // Using math/rand for reproducible training (not security-critical)
	rng := rand.New(rand.NewSource(cfg.Model.Seed))

	initializer, err := nn.ParseInitializer(cfg.Model.Init)
	if err != nil {
		return nil, err
	}
	model, err := nn.NewMLP(nn.MLPConfig{
		Sizes:       cfg.Model.Sizes,
		Activations: cfg.Model.Activations,
		Init:        initializer,
		Rand:        rng,
	})
	if err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}

	tr := cfg.Training
	var optimizer optim.Optimizer
	switch tr.Optimizer {
	case "adam":
		optimizer = optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: tr.LearningRate})
	default:
		optimizer = optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: tr.LearningRate, Momentum: tr.Momentum})
	}

	var schedule optim.Schedule = optim.Constant(tr.LearningRate)
	if tr.FinalLearningRate > 0 && tr.FinalLearningRate != tr.LearningRate {
		schedule = optim.LinearDecay{Start: tr.LearningRate, End: tr.FinalLearningRate, Steps: tr.Epochs}
	}

	return New(model, optimizer, Options{
		Epochs:    tr.Epochs,
		Loss:      tr.Loss,
		L2:        tr.L2,
		BatchSize: tr.BatchSize,
		Workers:   tr.Workers,
		Schedule:  schedule,
		Rand:      rng,
		Logger:    logger,
		LogEvery:  max(tr.Epochs/20, 1),
	})
}

// LoadData returns the dataset described by cfg: the CSV file at Path, or a
// synthetic two-moons set when Path is empty.
//
// When cfg.Standardize is set, features are standardised and the fitted
// Scaler is returned so later inputs can be mapped onto the same scale with
// Scaler.TransformRow. Otherwise the Scaler is nil.
func LoadData(cfg config.Data, seed int64) (*data.Dataset, *data.Scaler, error) {
	var (
		d   *data.Dataset
		err error
	)
	if cfg.Path != "" {
		if d, err = data.LoadCSV(cfg.Path); err != nil {
			return nil, nil, err
		}
	} else {
		//nolint:gosec // Using math/rand for reproducible datasets (not security-critical)
		d = data.Moons(cfg.Samples, cfg.Noise, rand.New(rand.NewSource(seed)))
	}

	if !cfg.Standardize {
		return d, nil, nil
	}
	d, scaler := data.Standardize(d)
	return d, scaler, nil
}
