// Package config loads training run configuration from YAML.
//
// Example file:
//
//	model:
//	  sizes: [2, 16, 16, 1]
//	  activations: [relu, relu, linear]
//	  seed: 1337
//	training:
//	  epochs: 100
//	  optimizer: sgd
//	  learning_rate: 1.0
//	  final_learning_rate: 0.1
//	  loss: hinge
//	  l2: 0.0001
//	data:
//	  samples: 100
//	  noise: 0.1
//
// Unknown keys are rejected so typos fail loudly instead of silently falling
// back to defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// ErrInvalid is returned by Validate (and Load/Parse) for unusable settings.
var ErrInvalid = errors.New("config: invalid")

// Config is a complete training run description.
type Config struct {
	Model    Model    `yaml:"model"`
	Training Training `yaml:"training"`
	Data     Data     `yaml:"data"`
}

// Model describes the network.
type Model struct {
	Sizes       []int                 `yaml:"sizes"`
	Activations []autodiff.Activation `yaml:"activations,omitempty"`
	Init        string                `yaml:"init,omitempty"` // uniform | xavier
	Seed        int64                 `yaml:"seed"`
}

// Training describes the optimisation loop.
type Training struct {
	Epochs            int     `yaml:"epochs"`
	Optimizer         string  `yaml:"optimizer"` // sgd | adam
	LearningRate      float64 `yaml:"learning_rate"`
	FinalLearningRate float64 `yaml:"final_learning_rate"`
	Momentum          float64 `yaml:"momentum"`
	Loss              string  `yaml:"loss"` // hinge | mse | cross_entropy
	L2                float64 `yaml:"l2"`
	BatchSize         int     `yaml:"batch_size"` // 0 = full batch
	Workers           int     `yaml:"workers"`    // evaluation workers, 0 = NumCPU
}

// Data selects the dataset.
type Data struct {
	Path        string  `yaml:"path"` // empty = synthetic two-moons
	Samples     int     `yaml:"samples"`
	Noise       float64 `yaml:"noise"`
	Standardize bool    `yaml:"standardize"`
}

// Default returns the classic two-moons run: a 2-16-16-1 ReLU network trained
// with hinge loss, L2 1e-4 and a learning rate decaying linearly from 1.0
// to 0.1.
func Default() Config {
	return Config{
		Model: Model{
			Sizes: []int{2, 16, 16, 1},
			Seed:  1337,
		},
		Training: Training{
			Epochs:            100,
			Optimizer:         "sgd",
			LearningRate:      1.0,
			FinalLearningRate: 0.1,
			Loss:              "hinge",
			L2:                1e-4,
		},
		Data: Data{
			Samples: 100,
			Noise:   0.1,
		},
	}
}

// Load reads and validates the YAML file at path on top of Default.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
// Keys that are absent keep their default values.
func Parse(raw []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section and returns an error wrapping ErrInvalid
// describing the first problem found.
func (c Config) Validate() error {
	m := c.Model
	if len(m.Sizes) < 2 {
		return fmt.Errorf("%w: model.sizes needs at least 2 entries, got %v", ErrInvalid, m.Sizes)
	}
	for i, s := range m.Sizes {
		if s <= 0 {
			return fmt.Errorf("%w: model.sizes[%d] = %d", ErrInvalid, i, s)
		}
	}
	if m.Activations != nil && len(m.Activations) != len(m.Sizes)-1 {
		return fmt.Errorf("%w: model.activations has %d entries, want %d",
			ErrInvalid, len(m.Activations), len(m.Sizes)-1)
	}
	switch m.Init {
	case "", "uniform", "xavier", "glorot":
	default:
		return fmt.Errorf("%w: model.init %q", ErrInvalid, m.Init)
	}

	tr := c.Training
	if tr.Epochs <= 0 {
		return fmt.Errorf("%w: training.epochs must be positive, got %d", ErrInvalid, tr.Epochs)
	}
	switch tr.Optimizer {
	case "sgd", "adam":
	default:
		return fmt.Errorf("%w: training.optimizer %q (want sgd or adam)", ErrInvalid, tr.Optimizer)
	}
	switch tr.Loss {
	case "hinge", "mse", "cross_entropy":
	default:
		return fmt.Errorf("%w: training.loss %q (want hinge, mse or cross_entropy)", ErrInvalid, tr.Loss)
	}
	if tr.LearningRate <= 0 {
		return fmt.Errorf("%w: training.learning_rate must be positive", ErrInvalid)
	}
	if tr.FinalLearningRate < 0 {
		return fmt.Errorf("%w: training.final_learning_rate must not be negative", ErrInvalid)
	}
	if tr.Momentum < 0 || tr.Momentum >= 1 {
		return fmt.Errorf("%w: training.momentum must be in [0, 1)", ErrInvalid)
	}
	if tr.L2 < 0 || tr.BatchSize < 0 || tr.Workers < 0 {
		return fmt.Errorf("%w: training.l2, batch_size and workers must not be negative", ErrInvalid)
	}

	if c.Data.Path == "" && c.Data.Samples <= 0 {
		return fmt.Errorf("%w: data.samples must be positive for synthetic data", ErrInvalid)
	}
	if c.Data.Noise < 0 {
		return fmt.Errorf("%w: data.noise must not be negative", ErrInvalid)
	}
	return nil
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
