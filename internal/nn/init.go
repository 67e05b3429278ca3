package nn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Uniform returns n leaves drawn from U(-bound, bound).
//
// rng may be nil, in which case the package-level source is used.
func Uniform(n int, bound float64, rng *rand.Rand) []*autodiff.Node {
	draw := rand.Float64
	if rng != nil {
		draw = rng.Float64
	}

	out := make([]*autodiff.Node, n)
	for i := range out {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		out[i] = autodiff.New((draw()*2.0 - 1.0) * bound)
	}
	return out
}

// Xavier returns n leaves drawn from the Glorot uniform distribution
// U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))).
func Xavier(n, fanIn, fanOut int, rng *rand.Rand) []*autodiff.Node {
	return Uniform(n, math.Sqrt(6.0/float64(fanIn+fanOut)), rng)
}

// Zeros returns n leaves holding 0. Commonly used for biases.
func Zeros(n int) []*autodiff.Node {
	out := make([]*autodiff.Node, n)
	for i := range out {
		out[i] = autodiff.New(0)
	}
	return out
}

// Initializer creates the n = fanIn*fanOut weights of a layer.
type Initializer func(n, fanIn, fanOut int, rng *rand.Rand) []*autodiff.Node

// UnitUniform draws weights from U(-1, 1) regardless of fan-in and fan-out.
func UnitUniform(n, _, _ int, rng *rand.Rand) []*autodiff.Node {
	return Uniform(n, 1, rng)
}

// ParseInitializer maps "uniform" (or "") to UnitUniform and "xavier" to Xavier.
func ParseInitializer(name string) (Initializer, error) {
	switch name {
	case "", "uniform":
		return UnitUniform, nil
	case "xavier", "glorot":
		return Xavier, nil
	default:
		return nil, fmt.Errorf("%w: unknown initializer %q", ErrConfig, name)
	}
}
