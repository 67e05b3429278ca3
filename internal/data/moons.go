package data

import (
	"math"
	"math/rand"
)

// Moons generates n points on two interleaving half circles, the classic
// "make_moons" toy problem.
//
// The outer moon is labelled -1 and the inner moon +1. Gaussian noise with
// standard deviation noise is added to both coordinates and the samples are
// shuffled. rng may be nil, in which case the package-level source is used.
func Moons(n int, noise float64, rng *rand.Rand) *Dataset {
	norm, perm := rand.NormFloat64, rand.Perm
	if rng != nil {
		norm, perm = rng.NormFloat64, rng.Perm
	}

	outer := n / 2
	inner := n - outer

	d := &Dataset{
		X: make([][]float64, 0, n),
		Y: make([]float64, 0, n),
	}
	for i := range outer {
		t := math.Pi * spacing(i, outer)
		d.X = append(d.X, []float64{math.Cos(t), math.Sin(t)})
		d.Y = append(d.Y, -1)
	}
	for i := range inner {
		t := math.Pi * spacing(i, inner)
		d.X = append(d.X, []float64{1 - math.Cos(t), 1 - math.Sin(t) - 0.5})
		d.Y = append(d.Y, 1)
	}

	if noise > 0 {
		for _, x := range d.X {
			x[0] += noise * norm()
			x[1] += noise * norm()
		}
	}

	return d.Subset(perm(n))
}

// spacing returns the i-th of n evenly spaced points in [0, 1].
func spacing(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
