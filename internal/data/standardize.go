package data

import (
	"gonum.org/v1/gonum/stat"
)

// Scaler holds per-feature statistics for z-score standardisation.
type Scaler struct {
	Mean []float64
	Std  []float64
}

// FitScaler computes the mean and standard deviation of every feature of d.
func FitScaler(d *Dataset) *Scaler {
	width := d.Features()
	s := &Scaler{
		Mean: make([]float64, width),
		Std:  make([]float64, width),
	}

	column := make([]float64, d.Len())
	for j := range width {
		for i, x := range d.X {
			column[i] = x[j]
		}
		s.Mean[j], s.Std[j] = stat.MeanStdDev(column, nil)
	}
	return s
}

// Transform returns a copy of d with every feature mapped to (x-mean)/std.
// Features with zero (or undefined) spread are only centred.
func (s *Scaler) Transform(d *Dataset) *Dataset {
	out := &Dataset{
		X: make([][]float64, d.Len()),
		Y: append([]float64(nil), d.Y...),
	}
	for i, x := range d.X {
		out.X[i] = s.TransformRow(x)
	}
	return out
}

// TransformRow standardises a single feature vector, e.g. a raw input to be
// fed to a model trained on Transform's output. x is not modified.
func (s *Scaler) TransformRow(x []float64) []float64 {
	row := make([]float64, len(x))
	for j, v := range x {
		row[j] = v - s.Mean[j]
		if std := s.Std[j]; std > 0 {
			row[j] /= std
		}
	}
	return row
}

// Standardize fits a Scaler on d and returns the transformed copy with it.
func Standardize(d *Dataset) (*Dataset, *Scaler) {
	s := FitScaler(d)
	return s.Transform(d), s
}
