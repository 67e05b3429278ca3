// Package data loads and prepares numeric datasets for training.
//
// A Dataset is a dense table of float64 features plus one target per row.
// Sources are delimited text files (see ParseCSV) and the synthetic two-moons
// generator (see Moons).
package data

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a source contains no samples.
	ErrEmpty = errors.New("data: no samples")

	// ErrFormat is returned for malformed records.
	ErrFormat = errors.New("data: malformed record")
)

// Dataset holds samples row by row. X[i] are the features of sample i and
// Y[i] its target.
type Dataset struct {
	X [][]float64
	Y []float64
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Y)
}

// Features returns the number of features per sample, 0 for an empty dataset.
func (d *Dataset) Features() int {
	if len(d.X) == 0 {
		return 0
	}
	return len(d.X[0])
}

// Subset returns the samples at idx. Rows are shared, not copied.
func (d *Dataset) Subset(idx []int) *Dataset {
	out := &Dataset{
		X: make([][]float64, len(idx)),
		Y: make([]float64, len(idx)),
	}
	for i, j := range idx {
		out.X[i] = d.X[j]
		out.Y[i] = d.Y[j]
	}
	return out
}

// Validate checks that the dataset is non-empty and rectangular.
func (d *Dataset) Validate() error {
	if d.Len() == 0 {
		return ErrEmpty
	}
	if len(d.X) != len(d.Y) {
		return fmt.Errorf("%w: %d feature rows, %d targets", ErrFormat, len(d.X), len(d.Y))
	}
	width := d.Features()
	for i, row := range d.X {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d features, want %d", ErrFormat, i, len(row), width)
		}
	}
	return nil
}
