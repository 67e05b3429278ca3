package nn

import (
	"gonum.org/v1/gonum/floats"
)

// Accuracy returns the fraction of scores whose sign agrees with the ±1
// label. A zero score never counts as correct.
//
// Panics if the lengths differ.
func Accuracy(scores, labels []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	agree := make([]float64, len(scores))
	floats.MulTo(agree, scores, labels)
	correct := floats.Count(func(v float64) bool { return v > 0 }, agree)
	return float64(correct) / float64(len(scores))
}

// ClassAccuracy returns the fraction of probability rows whose arg-max equals
// the class label.
func ClassAccuracy(probs [][]float64, classes []int) float64 {
	if len(probs) == 0 {
		return 0
	}
	var correct int
	for i, row := range probs {
		if len(row) > 0 && floats.MaxIdx(row) == classes[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(probs))
}
