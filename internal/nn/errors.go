package nn

import "errors"

// Sentinel errors returned by model construction and forward passes.
var (
	// ErrInputSize is returned when an input vector does not match a layer's fan-in.
	ErrInputSize = errors.New("nn: input size mismatch")

	// ErrConfig is returned for invalid layer sizes or activation lists.
	ErrConfig = errors.New("nn: invalid model configuration")

	// ErrTargetSize is returned when predictions and targets have different lengths.
	ErrTargetSize = errors.New("nn: prediction and target size mismatch")
)
