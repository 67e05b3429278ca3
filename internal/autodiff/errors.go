package autodiff

import "errors"

// ErrShapeMismatch reports operands whose lengths disagree in a batch helper.
// Batch helpers panic with an error wrapping it; recover and use errors.Is to
// match.
var ErrShapeMismatch = errors.New("autodiff: shape mismatch")
