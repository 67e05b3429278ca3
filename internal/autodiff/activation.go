package autodiff

import (
	"fmt"
	"strings"
)

// Activation selects the elementwise function applied to a layer's outputs.
type Activation uint8

// Supported activations.
const (
	ActLinear Activation = iota
	ActTanh
	ActReLU
	ActSoftmax
)

var activationNames = map[Activation]string{
	ActLinear:  "linear",
	ActTanh:    "tanh",
	ActReLU:    "relu",
	ActSoftmax: "softmax",
}

// String returns the lower-case activation name.
func (a Activation) String() string {
	if name, ok := activationNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Activation(%d)", uint8(a))
}

// ParseActivation maps a case-insensitive name to an Activation.
// "identity" and "none" are accepted for ActLinear.
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "identity", "none", "":
		return ActLinear, nil
	case "tanh":
		return ActTanh, nil
	case "relu":
		return ActReLU, nil
	case "softmax":
		return ActSoftmax, nil
	default:
		return ActLinear, fmt.Errorf("autodiff: unknown activation %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Activation) MarshalText() ([]byte, error) {
	if _, ok := activationNames[a]; !ok {
		return nil, fmt.Errorf("autodiff: unknown activation %d", uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Activation) UnmarshalText(text []byte) error {
	parsed, err := ParseActivation(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Activate applies act to xs.
//
// ActLinear returns xs itself; ActTanh and ActReLU map each element; ActSoftmax produces
// one jointly normalised node per element.
func Activate(xs []*Node, act Activation) []*Node {
	switch act {
	case ActLinear:
		return xs
	case ActTanh:
		out := make([]*Node, len(xs))
		for i, x := range xs {
			out[i] = x.Tanh()
		}
		return out
	case ActReLU:
		out := make([]*Node, len(xs))
		for i, x := range xs {
			out[i] = x.ReLU()
		}
		return out
	case ActSoftmax:
		return Softmax(xs)
	default:
		panic(fmt.Sprintf("autodiff: unknown activation %d", uint8(act)))
	}
}
