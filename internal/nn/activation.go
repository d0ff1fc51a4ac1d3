package nn

import "math"

// ActFunc selects the activation function of a dense layer.
//
// Activations are modeled as a tagged enumeration plus pure functions on
// (value, tag) rather than as dynamic dispatch. This keeps layers trivially
// copyable and lets the derivative be evaluated from the stored output with
// a single switch.
//
// The zero value is ReLU.
type ActFunc int

const (
	// ReLU is the rectified linear unit: f(x) = max(0, x).
	ReLU ActFunc = iota
	// Tanh is the hyperbolic tangent.
	Tanh
)

// String returns the activation's name.
func (f ActFunc) String() string {
	switch f {
	case Tanh:
		return "tanh"
	default:
		return "relu"
	}
}

// activate applies the activation function to a pre-activation sum.
func activate(sum float64, f ActFunc) float64 {
	if f == Tanh {
		return math.Tanh(sum)
	}
	return math.Max(0, sum)
}

// activateDelta evaluates the derivative of the activation function from the
// stored post-activation output y = f(x). Layers do not retain
// pre-activations: for tanh this is exact (1 - y*y); for ReLU the value at
// y = 0 is the subgradient choice 0.
func activateDelta(output float64, f ActFunc) float64 {
	if f == Tanh {
		return 1 - output*output
	}
	if output > 0 {
		return 1
	}
	return 0
}
