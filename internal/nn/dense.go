package nn

import (
	"github.com/kvist-ml/kvist/internal/random"
)

// DenseLayer implements one fully connected layer.
//
// Every node carries one weight per input plus a bias. The layer stores its
// last forward output and its last error signal so that the owning network
// can drive the forward, backward and optimize passes without the layers
// referencing each other.
//
// The layer is purely arithmetic: it does not validate shapes at run time.
// Shape invariants are the composing network's responsibility.
type DenseLayer struct {
	output  []float64
	err     []float64
	bias    []float64
	weights [][]float64
	act     ActFunc
}

// NewDenseLayer creates a layer with numNodes nodes and numWeightsPerNode
// weights per node. Biases and weights are sampled independently and
// uniformly from [0, 1); outputs and errors start at zero.
//
// Both dimensions must be at least 1; a smaller layer is unusable and the
// behavior of its operations is undefined.
func NewDenseLayer(numNodes, numWeightsPerNode int, act ActFunc) *DenseLayer {
	l := &DenseLayer{act: act}
	l.Resize(numNodes, numWeightsPerNode)
	return l
}

// NumNodes returns the number of nodes in the layer.
func (l *DenseLayer) NumNodes() int {
	return len(l.output)
}

// NumWeightsPerNode returns the number of weights per node, i.e. the input
// width the layer was sized for.
func (l *DenseLayer) NumWeightsPerNode() int {
	if len(l.weights) == 0 {
		return 0
	}
	return len(l.weights[0])
}

// ActFunc returns the layer's activation function.
func (l *DenseLayer) ActFunc() ActFunc {
	return l.act
}

// Output returns the layer's last forward output, one value per node. The
// returned slice is a view into the layer's state.
func (l *DenseLayer) Output() []float64 {
	return l.output
}

// Error returns the layer's last error signal, one value per node. The
// returned slice is a view into the layer's state.
func (l *DenseLayer) Error() []float64 {
	return l.err
}

// Bias returns the layer's bias vector as a view into the layer's state.
func (l *DenseLayer) Bias() []float64 {
	return l.bias
}

// Weights returns the layer's weight matrix as a view into the layer's
// state. Weights()[i][j] is node i's weight on input j.
func (l *DenseLayer) Weights() [][]float64 {
	return l.weights
}

// Resize changes the layer's dimensions. Biases and weights are
// re-randomized uniformly in [0, 1) and outputs and errors are zeroed, so
// any previous training of this layer is discarded.
func (l *DenseLayer) Resize(numNodes, numWeightsPerNode int) {
	l.output = make([]float64, numNodes)
	l.err = make([]float64, numNodes)
	l.bias = make([]float64, numNodes)
	l.weights = make([][]float64, numNodes)
	for i := range l.weights {
		l.bias[i] = random.Uniform(0, 1)
		row := make([]float64, numWeightsPerNode)
		for j := range row {
			row[j] = random.Uniform(0, 1)
		}
		l.weights[i] = row
	}
}

// FeedForward computes the layer's output for the given input. Each node
// sums its bias with the weighted input and applies the activation function.
//
// A short input only drives the first len(input) weights, so missing
// positions contribute as zeros; extra input values are ignored.
func (l *DenseLayer) FeedForward(input []float64) {
	for i := range l.output {
		sum := l.bias[i]
		row := l.weights[i]
		for j := 0; j < len(row) && j < len(input); j++ {
			sum += input[j] * row[j]
		}
		l.output[i] = activate(sum, l.act)
	}
}

// Backpropagate computes the output-layer error signal against a reference
// vector: error[i] = (reference[i] - output[i]) * act'(output[i]).
//
// Only the first min(NumNodes, len(reference)) entries are written; trailing
// entries keep their previous value (zero until something else writes them).
func (l *DenseLayer) Backpropagate(reference []float64) {
	for i := 0; i < len(l.output) && i < len(reference); i++ {
		diff := reference[i] - l.output[i]
		l.err[i] = diff * activateDelta(l.output[i], l.act)
	}
}

// BackpropagateFrom computes a hidden layer's error signal from the layer
// after it: each node accumulates the next layer's errors weighted by the
// next layer's weights on that node, scaled by the local activation
// derivative. Requires next.NumWeightsPerNode() == l.NumNodes().
func (l *DenseLayer) BackpropagateFrom(next *DenseLayer) {
	for i := range l.output {
		var sum float64
		for j := range next.err {
			sum += next.err[j] * next.weights[j][i]
		}
		l.err[i] = sum * activateDelta(l.output[i], l.act)
	}
}

// Optimize adjusts biases and weights against the input that produced the
// layer's current error signal: bias[i] += error[i] * lr and
// weights[i][j] += error[i] * lr * input[j]. Short inputs leave trailing
// weights untouched.
func (l *DenseLayer) Optimize(input []float64, lr float64) {
	for i := range l.err {
		l.bias[i] += l.err[i] * lr
		row := l.weights[i]
		for j := 0; j < len(row) && j < len(input); j++ {
			row[j] += l.err[i] * lr * input[j]
		}
	}
}
