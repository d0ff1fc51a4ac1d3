package nn

import (
	"github.com/kvist-ml/kvist/internal/random"
)

// Network is a fully connected feed-forward neural network trained by
// backpropagation.
//
// A network owns one or more hidden layers and one output layer. The network
// drives the forward, backward and optimize passes over the layer stack;
// layers never reference their neighbors except as call parameters.
//
// Training data is owned by the network between AddTrainingData and the end
// of a successful Train call (or an explicit RemoveTrainingData).
//
// A Network is not safe for concurrent use: all layers draw from the shared
// process-wide random source.
type Network struct {
	hidden   []*DenseLayer
	out      *DenseLayer
	trainIn  [][]float64
	trainRef [][]float64
	order    []int
}

// New creates a network with numInputs inputs, one hidden layer of
// numHiddenNodes nodes and an output layer of numOutputs nodes. More hidden
// layers can be added with AddHiddenLayer or AddHiddenLayers. All weights
// and biases are randomized uniformly in [0, 1).
//
// All three dimensions must be at least 1.
func New(numInputs, numHiddenNodes, numOutputs int, hiddenAct, outAct ActFunc) *Network {
	return &Network{
		hidden: []*DenseLayer{NewDenseLayer(numHiddenNodes, numInputs, hiddenAct)},
		out:    NewDenseLayer(numOutputs, numHiddenNodes, outAct),
	}
}

// HiddenLayers returns the network's hidden layers in forward order.
func (n *Network) HiddenLayers() []*DenseLayer {
	return n.hidden
}

// OutputLayer returns the network's output layer.
func (n *Network) OutputLayer() *DenseLayer {
	return n.out
}

// Output returns the output layer's last forward output as a view.
func (n *Network) Output() []float64 {
	return n.out.Output()
}

// NumInputs returns the input width of the network.
func (n *Network) NumInputs() int {
	if len(n.hidden) == 0 {
		return 0
	}
	return n.hidden[0].NumWeightsPerNode()
}

// NumOutputs returns the output width of the network.
func (n *Network) NumOutputs() int {
	return n.out.NumNodes()
}

// NumHiddenLayers returns the number of hidden layers.
func (n *Network) NumHiddenLayers() int {
	return len(n.hidden)
}

// NumTrainingSets returns the number of stored training examples.
func (n *Network) NumTrainingSets() int {
	return len(n.order)
}

// AddHiddenLayer appends a hidden layer with numNodes nodes, wired to the
// current last hidden layer, and resizes the output layer to match.
//
// Resizing re-randomizes the output layer's weights and biases, so hidden
// layers should be added before training; trained state is not preserved.
func (n *Network) AddHiddenLayer(numNodes int, act ActFunc) {
	n.hidden = append(n.hidden, NewDenseLayer(numNodes, n.lastHidden().NumNodes(), act))
	n.resizeOutputLayer()
}

// AddHiddenLayers appends numLayers hidden layers of numNodes nodes each.
// Equivalent to repeated AddHiddenLayer calls, but the output layer is
// resized only once at the end.
func (n *Network) AddHiddenLayers(numLayers, numNodes int, act ActFunc) {
	for i := 0; i < numLayers; i++ {
		n.hidden = append(n.hidden, NewDenseLayer(numNodes, n.lastHidden().NumNodes(), act))
	}
	n.resizeOutputLayer()
}

// AddTrainingData copies the given input and reference vectors into the
// network. If the collections differ in length, both are truncated to the
// shorter one. The training order index is rebuilt to 0..len-1.
func (n *Network) AddTrainingData(inputs, references [][]float64) {
	count := len(inputs)
	if len(references) < count {
		count = len(references)
	}
	n.trainIn = copyVectors(inputs[:count])
	n.trainRef = copyVectors(references[:count])
	n.order = make([]int, count)
	for i := range n.order {
		n.order[i] = i
	}
}

// RemoveTrainingData clears the stored training data. Calling it on a
// network without training data is a no-op.
func (n *Network) RemoveTrainingData() {
	n.trainIn = nil
	n.trainRef = nil
	n.order = nil
}

// Train runs the given number of epochs over the stored training data.
// Each epoch visits every example once in a freshly shuffled order, running
// feed-forward, backpropagation and a weight update per example.
//
// Returns false without side effects when the learning rate is not positive
// or no training data is stored. On success the training data is cleared
// and true is returned; zero epochs is a valid no-op.
func (n *Network) Train(epochs int, lr float64) bool {
	if lr <= 0 || len(n.order) == 0 {
		return false
	}
	for e := 0; e < epochs; e++ {
		random.Shuffle(len(n.order), func(i, j int) {
			n.order[i], n.order[j] = n.order[j], n.order[i]
		})
		n.runEpoch(lr)
	}
	n.RemoveTrainingData()
	return true
}

// Predict runs a forward pass over the layer stack and returns the output
// layer's output as a view. Inputs shorter than NumInputs are treated as
// zero-padded; extra values are ignored.
func (n *Network) Predict(input []float64) []float64 {
	n.feedForward(input)
	return n.out.Output()
}

func (n *Network) lastHidden() *DenseLayer {
	return n.hidden[len(n.hidden)-1]
}

// resizeOutputLayer re-wires the output layer to the last hidden layer,
// keeping its node count.
func (n *Network) resizeOutputLayer() {
	n.out.Resize(n.out.NumNodes(), n.lastHidden().NumNodes())
}

func (n *Network) runEpoch(lr float64) {
	for _, i := range n.order {
		n.feedForward(n.trainIn[i])
		n.backpropagate(n.trainRef[i])
		n.optimize(n.trainIn[i], lr)
	}
}

func (n *Network) feedForward(input []float64) {
	n.hidden[0].FeedForward(input)
	for k := 1; k < len(n.hidden); k++ {
		n.hidden[k].FeedForward(n.hidden[k-1].Output())
	}
	n.out.FeedForward(n.lastHidden().Output())
}

func (n *Network) backpropagate(reference []float64) {
	n.out.Backpropagate(reference)
	n.lastHidden().BackpropagateFrom(n.out)
	for k := len(n.hidden) - 2; k >= 0; k-- {
		n.hidden[k].BackpropagateFrom(n.hidden[k+1])
	}
}

func (n *Network) optimize(input []float64, lr float64) {
	n.hidden[0].Optimize(input, lr)
	for k := 1; k < len(n.hidden); k++ {
		n.hidden[k].Optimize(n.hidden[k-1].Output(), lr)
	}
	n.out.Optimize(n.lastHidden().Output(), lr)
}

func copyVectors(src [][]float64) [][]float64 {
	dst := make([][]float64, len(src))
	for i, v := range src {
		dst[i] = make([]float64, len(v))
		copy(dst[i], v)
	}
	return dst
}
