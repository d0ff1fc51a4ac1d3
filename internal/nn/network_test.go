package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvist-ml/kvist/internal/nn"
	"github.com/kvist-ml/kvist/internal/random"
)

// snapshot captures every bias and weight of the network for exact
// before/after comparisons.
func snapshot(n *nn.Network) [][]float64 {
	var s [][]float64
	layers := append([]*nn.DenseLayer{}, n.HiddenLayers()...)
	layers = append(layers, n.OutputLayer())
	for _, l := range layers {
		s = append(s, append([]float64{}, l.Bias()...))
		for _, row := range l.Weights() {
			s = append(s, append([]float64{}, row...))
		}
	}
	return s
}

func TestNewTopology(t *testing.T) {
	random.Reseed(10)

	net := nn.New(3, 5, 2, nn.Tanh, nn.ReLU)

	require.Equal(t, 1, net.NumHiddenLayers())
	assert.Equal(t, 5, net.HiddenLayers()[0].NumNodes())
	assert.Equal(t, 3, net.HiddenLayers()[0].NumWeightsPerNode())
	assert.Equal(t, nn.Tanh, net.HiddenLayers()[0].ActFunc())
	assert.Equal(t, 2, net.OutputLayer().NumNodes())
	assert.Equal(t, 5, net.OutputLayer().NumWeightsPerNode())
	assert.Equal(t, nn.ReLU, net.OutputLayer().ActFunc())
	assert.Equal(t, 3, net.NumInputs())
	assert.Equal(t, 2, net.NumOutputs())
	assert.Zero(t, net.NumTrainingSets())
}

func TestTopologyAfterMixedAdds(t *testing.T) {
	random.Reseed(11)

	net := nn.New(3, 5, 2, nn.ReLU, nn.ReLU)
	net.AddHiddenLayer(7, nn.ReLU)
	net.AddHiddenLayers(2, 4, nn.ReLU)

	require.Equal(t, 4, net.NumHiddenLayers())
	wantNodes := []int{5, 7, 4, 4}
	wantWeights := []int{3, 5, 7, 4}
	for k, layer := range net.HiddenLayers() {
		assert.Equal(t, wantNodes[k], layer.NumNodes(), "hidden layer %d nodes", k)
		assert.Equal(t, wantWeights[k], layer.NumWeightsPerNode(), "hidden layer %d weights", k)
	}
	assert.Equal(t, 2, net.OutputLayer().NumNodes())
	assert.Equal(t, 4, net.OutputLayer().NumWeightsPerNode())
}

func TestAddHiddenLayersMatchesRepeatedAdds(t *testing.T) {
	random.Reseed(12)
	batch := nn.New(2, 3, 1, nn.ReLU, nn.ReLU)
	batch.AddHiddenLayers(3, 4, nn.Tanh)

	random.Reseed(12)
	single := nn.New(2, 3, 1, nn.ReLU, nn.ReLU)
	single.AddHiddenLayer(4, nn.Tanh)
	single.AddHiddenLayer(4, nn.Tanh)
	single.AddHiddenLayer(4, nn.Tanh)

	require.Equal(t, single.NumHiddenLayers(), batch.NumHiddenLayers())
	for k := range batch.HiddenLayers() {
		assert.Equal(t, single.HiddenLayers()[k].NumNodes(), batch.HiddenLayers()[k].NumNodes())
		assert.Equal(t, single.HiddenLayers()[k].NumWeightsPerNode(), batch.HiddenLayers()[k].NumWeightsPerNode())
		assert.Equal(t, single.HiddenLayers()[k].ActFunc(), batch.HiddenLayers()[k].ActFunc())
	}
	assert.Equal(t, single.OutputLayer().NumNodes(), batch.OutputLayer().NumNodes())
	assert.Equal(t, single.OutputLayer().NumWeightsPerNode(), batch.OutputLayer().NumWeightsPerNode())
}

func TestAddTrainingDataTruncatesToShorter(t *testing.T) {
	random.Reseed(13)

	net := nn.New(1, 2, 1, nn.ReLU, nn.ReLU)
	net.AddTrainingData(
		[][]float64{{0}, {1}, {2}},
		[][]float64{{0}, {1}},
	)
	assert.Equal(t, 2, net.NumTrainingSets())
}

func TestAddTrainingDataCopies(t *testing.T) {
	random.Reseed(14)

	net := nn.New(1, 2, 1, nn.ReLU, nn.ReLU)
	inputs := [][]float64{{1}}
	refs := [][]float64{{1}}
	net.AddTrainingData(inputs, refs)

	// Mutating the caller's slices must not reach the stored copies.
	inputs[0][0] = 99
	refs[0][0] = 99

	require.True(t, net.Train(0, 0.01))
}

func TestRemoveTrainingDataIdempotent(t *testing.T) {
	random.Reseed(15)

	net := nn.New(1, 2, 1, nn.ReLU, nn.ReLU)
	net.AddTrainingData([][]float64{{1}}, [][]float64{{1}})
	net.RemoveTrainingData()
	assert.Zero(t, net.NumTrainingSets())
	net.RemoveTrainingData()
	assert.Zero(t, net.NumTrainingSets())
}

func TestTrainRejectsNonPositiveLearningRate(t *testing.T) {
	random.Reseed(16)

	net := nn.New(2, 2, 1, nn.ReLU, nn.ReLU)
	net.AddTrainingData([][]float64{{0, 0}, {1, 1}}, [][]float64{{0}, {1}})

	before := snapshot(net)
	assert.False(t, net.Train(100, 0))
	assert.False(t, net.Train(100, -0.5))
	assert.Equal(t, before, snapshot(net))
	assert.Equal(t, 2, net.NumTrainingSets())
}

func TestTrainRejectsEmptyTrainingData(t *testing.T) {
	random.Reseed(17)

	net := nn.New(2, 2, 1, nn.ReLU, nn.ReLU)
	assert.False(t, net.Train(10, 0.01))
}

func TestTrainZeroEpochs(t *testing.T) {
	random.Reseed(18)

	net := nn.New(2, 2, 1, nn.ReLU, nn.ReLU)
	net.AddTrainingData([][]float64{{0, 1}}, [][]float64{{1}})

	before := snapshot(net)
	assert.True(t, net.Train(0, 0.01))
	assert.Equal(t, before, snapshot(net))
	assert.Zero(t, net.NumTrainingSets())
}

func TestTrainClearsTrainingData(t *testing.T) {
	random.Reseed(19)

	net := nn.New(2, 3, 1, nn.ReLU, nn.ReLU)
	net.AddTrainingData([][]float64{{0, 0}, {1, 0}}, [][]float64{{0}, {1}})

	require.True(t, net.Train(5, 0.01))
	assert.Zero(t, net.NumTrainingSets())
}

func TestPredictPurity(t *testing.T) {
	random.Reseed(20)

	net := nn.New(2, 4, 2, nn.Tanh, nn.Tanh)
	input := []float64{0.3, -0.7}

	first := append([]float64{}, net.Predict(input)...)
	second := append([]float64{}, net.Predict(input)...)
	assert.Equal(t, first, second)
}

func TestPredictShortInput(t *testing.T) {
	random.Reseed(21)

	net := nn.New(3, 4, 1, nn.ReLU, nn.ReLU)

	// Missing positions behave as zeros.
	short := append([]float64{}, net.Predict([]float64{0.5})...)
	padded := append([]float64{}, net.Predict([]float64{0.5, 0, 0})...)
	assert.Equal(t, padded, short)
}

func TestTrainStepReducesError(t *testing.T) {
	random.Reseed(22)

	net := nn.New(2, 3, 1, nn.ReLU, nn.ReLU)
	input := []float64{0.2, 0.4}
	ref := []float64{0.5}

	squaredError := func() float64 {
		out := net.Predict(input)
		var sum float64
		for i, r := range ref {
			diff := r - out[i]
			sum += diff * diff
		}
		return sum
	}

	before := squaredError()
	net.AddTrainingData([][]float64{input}, [][]float64{ref})
	require.True(t, net.Train(1, 1e-3))
	assert.LessOrEqual(t, squaredError(), before)
}
