// Copyright 2026 Kvist Exercises. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/kvist-ml/kvist/internal/nn"
	"github.com/kvist-ml/kvist/internal/random"
)

// ActFunc selects the activation function of a dense layer. The zero value
// is ReLU.
type ActFunc = nn.ActFunc

const (
	// ReLU is the rectified linear unit: f(x) = max(0, x).
	ReLU = nn.ReLU
	// Tanh is the hyperbolic tangent.
	Tanh = nn.Tanh
)

// DenseLayer implements one fully connected layer.
type DenseLayer = nn.DenseLayer

// NewDenseLayer creates a layer with numNodes nodes and numWeightsPerNode
// weights per node, randomized uniformly in [0, 1).
func NewDenseLayer(numNodes, numWeightsPerNode int, act ActFunc) *DenseLayer {
	return nn.NewDenseLayer(numNodes, numWeightsPerNode, act)
}

// Network is a fully connected feed-forward neural network trained by
// backpropagation.
type Network = nn.Network

// New creates a network with numInputs inputs, one hidden layer of
// numHiddenNodes nodes and an output layer of numOutputs nodes.
//
// Example:
//
//	net := nn.New(3, 20, 2, nn.Tanh, nn.ReLU)
func New(numInputs, numHiddenNodes, numOutputs int, hiddenAct, outAct ActFunc) *Network {
	return nn.New(numInputs, numHiddenNodes, numOutputs, hiddenAct, outAct)
}

// Reseed pins the shared random source to a fixed seed for reproducible
// construction and training. The default policy is wall-clock seeding on
// first use.
func Reseed(seed int64) {
	random.Reseed(seed)
}
