// Copyright 2026 Kvist Exercises. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small fully connected feed-forward neural network
// trained by backpropagation.
//
// # Overview
//
// This package contains:
//   - Network: hidden layer stack plus output layer, epoch-driven training
//   - DenseLayer: one fully connected layer
//   - Activations: ReLU, Tanh (selected per layer)
//
// # Basic Usage
//
//	import "github.com/kvist-ml/kvist/nn"
//
//	func main() {
//	    net := nn.New(2, 4, 1, nn.Tanh, nn.Tanh)
//	    net.AddTrainingData(
//	        [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
//	        [][]float64{{0}, {1}, {1}, {0}},
//	    )
//	    net.Train(20000, 0.05)
//	    net.PrintPredictions(nil, [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, 1)
//	}
//
// Training visits every stored example once per epoch in a freshly shuffled
// order and updates weights per example (stochastic gradient descent with a
// fixed learning rate). Successful training clears the stored data.
//
// Add all hidden layers before training: appending a hidden layer resizes
// the output layer, which re-randomizes its weights and biases.
//
// Runs are not reproducible across processes unless the random source is
// pinned with Reseed before constructing the network.
package nn
