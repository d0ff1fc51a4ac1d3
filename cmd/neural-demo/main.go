// Command neural-demo trains a network to count high inputs:
//
//	inputs[2:0]    outputs[1:0]
//	    000             00
//	    001             01
//	    010             01
//	    011             10
//	    100             01
//	    101             10
//	    110             10
//	    111             11
//
// Three inputs feed a hidden layer of 20 tanh nodes and an output layer of
// two nodes. The network trains for 10000 epochs with a 5 % learning rate,
// then prints its predictions for the training inputs.
//
// Weights start uniform in [0, 1) from a wall-clock seed, so prediction
// quality varies between runs; a ReLU output node that starts dead cannot
// recover. Pin the seed with nn.Reseed for repeatable results.
package main

import (
	"log"

	"github.com/kvist-ml/kvist/nn"
)

func main() {
	trainIn := [][]float64{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}
	trainOut := [][]float64{
		{0, 0}, {0, 1}, {0, 1}, {1, 0},
		{0, 1}, {1, 0}, {1, 0}, {1, 1},
	}

	net := nn.New(3, 20, 2, nn.Tanh, nn.ReLU)
	net.AddTrainingData(trainIn, trainOut)
	if !net.Train(10000, 0.05) {
		log.Fatal("training rejected: no training data or invalid learning rate")
	}
	net.PrintPredictions(nil, trainIn, 1)
}
