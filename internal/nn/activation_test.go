package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivateReLU(t *testing.T) {
	assert.Equal(t, 0.0, activate(-3.5, ReLU))
	assert.Equal(t, 0.0, activate(0, ReLU))
	assert.Equal(t, 2.25, activate(2.25, ReLU))
}

func TestActivateTanh(t *testing.T) {
	assert.Equal(t, 0.0, activate(0, Tanh))
	assert.InDelta(t, math.Tanh(0.5), activate(0.5, Tanh), 1e-12)
	assert.InDelta(t, math.Tanh(-2), activate(-2, Tanh), 1e-12)
}

func TestActivateDeltaReLU(t *testing.T) {
	// The derivative is evaluated from the stored output, with the
	// subgradient at zero chosen as 0.
	assert.Equal(t, 1.0, activateDelta(0.7, ReLU))
	assert.Equal(t, 0.0, activateDelta(0, ReLU))
}

func TestActivateDeltaTanh(t *testing.T) {
	y := math.Tanh(0.8)
	assert.InDelta(t, 1-y*y, activateDelta(y, Tanh), 1e-12)
	assert.Equal(t, 1.0, activateDelta(0, Tanh))
}

func TestActFuncString(t *testing.T) {
	assert.Equal(t, "relu", ReLU.String())
	assert.Equal(t, "tanh", Tanh.String())
}
