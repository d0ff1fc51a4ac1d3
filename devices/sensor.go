// Copyright 2026 Kvist Exercises. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package devices provides a polled sensor and a loop unit that reads a
// capped set of sensors on an interval timer.
package devices

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/kvist-ml/kvist/internal/random"
)

// idCounter hands out process-unique device identifiers.
var idCounter = atomic.NewUint32(0)

func nextDeviceID() uint32 {
	return idCounter.Add(1)
}

// Sensor produces bounded random readings, standing in for real polled
// hardware. Every sensor gets a process-unique numeric ID and a UUID
// hardware serial at construction.
type Sensor struct {
	id      uint32
	serial  string
	min     uint32
	max     uint32
	enabled bool
}

// NewSensor creates a sensor producing values in [minVal, maxVal]. An
// inverted range is an error.
func NewSensor(minVal, maxVal uint32, enabled bool) (*Sensor, error) {
	if minVal > maxVal {
		return nil, errors.Errorf("devices: sensor range [%d, %d] is inverted", minVal, maxVal)
	}
	return &Sensor{
		id:      nextDeviceID(),
		serial:  uuid.NewString(),
		min:     minVal,
		max:     maxVal,
		enabled: enabled,
	}, nil
}

// ID returns the sensor's process-unique identifier.
func (s *Sensor) ID() uint32 {
	return s.id
}

// Serial returns the sensor's hardware serial.
func (s *Sensor) Serial() string {
	return s.serial
}

// Enabled reports whether the sensor is readable.
func (s *Sensor) Enabled() bool {
	return s.enabled
}

// Enable makes the sensor readable.
func (s *Sensor) Enable() {
	s.enabled = true
}

// Disable makes the sensor unreadable.
func (s *Sensor) Disable() {
	s.enabled = false
}

// Toggle flips the sensor's enabled state.
func (s *Sensor) Toggle() {
	s.enabled = !s.enabled
}

// Read returns a reading in the sensor's range. Reading a disabled sensor
// is an error.
func (s *Sensor) Read() (uint32, error) {
	if !s.enabled {
		return 0, errors.Errorf("devices: sensor %d is disabled", s.id)
	}
	return random.Uint32Range(s.min, s.max), nil
}
