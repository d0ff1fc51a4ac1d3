// Copyright 2026 Kvist Exercises. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package devices

import (
	"time"

	"github.com/pkg/errors"

	"github.com/kvist-ml/kvist/containers"
	"github.com/kvist-ml/kvist/timer"
)

// Reading is one sensor value captured during a poll.
type Reading struct {
	SensorID uint32
	Value    uint32
}

// LoopUnit polls a capped set of sensors on an interval timer. Disabled
// sensors stay attached but are skipped while polling.
type LoopUnit struct {
	id      uint32
	max     int
	sensors *containers.List[*Sensor]
	ticker  *timer.Timer
}

// NewLoopUnit creates a loop unit holding at most maxSensors sensors,
// polled every pollInterval. The capacity must be at least 1.
func NewLoopUnit(maxSensors int, pollInterval time.Duration) (*LoopUnit, error) {
	if maxSensors < 1 {
		return nil, errors.Errorf("devices: loop unit capacity must be at least 1, got %d", maxSensors)
	}
	ticker, err := timer.New(pollInterval, true)
	if err != nil {
		return nil, errors.Wrap(err, "devices: poll interval")
	}
	return &LoopUnit{
		id:      nextDeviceID(),
		max:     maxSensors,
		sensors: containers.NewList[*Sensor](),
		ticker:  ticker,
	}, nil
}

// ID returns the loop unit's process-unique identifier.
func (u *LoopUnit) ID() uint32 {
	return u.id
}

// NumSensors returns the number of attached sensors.
func (u *LoopUnit) NumSensors() int {
	return u.sensors.Len()
}

// AddSensor attaches a sensor. Attaching to a full unit is an error.
func (u *LoopUnit) AddSensor(s *Sensor) error {
	if u.sensors.Len() >= u.max {
		return errors.Errorf("devices: loop unit %d is full (%d sensors)", u.id, u.max)
	}
	u.sensors.PushBack(s)
	return nil
}

// RemoveSensor detaches the sensor with the given ID. An unknown ID is an
// error.
func (u *LoopUnit) RemoveSensor(id uint32) error {
	if !u.sensors.RemoveFirst(func(s *Sensor) bool { return s.ID() == id }) {
		return errors.Errorf("devices: loop unit %d has no sensor %d", u.id, id)
	}
	return nil
}

// Sensors returns the IDs of the attached sensors in attachment order.
func (u *LoopUnit) Sensors() []uint32 {
	ids := make([]uint32, 0, u.sensors.Len())
	u.sensors.Do(func(s *Sensor) {
		ids = append(ids, s.ID())
	})
	return ids
}

// Poll reads every enabled sensor once the poll interval has passed and
// returns the readings. Between intervals, and while the unit's timer is
// stopped, Poll returns nil.
func (u *LoopUnit) Poll() []Reading {
	if !u.ticker.Elapsed() {
		return nil
	}
	var readings []Reading
	u.sensors.Do(func(s *Sensor) {
		value, err := s.Read()
		if err != nil {
			return // disabled, skip
		}
		readings = append(readings, Reading{SensorID: s.ID(), Value: value})
	})
	return readings
}
