// Copyright 2026 Kvist Exercises. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package timer provides a polled interval timer on the monotonic clock.
package timer

import (
	"time"

	"github.com/pkg/errors"
)

// Timer is an interval timer with a selectable elapse time. It is polled:
// callers ask Elapsed() whether the interval has passed, and the timer
// re-arms itself from the moment of detection.
//
// Readings use the monotonic clock, so wall-clock adjustments do not affect
// intervals. A Timer is not safe for concurrent use.
type Timer struct {
	elapse  time.Duration
	started time.Time
	enabled bool
}

// New creates a timer with the given elapse time. A non-positive elapse
// time is an error. When enabled is true the timer starts immediately.
func New(elapse time.Duration, enabled bool) (*Timer, error) {
	if elapse <= 0 {
		return nil, errors.Errorf("timer: elapse time must be positive, got %v", elapse)
	}
	t := &Timer{elapse: elapse}
	if enabled {
		t.Start()
	}
	return t, nil
}

// Start enables the timer. Starting an already running timer does not reset
// the interval in progress.
func (t *Timer) Start() {
	if t.enabled {
		return
	}
	t.enabled = true
	t.started = time.Now()
}

// Stop disables the timer. A stopped timer never elapses.
func (t *Timer) Stop() {
	t.enabled = false
}

// Toggle starts a stopped timer and stops a running one.
func (t *Timer) Toggle() {
	if t.enabled {
		t.Stop()
	} else {
		t.Start()
	}
}

// Restart enables the timer and begins a fresh interval.
func (t *Timer) Restart() {
	t.enabled = true
	t.started = time.Now()
}

// Enabled reports whether the timer is running.
func (t *Timer) Enabled() bool {
	return t.enabled
}

// Elapsed reports whether the elapse time has passed since the timer was
// started or last elapsed. On a true result the timer re-arms, so each
// completed interval is reported once.
func (t *Timer) Elapsed() bool {
	if !t.enabled || time.Since(t.started) < t.elapse {
		return false
	}
	t.started = time.Now()
	return true
}

// ElapseTime returns the configured elapse time.
func (t *Timer) ElapseTime() time.Duration {
	return t.elapse
}

// Nanoseconds returns the elapse time as a nanosecond count.
func (t *Timer) Nanoseconds() int64 {
	return t.elapse.Nanoseconds()
}

// Microseconds returns the elapse time rounded to a microsecond count.
func (t *Timer) Microseconds() int64 {
	return t.elapse.Round(time.Microsecond).Microseconds()
}

// Milliseconds returns the elapse time rounded to a millisecond count.
func (t *Timer) Milliseconds() int64 {
	return t.elapse.Round(time.Millisecond).Milliseconds()
}

// Seconds returns the elapse time rounded to a whole second count.
func (t *Timer) Seconds() int64 {
	return int64(t.elapse.Round(time.Second) / time.Second)
}
