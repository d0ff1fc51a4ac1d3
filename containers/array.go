// Copyright 2026 Kvist Exercises. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package containers

import (
	"github.com/pkg/errors"
)

// Array is a fixed-capacity sequence. The capacity is chosen at construction
// and never changes; Clear resets every element to the zero value instead of
// shrinking.
type Array[T any] struct {
	data []T
}

// NewArray creates an array of the given size, filled with zero values.
// The size must be at least 1.
func NewArray[T any](size int) (*Array[T], error) {
	if size < 1 {
		return nil, errors.Errorf("containers: array size must be at least 1, got %d", size)
	}
	return &Array[T]{data: make([]T, size)}, nil
}

// Len returns the array's fixed size.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// At returns the element at index i.
func (a *Array[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(a.data) {
		return zero, errors.Errorf("containers: array index %d out of range [0, %d)", i, len(a.data))
	}
	return a.data[i], nil
}

// Set stores v at index i.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.data) {
		return errors.Errorf("containers: array index %d out of range [0, %d)", i, len(a.data))
	}
	a.data[i] = v
	return nil
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Clear resets every element to the zero value.
func (a *Array[T]) Clear() {
	var zero T
	a.Fill(zero)
}

// Values returns a copy of the array's contents in order.
func (a *Array[T]) Values() []T {
	return append([]T{}, a.data...)
}
