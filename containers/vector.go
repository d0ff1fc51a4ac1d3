// Copyright 2026 Kvist Exercises. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package containers

import (
	"github.com/pkg/errors"
)

// Vector is a dynamically sized sequence.
//
// The zero value is an empty vector ready for use.
type Vector[T any] struct {
	data []T
}

// NewVector creates a vector holding copies of the given values.
func NewVector[T any](values ...T) *Vector[T] {
	return &Vector[T]{data: append([]T{}, values...)}
}

// Len returns the number of stored elements.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(v.data) {
		return zero, errors.Errorf("containers: vector index %d out of range [0, %d)", i, len(v.data))
	}
	return v.data[i], nil
}

// Set stores val at index i.
func (v *Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= len(v.data) {
		return errors.Errorf("containers: vector index %d out of range [0, %d)", i, len(v.data))
	}
	v.data[i] = val
	return nil
}

// PushBack appends val to the end of the vector.
func (v *Vector[T]) PushBack(val T) {
	v.data = append(v.data, val)
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	if len(v.data) == 0 {
		return zero, errors.New("containers: pop from empty vector")
	}
	val := v.data[len(v.data)-1]
	v.data[len(v.data)-1] = zero
	v.data = v.data[:len(v.data)-1]
	return val, nil
}

// Insert places val at index i, shifting later elements one step back.
// Inserting at i == Len() appends.
func (v *Vector[T]) Insert(i int, val T) error {
	if i < 0 || i > len(v.data) {
		return errors.Errorf("containers: vector insert index %d out of range [0, %d]", i, len(v.data))
	}
	var zero T
	v.data = append(v.data, zero)
	copy(v.data[i+1:], v.data[i:])
	v.data[i] = val
	return nil
}

// RemoveAt deletes the element at index i, shifting later elements one step
// forward.
func (v *Vector[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(v.data) {
		return errors.Errorf("containers: vector index %d out of range [0, %d)", i, len(v.data))
	}
	var zero T
	copy(v.data[i:], v.data[i+1:])
	v.data[len(v.data)-1] = zero
	v.data = v.data[:len(v.data)-1]
	return nil
}

// Clear removes all elements.
func (v *Vector[T]) Clear() {
	v.data = nil
}

// Values returns a copy of the vector's contents in order.
func (v *Vector[T]) Values() []T {
	return append([]T{}, v.data...)
}
