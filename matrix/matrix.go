// Copyright 2026 Kvist Exercises. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides a small arithmetic matrix helper over float64,
// backed by gonum.
package matrix

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense float64 matrix with explicit bounds and shape checking.
type Matrix struct {
	data *mat.Dense
}

// New creates a zero-filled matrix with the given dimensions. Both must be
// at least 1.
func New(rows, cols int) (*Matrix, error) {
	return NewFilled(rows, cols, 0)
}

// NewFilled creates a matrix with the given dimensions where every element
// starts at v.
func NewFilled(rows, cols int, v float64) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Errorf("matrix: dimensions must be at least 1x1, got %dx%d", rows, cols)
	}
	data := make([]float64, rows*cols)
	if v != 0 {
		for i := range data {
			data[i] = v
		}
	}
	return &Matrix{data: mat.NewDense(rows, cols, data)}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	r, _ := m.data.Dims()
	return r
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	_, c := m.data.Dims()
	return c
}

// At returns the element at row r, column c.
func (m *Matrix) At(r, c int) (float64, error) {
	if err := m.checkIndex(r, c); err != nil {
		return 0, err
	}
	return m.data.At(r, c), nil
}

// Set stores v at row r, column c.
func (m *Matrix) Set(r, c int, v float64) error {
	if err := m.checkIndex(r, c); err != nil {
		return err
	}
	m.data.Set(r, c, v)
	return nil
}

// Resize changes the matrix dimensions, discarding the old content; every
// element starts at v.
func (m *Matrix) Resize(rows, cols int, v float64) error {
	resized, err := NewFilled(rows, cols, v)
	if err != nil {
		return errors.Wrap(err, "resize")
	}
	m.data = resized.data
	return nil
}

// Clear zeroes every element, keeping the dimensions.
func (m *Matrix) Clear() {
	m.data.Zero()
}

// Add returns the element-wise sum of m and other.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := m.checkSameShape(other); err != nil {
		return nil, errors.Wrap(err, "add")
	}
	var out mat.Dense
	out.Add(m.data, other.data)
	return &Matrix{data: &out}, nil
}

// Sub returns the element-wise difference of m and other.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if err := m.checkSameShape(other); err != nil {
		return nil, errors.Wrap(err, "sub")
	}
	var out mat.Dense
	out.Sub(m.data, other.data)
	return &Matrix{data: &out}, nil
}

// MulElem returns the element-wise product of m and other.
func (m *Matrix) MulElem(other *Matrix) (*Matrix, error) {
	if err := m.checkSameShape(other); err != nil {
		return nil, errors.Wrap(err, "mulelem")
	}
	var out mat.Dense
	out.MulElem(m.data, other.data)
	return &Matrix{data: &out}, nil
}

// Mul returns the matrix product m * other. The column count of m must
// match the row count of other.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, errors.Errorf("matrix: inner dimensions do not match, %dx%d * %dx%d",
			m.Rows(), m.Cols(), other.Rows(), other.Cols())
	}
	var out mat.Dense
	out.Mul(m.data, other.data)
	return &Matrix{data: &out}, nil
}

// Scale multiplies every element by k in place.
func (m *Matrix) Scale(k float64) {
	floats.Scale(k, m.data.RawMatrix().Data)
}

// Sum returns the sum of all elements.
func (m *Matrix) Sum() float64 {
	return floats.Sum(m.data.RawMatrix().Data)
}

// Max returns the largest element.
func (m *Matrix) Max() float64 {
	return floats.Max(m.data.RawMatrix().Data)
}

// Print renders the matrix row by row, fixed-point with the given decimal
// count, space separated.
func (m *Matrix) Print(w io.Writer, decimals int) {
	rows, cols := m.data.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			fmt.Fprintf(w, "%.*f ", decimals, m.data.At(r, c))
		}
		fmt.Fprintln(w)
	}
}

func (m *Matrix) checkIndex(r, c int) error {
	rows, cols := m.data.Dims()
	if r < 0 || r >= rows || c < 0 || c >= cols {
		return errors.Errorf("matrix: index (%d, %d) out of range for %dx%d matrix", r, c, rows, cols)
	}
	return nil
}

func (m *Matrix) checkSameShape(other *Matrix) error {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return errors.Errorf("matrix: shape mismatch, %dx%d vs %dx%d",
			m.Rows(), m.Cols(), other.Rows(), other.Cols())
	}
	return nil
}
