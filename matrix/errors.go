// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"
	"math"

	"cogentcore.org/linalg/base/errors"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShape is matched by all errors for inputs with incompatible
	// or empty dimensions.
	ErrShape = errors.New("matrix: shape mismatch")

	// ErrDependent is matched by a [*DependencyError] from [GramSchmidt].
	ErrDependent = errors.New("matrix: columns are linearly dependent or zero")

	// ErrTolerance is returned for a negative or NaN tolerance.
	ErrTolerance = errors.New("matrix: invalid tolerance")

	// ErrNotFinite is returned when an input contains NaN or ±Inf.
	ErrNotFinite = errors.New("matrix: NaN or Inf in input")

	// ErrNormKind is returned for a [NormKind] that is not one of the defined kinds.
	ErrNormKind = errors.New("matrix: unknown norm kind")

	// ErrFactorize is returned when a gonum factorization reports failure.
	ErrFactorize = errors.New("matrix: factorization failed")
)

// ShapeError describes a shape mismatch detected by Op.
type ShapeError struct {
	Op  string
	Msg string
}

func (e *ShapeError) Error() string {
	return "matrix: " + e.Op + ": " + e.Msg
}

func (e *ShapeError) Unwrap() error { return ErrShape }

func shapeErrorf(op, format string, a ...any) error {
	return &ShapeError{Op: op, Msg: fmt.Sprintf(format, a...)}
}

// DependencyError is returned by [GramSchmidt] when the residual of
// Column, after removing its projections onto all preceding basis
// vectors, is numerically zero.
type DependencyError struct {
	// Column is the zero-based index of the offending input column.
	Column int

	// Residual is the 2-norm of the column residual.
	Residual float64
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("matrix: column %d is linearly dependent on the preceding columns or zero (residual norm %g)", e.Column, e.Residual)
}

func (e *DependencyError) Unwrap() error { return ErrDependent }

// dims returns the dimensions of a, and an error if either is zero.
func dims(op string, a mat.Matrix) (m, n int, err error) {
	m, n = a.Dims()
	if m == 0 || n == 0 {
		return m, n, shapeErrorf(op, "empty %dx%d matrix", m, n)
	}
	return m, n, nil
}

// vecLen returns the length of v, and an error if it is empty.
func vecLen(op string, v mat.Vector) (int, error) {
	n := v.Len()
	if n == 0 {
		return 0, shapeErrorf(op, "empty vector")
	}
	return n, nil
}

// checkFinite returns [ErrNotFinite] if any element of a is NaN or ±Inf.
func checkFinite(op string, a mat.Matrix) error {
	m, n := a.Dims()
	for i := range m {
		for j := range n {
			v := a.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s: element (%d, %d) is %g", ErrNotFinite, op, i, j, v)
			}
		}
	}
	return nil
}
