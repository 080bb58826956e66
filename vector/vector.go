// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vector provides norms and products of float64 vectors,
// represented as plain slices, using [gonum.org/v1/gonum/floats].
package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Norms holds the 1, 2, and ∞ norms of a vector.
type Norms struct {
	// One is the sum of absolute values.
	One float64

	// Two is the Euclidean length.
	Two float64

	// Inf is the largest absolute value.
	Inf float64
}

func (n Norms) String() string {
	return fmt.Sprintf("1-norm: %g, 2-norm: %g, inf-norm: %g", n.One, n.Two, n.Inf)
}

// NormsOf returns the 1, 2, and ∞ norms of the given vector.
// All norms of an empty vector are 0.
func NormsOf(x []float64) Norms {
	return Norms{One: NormL1(x), Two: NormL2(x), Inf: NormInf(x)}
}

// NormL1 returns the sum of the absolute values of x.
func NormL1(x []float64) float64 { return floats.Norm(x, 1) }

// NormL2 returns the Euclidean norm of x.
func NormL2(x []float64) float64 { return floats.Norm(x, 2) }

// NormInf returns the maximum absolute value of x.
func NormInf(x []float64) float64 { return floats.Norm(x, math.Inf(1)) }

// Dot returns the inner product of a and b,
// which must have the same length.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector: length mismatch: got %d and %d", len(a), len(b))
	}
	return floats.Dot(a, b), nil
}

// Normalize returns x scaled to unit Euclidean length, and its original length.
// A zero vector is returned unchanged with length 0.
func Normalize(x []float64) ([]float64, float64) {
	out := make([]float64, len(x))
	copy(out, x)
	n := NormL2(x)
	if n == 0 {
		return out, 0
	}
	floats.Scale(1/n, out)
	return out, n
}
