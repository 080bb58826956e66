// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Epsilon is the float64 machine epsilon, the difference between 1
// and the next representable value.
const Epsilon = 0x1p-52

// Rank returns the numerical rank of the given matrix: the number of
// singular values greater than σmax * max(m, n) * [Epsilon].
func Rank(a mat.Matrix) (int, error) {
	s, err := SingularValues(a)
	if err != nil {
		return 0, err
	}
	m, n := a.Dims()
	return countAbove(s, s[0]*float64(max(m, n))*Epsilon), nil
}

// RankTol returns the number of singular values of the given matrix
// that are greater than the given absolute tolerance.
func RankTol(a mat.Matrix, tol float64) (int, error) {
	if tol < 0 || math.IsNaN(tol) {
		return 0, fmt.Errorf("%w: %g", ErrTolerance, tol)
	}
	s, err := SingularValues(a)
	if err != nil {
		return 0, err
	}
	return countAbove(s, tol), nil
}

func countAbove(s []float64, tol float64) int {
	r := 0
	for _, v := range s {
		if v > tol {
			r++
		}
	}
	return r
}
