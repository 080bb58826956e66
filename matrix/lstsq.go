// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LeastSquaresResult is the solution of min ‖A x - b‖₂.
type LeastSquaresResult struct {
	// X is the minimum norm least squares solution.
	X *mat.VecDense

	// Projection is A X, the orthogonal projection of b
	// onto the column space of A.
	Projection *mat.VecDense

	// ResidualNorm is ‖b - A X‖₂.
	ResidualNorm float64

	// Rank is the numerical rank of A used in the solution.
	Rank int

	// SingularValues are the singular values of A, in descending order.
	SingularValues []float64
}

// LeastSquares solves min ‖A x - b‖₂ for x. When A is rank deficient,
// X is the solution of minimum norm. Singular values at or below
// σmax * max(m, n) * [Epsilon] are treated as zero.
func LeastSquares(a mat.Matrix, b mat.Vector) (*LeastSquaresResult, error) {
	x, rank, s, err := lstsq("LeastSquares", a, b)
	if err != nil {
		return nil, err
	}
	res := &LeastSquaresResult{X: x, Rank: rank, SingularValues: s}
	res.Projection, res.ResidualNorm = project(a, x, b)
	return res, nil
}

// lstsq computes the minimum norm least squares solution through
// the thin SVD: x = Σ u_iᵀb / σ_i v_i over singular values above the cutoff.
func lstsq(op string, a mat.Matrix, b mat.Vector) (x *mat.VecDense, rank int, s []float64, err error) {
	m, n, err := dims(op, a)
	if err != nil {
		return nil, 0, nil, err
	}
	if b.Len() != m {
		return nil, 0, nil, shapeErrorf(op, "vector length %d does not match %d rows", b.Len(), m)
	}
	if err := checkFinite(op, a); err != nil {
		return nil, 0, nil, err
	}
	if err := checkFinite(op, b); err != nil {
		return nil, 0, nil, err
	}
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, 0, nil, fmt.Errorf("%w: gonum mat.SVD Factorize", ErrFactorize)
	}
	s = svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	cutoff := s[0] * float64(max(m, n)) * Epsilon
	x = mat.NewVecDense(n, nil)
	for i, sv := range s {
		if sv <= cutoff {
			break
		}
		rank++
		c := mat.Dot(u.ColView(i), b) / sv
		x.AddScaledVec(x, c, v.ColView(i))
	}
	return x, rank, s, nil
}

// project returns A x and ‖b - A x‖₂.
func project(a mat.Matrix, x, b mat.Vector) (*mat.VecDense, float64) {
	var ax, r mat.VecDense
	ax.MulVec(a, x)
	r.SubVec(b, &ax)
	return &ax, mat.Norm(&r, 2)
}
