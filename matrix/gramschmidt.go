// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultTolerance is the relative tolerance used by [GramSchmidt]:
// a column whose residual norm is at most DefaultTolerance times its
// original norm is treated as linearly dependent.
const DefaultTolerance = 1e-12

// GramSchmidt returns an m x n matrix Q whose columns are an orthonormal
// basis for the columns of the given m x n matrix v, computed with the
// classical Gram-Schmidt process using [DefaultTolerance].
// For every k, the first k columns of Q span the same subspace as
// the first k columns of v.
// If any column is linearly dependent on the preceding ones (or is zero),
// no basis is returned and the error is a [*DependencyError].
// It is an [ErrShape] error for v to have more columns than rows.
func GramSchmidt(v mat.Matrix) (*mat.Dense, error) {
	return GramSchmidtTol(v, DefaultTolerance)
}

// GramSchmidtTol is [GramSchmidt] with the given relative dependency
// tolerance. Column i is dependent when its residual norm r satisfies
// r == 0 or r <= tol * ‖v_i‖. A tol of 0 only rejects exactly zero residuals.
func GramSchmidtTol(v mat.Matrix, tol float64) (*mat.Dense, error) {
	const op = "GramSchmidt"
	m, n, err := dims(op, v)
	if err != nil {
		return nil, err
	}
	if n > m {
		return nil, shapeErrorf(op, "%d columns exceed vector length %d", n, m)
	}
	if tol < 0 || math.IsNaN(tol) {
		return nil, fmt.Errorf("%w: %g", ErrTolerance, tol)
	}
	if err := checkFinite(op, v); err != nil {
		return nil, err
	}

	basis := make([][]float64, 0, n)
	for i := range n {
		qi := mat.Col(nil, i, v)
		scale := floats.Norm(qi, 2)
		// projections are removed from the updated qi, in order
		for _, qj := range basis {
			p := floats.Dot(qj, qi)
			for k, x := range qj {
				qi[k] -= float64(p * x) // explicit conversion prevents a fused multiply-add
			}
		}
		r := floats.Norm(qi, 2)
		if r == 0 || r <= tol*scale {
			return nil, &DependencyError{Column: i, Residual: r}
		}
		for k := range qi {
			qi[k] /= r
		}
		basis = append(basis, qi)
	}

	q := mat.NewDense(m, n, nil)
	for j, col := range basis {
		q.SetCol(j, col)
	}
	return q, nil
}

// OrthonormalityError returns the Frobenius norm of QᵀQ - I for the
// given matrix q, which is zero for exactly orthonormal columns.
func OrthonormalityError(q mat.Matrix) float64 {
	_, n := q.Dims()
	var g mat.Dense
	g.Mul(q.T(), q)
	for i := range n {
		g.Set(i, i, g.At(i, i)-1)
	}
	return mat.Norm(&g, 2)
}
