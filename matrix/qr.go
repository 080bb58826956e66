// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// QR returns the reduced QR factorization A = Q R of the given m x n
// matrix, with m >= n: Q is m x n with orthonormal columns and R is
// n x n upper triangular. It is an [ErrShape] error for n to exceed m.
// Unlike [GramSchmidt], the factorization is Householder based and
// succeeds for rank deficient matrices, which have zeros on the
// diagonal of R.
func QR(a mat.Matrix) (q, r *mat.Dense, err error) {
	const op = "QR"
	m, n, err := dims(op, a)
	if err != nil {
		return nil, nil, err
	}
	if n > m {
		return nil, nil, shapeErrorf(op, "%d columns exceed %d rows", n, m)
	}
	if err := checkFinite(op, a); err != nil {
		return nil, nil, err
	}
	var qr mat.QR
	qr.Factorize(a)
	var qf, rf mat.Dense
	qr.QTo(&qf)
	qr.RTo(&rf)
	q = mat.DenseCopyOf(qf.Slice(0, m, 0, n))
	r = mat.DenseCopyOf(rf.Slice(0, n, 0, n))
	return q, r, nil
}

// ProjectOntoRange returns the orthogonal projection Q Qᵀ v of the given
// vector onto the column space of the given matrix, using [QR].
// The columns of a must be linearly independent for Q to span its range.
func ProjectOntoRange(a mat.Matrix, v mat.Vector) (*mat.VecDense, error) {
	const op = "ProjectOntoRange"
	m, _, err := dims(op, a)
	if err != nil {
		return nil, err
	}
	if v.Len() != m {
		return nil, shapeErrorf(op, "vector length %d does not match %d rows", v.Len(), m)
	}
	q, _, err := QR(a)
	if err != nil {
		return nil, err
	}
	var coef, proj mat.VecDense
	coef.MulVec(q.T(), v)
	proj.MulVec(q, &coef)
	return &proj, nil
}
