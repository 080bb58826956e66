// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SVDResult is a full singular value decomposition A = U Σ Vᵀ
// of an m x n matrix A.
type SVDResult struct {
	// U is the m x m orthogonal matrix of left singular vectors, in columns.
	U *mat.Dense

	// Values are the min(m, n) singular values, in descending order.
	Values []float64

	// VT is the n x n orthogonal matrix of right singular vectors, in rows.
	VT *mat.Dense
}

// SVD returns the full singular value decomposition of the given matrix.
func SVD(a mat.Matrix) (*SVDResult, error) {
	const op = "SVD"
	if _, _, err := dims(op, a); err != nil {
		return nil, err
	}
	if err := checkFinite(op, a); err != nil {
		return nil, err
	}
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return nil, fmt.Errorf("%w: gonum mat.SVD Factorize", ErrFactorize)
	}
	res := &SVDResult{U: &mat.Dense{}, Values: svd.Values(nil)}
	svd.UTo(res.U)
	var v mat.Dense
	svd.VTo(&v)
	res.VT = mat.DenseCopyOf(v.T())
	return res, nil
}

// Sigma returns the m x n matrix with the singular values on its diagonal.
func (r *SVDResult) Sigma() *mat.Dense {
	m, _ := r.U.Dims()
	n, _ := r.VT.Dims()
	sigma := mat.NewDense(m, n, nil)
	for i, s := range r.Values {
		sigma.Set(i, i, s)
	}
	return sigma
}

// Reconstruct returns U Σ Vᵀ, which equals the factorized matrix
// to within floating point precision.
func (r *SVDResult) Reconstruct() *mat.Dense {
	var a mat.Dense
	a.Product(r.U, r.Sigma(), r.VT)
	return &a
}

// SingularValues returns the min(m, n) singular values of the given
// matrix in descending order, without computing singular vectors.
func SingularValues(a mat.Matrix) ([]float64, error) {
	const op = "SingularValues"
	if _, _, err := dims(op, a); err != nil {
		return nil, err
	}
	if err := checkFinite(op, a); err != nil {
		return nil, err
	}
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return nil, fmt.Errorf("%w: gonum mat.SVD Factorize", ErrFactorize)
	}
	return svd.Values(nil), nil
}
