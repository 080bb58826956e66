// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// OuterProduct returns the m x n outer product u vᵀ of the given
// vectors, and its numerical rank (see [Rank]), which is 1 unless
// either vector is zero, in which case it is 0.
func OuterProduct(u, v mat.Vector) (a *mat.Dense, rank int, err error) {
	const op = "OuterProduct"
	m, err := vecLen(op, u)
	if err != nil {
		return nil, 0, err
	}
	n, err := vecLen(op, v)
	if err != nil {
		return nil, 0, err
	}
	a = mat.NewDense(m, n, nil)
	a.Outer(1, u, v)
	rank, err = Rank(a)
	if err != nil {
		return nil, 0, err
	}
	return a, rank, nil
}
