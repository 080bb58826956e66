// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// Coefficients returns the coefficients c expressing the given vector v
// as a linear combination of the columns of a, A c ≈ v, in the least
// squares sense, together with the residual norm ‖A c - v‖₂.
// The residual is (numerically) zero exactly when v lies in the column
// space of a. For dependent columns c is the minimum norm solution.
func Coefficients(a mat.Matrix, v mat.Vector) (c *mat.VecDense, resid float64, err error) {
	c, _, _, err = lstsq("Coefficients", a, v)
	if err != nil {
		return nil, 0, err
	}
	_, resid = project(a, c, v)
	return c, resid, nil
}
