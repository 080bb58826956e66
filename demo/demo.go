// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo provides small demonstrations of each linalg
// operation on fixed example data, printing inputs and results.
package demo

import (
	"fmt"
	"io"
	"slices"

	"cogentcore.org/linalg/matrix"
	"cogentcore.org/linalg/vector"
	"gonum.org/v1/gonum/mat"
)

// Demo is a named demonstration.
type Demo struct {
	Name string
	Doc  string
	Run  func(w io.Writer) error
}

// All are the demonstrations, in order from basic to advanced.
var All = []Demo{
	{"coefficients", "express a vector in terms of the columns of a matrix", Coefficients},
	{"outer-product", "outer product of two vectors and its rank", OuterProduct},
	{"gram-schmidt", "orthonormal basis by classical Gram-Schmidt", GramSchmidt},
	{"norms", "vector and matrix 1, 2, and ∞ norms", Norms},
	{"svd", "singular value decomposition and reconstruction", SVD},
	{"qr", "QR factorization and projection onto the range", QR},
	{"least-squares", "least squares fit of an overdetermined system", LeastSquares},
	{"cond", "condition numbers under each norm", Cond},
}

// Lookup returns the demo with the given name.
func Lookup(name string) (Demo, bool) {
	i := slices.IndexFunc(All, func(d Demo) bool { return d.Name == name })
	if i < 0 {
		return Demo{}, false
	}
	return All[i], true
}

func printMatrix(w io.Writer, name string, a mat.Matrix) {
	fmt.Fprintf(w, "%s =\n%s\n", name, matrix.String(a, "  "))
}

// Coefficients expresses v = [2 3 5] in the columns of a 3x2 matrix.
func Coefficients(w io.Writer) error {
	a := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
	})
	v := mat.NewVecDense(3, []float64{2, 3, 5})
	c, resid, err := matrix.Coefficients(a, v)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Coefficients:", matrix.VecString(c))
	fmt.Fprintf(w, "Residual norm: %.4g\n", resid)
	return nil
}

// OuterProduct computes the outer product of [1 2 3] and [4 5].
func OuterProduct(w io.Writer) error {
	u := mat.NewVecDense(3, []float64{1, 2, 3})
	v := mat.NewVecDense(2, []float64{4, 5})
	a, rank, err := matrix.OuterProduct(u, v)
	if err != nil {
		return err
	}
	printMatrix(w, "Outer product matrix", a)
	fmt.Fprintln(w, "Rank of the outer product:", rank)
	return nil
}

// GramSchmidt orthonormalizes the columns of [[3 2] [1 2]].
func GramSchmidt(w io.Writer) error {
	v := mat.NewDense(2, 2, []float64{
		3, 2,
		1, 2,
	})
	q, err := matrix.GramSchmidt(v)
	if err != nil {
		return err
	}
	printMatrix(w, "Orthonormal basis", q)
	var qtq mat.Dense
	qtq.Mul(q.T(), q)
	qtq.Apply(func(i, j int, v float64) float64 {
		return roundTo(v, 6)
	}, &qtq)
	printMatrix(w, "QᵀQ", &qtq)
	return nil
}

// Norms prints the norms of [1 -2 3], its unit vector, and the norms of a 3x2 matrix.
func Norms(w io.Writer) error {
	x := []float64{1, -2, 3}
	a := mat.NewDense(3, 2, []float64{
		1, 2,
		-3, 4,
		5, -6,
	})
	mn, err := matrix.NormsOf(a)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Vector norms:", vector.NormsOf(x))
	u, n := vector.Normalize(x)
	uu, err := vector.Dot(u, u)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Unit vector: %.4g (length %.4g, u·u = %.4g)\n", u, n, uu)
	fmt.Fprintln(w, "Matrix norms:", mn)
	return nil
}

// SVD decomposes the rank 2 matrix [[1 2 3] [4 5 6] [7 8 9]].
func SVD(w io.Writer) error {
	a := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	res, err := matrix.SVD(a)
	if err != nil {
		return err
	}
	printMatrix(w, "U", res.U)
	fmt.Fprintf(w, "Singular values: %.4g\n", res.Values)
	printMatrix(w, "Vᵀ", res.VT)
	printMatrix(w, "Reconstruction", res.Reconstruct())
	return nil
}

// QR factorizes a 3x3 matrix and projects [1 0 0] onto its range.
func QR(w io.Writer) error {
	a := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	})
	q, r, err := matrix.QR(a)
	if err != nil {
		return err
	}
	printMatrix(w, "Q", q)
	printMatrix(w, "R", r)
	var qr mat.Dense
	qr.Mul(q, r)
	printMatrix(w, "Reconstruction", &qr)
	p, err := matrix.ProjectOntoRange(a, mat.NewVecDense(3, []float64{1, 0, 0}))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Projection of v onto range(A):", matrix.VecString(p))
	return nil
}

// LeastSquares fits a line through (1, 1), (2, 2), and (3, 2).
func LeastSquares(w io.Writer) error {
	a := mat.NewDense(3, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
	})
	b := mat.NewVecDense(3, []float64{1, 2, 2})
	res, err := matrix.LeastSquares(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Least squares solution x:", matrix.VecString(res.X))
	fmt.Fprintln(w, "Orthogonal projection of b:", matrix.VecString(res.Projection))
	fmt.Fprintf(w, "Residual norm: %.4g\n", res.ResidualNorm)
	return nil
}

// Cond prints the condition numbers of [[1 2] [3 4.5]].
func Cond(w io.Writer) error {
	a := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4.5,
	})
	cs, err := matrix.Cond(a)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Condition numbers for A:")
	for _, k := range []matrix.NormKind{matrix.NormOne, matrix.NormTwo, matrix.NormFrobenius, matrix.NormInf} {
		fmt.Fprintf(w, "Norm %s: %s\n", k, cs.Get(k))
	}
	return nil
}

// RunAll runs all of the demos in order, separated by headers.
func RunAll(w io.Writer) error {
	for i, d := range All {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s: %s\n", d.Name, d.Doc)
		if err := d.Run(w); err != nil {
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}
	}
	return nil
}
