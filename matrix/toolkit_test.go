// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCoefficients(t *testing.T) {
	a := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
	})
	c, resid, err := Coefficients(a, mat.NewVecDense(3, []float64{2, 3, 5}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3}, c.RawVector().Data, tol)
	assert.InDelta(t, 0, resid, tol)

	// not in the column space
	_, resid, err = Coefficients(a, mat.NewVecDense(3, []float64{1, 0, 0}))
	require.NoError(t, err)
	assert.Greater(t, resid, 0.1)

	_, _, err = Coefficients(a, mat.NewVecDense(2, []float64{1, 2}))
	assert.ErrorIs(t, err, ErrShape)
}

func TestOuterProduct(t *testing.T) {
	a, rank, err := OuterProduct(mat.NewVecDense(3, []float64{1, 2, 3}), mat.NewVecDense(2, []float64{4, 5}))
	require.NoError(t, err)
	assert.Equal(t, []float64{
		4, 5,
		8, 10,
		12, 15,
	}, a.RawMatrix().Data)
	assert.Equal(t, 1, rank)

	_, rank, err = OuterProduct(mat.NewVecDense(3, []float64{1, 2, 3}), mat.NewVecDense(2, nil))
	require.NoError(t, err)
	assert.Equal(t, 0, rank)

	_, _, err = OuterProduct(&mat.VecDense{}, mat.NewVecDense(2, []float64{4, 5}))
	assert.ErrorIs(t, err, ErrShape)
}

func TestNorms(t *testing.T) {
	a := mat.NewDense(3, 2, []float64{
		1, 2,
		-3, 4,
		5, -6,
	})
	n, err := NormsOf(a)
	require.NoError(t, err)
	assert.Equal(t, 12.0, n.One)
	assert.Equal(t, 11.0, n.Inf)
	s, err := SingularValues(a)
	require.NoError(t, err)
	assert.Equal(t, s[0], n.Two)

	// ‖A‖₂ <= ‖A‖F <= sqrt(rank) ‖A‖₂
	fro := Frobenius(a)
	assert.InDelta(t, math.Sqrt(91), fro, 1e-12)
	assert.LessOrEqual(t, n.Two, fro)
	assert.LessOrEqual(t, fro, math.Sqrt(2)*n.Two+1e-12)

	f, err := Norm(a, NormFrobenius)
	require.NoError(t, err)
	assert.Equal(t, fro, f)

	_, err = Norm(a, NormKind(9))
	assert.ErrorIs(t, err, ErrNormKind)
	assert.False(t, NormKind(-1).IsValid())
	assert.Equal(t, "NormKind(9)", NormKind(9).String())
	assert.Equal(t, 0.0, Frobenius(&mat.Dense{}))
	assert.Equal(t, "fro", NormFrobenius.String())
}

func TestSVD(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	for _, a := range []*mat.Dense{
		mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}),
		randomDense(r, 4, 2),
		randomDense(r, 2, 5),
	} {
		m, n := a.Dims()
		res, err := SVD(a)
		require.NoError(t, err)
		ur, uc := res.U.Dims()
		assert.Equal(t, m, ur)
		assert.Equal(t, m, uc)
		vr, vc := res.VT.Dims()
		assert.Equal(t, n, vr)
		assert.Equal(t, n, vc)
		assert.Len(t, res.Values, min(m, n))
		for i := 1; i < len(res.Values); i++ {
			assert.GreaterOrEqual(t, res.Values[i-1], res.Values[i])
		}
		assert.Less(t, OrthonormalityError(res.U), tol)
		assert.Less(t, OrthonormalityError(res.VT), tol)
		assert.True(t, mat.EqualApprox(a, res.Reconstruct(), tol))
	}

	_, err := SVD(&mat.Dense{})
	assert.ErrorIs(t, err, ErrShape)
}

func TestQR(t *testing.T) {
	a := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	})
	q, r, err := QR(a)
	require.NoError(t, err)
	assert.Less(t, OrthonormalityError(q), tol)
	for i := range 3 {
		for j := range i {
			assert.Equal(t, 0.0, r.At(i, j))
		}
	}
	var qr mat.Dense
	qr.Mul(q, r)
	assert.True(t, mat.EqualApprox(a, &qr, tol))

	tall := randomDense(rand.New(rand.NewPCG(11, 12)), 5, 2)
	q, r, err = QR(tall)
	require.NoError(t, err)
	qm, qn := q.Dims()
	assert.Equal(t, [2]int{5, 2}, [2]int{qm, qn})
	rm, rn := r.Dims()
	assert.Equal(t, [2]int{2, 2}, [2]int{rm, rn})
	qr.Reset()
	qr.Mul(q, r)
	assert.True(t, mat.EqualApprox(tall, &qr, tol))

	_, _, err = QR(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, ErrShape)
}

func TestProjectOntoRange(t *testing.T) {
	a := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		0, 0,
	})
	p, err := ProjectOntoRange(a, mat.NewVecDense(3, []float64{1, 2, 3}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 0}, p.RawVector().Data, tol)

	full := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 10})
	p, err = ProjectOntoRange(full, mat.NewVecDense(3, []float64{1, 0, 0}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0, 0}, p.RawVector().Data, tol)

	_, err = ProjectOntoRange(a, mat.NewVecDense(2, nil))
	assert.ErrorIs(t, err, ErrShape)
}

func TestLeastSquares(t *testing.T) {
	a := mat.NewDense(3, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
	})
	res, err := LeastSquares(a, mat.NewVecDense(3, []float64{1, 2, 2}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.0 / 3, 0.5}, res.X.RawVector().Data, tol)
	assert.InDeltaSlice(t, []float64{7.0 / 6, 5.0 / 3, 13.0 / 6}, res.Projection.RawVector().Data, tol)
	assert.InDelta(t, math.Sqrt(1.0/6), res.ResidualNorm, tol)
	assert.InDelta(t, 0.4082, res.ResidualNorm, 1e-4)
	assert.Equal(t, 2, res.Rank)
	assert.Len(t, res.SingularValues, 2)

	_, err = LeastSquares(a, mat.NewVecDense(2, []float64{1, 2}))
	assert.ErrorIs(t, err, ErrShape)
	_, err = LeastSquares(a, mat.NewVecDense(3, []float64{1, math.NaN(), 2}))
	assert.ErrorIs(t, err, ErrNotFinite)
}

func TestLeastSquaresMinimumNorm(t *testing.T) {
	// rank deficient: every x with x0 + x1 = 2 fits exactly
	a := mat.NewDense(2, 2, []float64{
		1, 1,
		1, 1,
	})
	res, err := LeastSquares(a, mat.NewVecDense(2, []float64{2, 2}))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rank)
	assert.InDeltaSlice(t, []float64{1, 1}, res.X.RawVector().Data, tol)
	assert.InDelta(t, 0, res.ResidualNorm, tol)

	// underdetermined
	wide := mat.NewDense(1, 2, []float64{3, 4})
	res, err = LeastSquares(wide, mat.NewVecDense(1, []float64{25}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 4}, res.X.RawVector().Data, tol)

	// zero matrix
	res, err = LeastSquares(mat.NewDense(2, 2, nil), mat.NewVecDense(2, []float64{1, 1}))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Rank)
	assert.Equal(t, []float64{0, 0}, res.X.RawVector().Data)
	assert.InDelta(t, math.Sqrt2, res.ResidualNorm, tol)
}

func TestRank(t *testing.T) {
	rk, err := Rank(mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}))
	require.NoError(t, err)
	assert.Equal(t, 2, rk)

	rk, err = Rank(mat.NewDense(2, 3, nil))
	require.NoError(t, err)
	assert.Equal(t, 0, rk)

	rk, err = RankTol(mat.NewDense(2, 2, []float64{1, 0, 0, 1e-6}), 1e-3)
	require.NoError(t, err)
	assert.Equal(t, 1, rk)

	_, err = RankTol(mat.NewDense(1, 1, []float64{1}), -1)
	assert.ErrorIs(t, err, ErrTolerance)
}
