// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"runtime"

	"cogentcore.org/linalg/base/errors"
	"cogentcore.org/linalg/matrix"
	"cogentcore.org/linalg/vector"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Solution holds the results of solving a [Problem]. Only the
// fields produced by the problem's operation are set.
type Solution struct {
	Name string
	Op   Op

	// Basis is the orthonormal basis from gram-schmidt.
	Basis *mat.Dense

	// Q and R are the factors from qr.
	Q, R *mat.Dense

	SVD          *matrix.SVDResult
	LeastSquares *matrix.LeastSquaresResult

	// Coefficients and Residual are the results of coefficients.
	Coefficients *mat.VecDense
	Residual     float64

	// Outer is the outer-product matrix, and Rank is its rank
	// or the rank of A for the rank operation.
	Outer *mat.Dense
	Rank  int

	MatrixNorms *matrix.Norms
	VectorNorms *vector.Norms
	Conditions  *matrix.Conditions

	// Warnings are the inputs of the problem that the operation ignored.
	Warnings []string
}

// Solve performs the problem's operation.
func (p *Problem) Solve() (*Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("solving problem", "name", p.Name, "op", p.Op)
	s := &Solution{Name: p.Name, Op: p.Op, Warnings: p.Warnings()}
	a := p.Matrix()
	var err error
	switch p.Op {
	case GramSchmidt:
		tol := matrix.DefaultTolerance
		if p.Tolerance != nil {
			tol = *p.Tolerance
		}
		s.Basis, err = matrix.GramSchmidtTol(a, tol)
	case QR:
		s.Q, s.R, err = matrix.QR(a)
	case SVD:
		s.SVD, err = matrix.SVD(a)
	case LeastSquares:
		s.LeastSquares, err = matrix.LeastSquares(a, mat.NewVecDense(len(p.B), p.B))
	case Coefficients:
		s.Coefficients, s.Residual, err = matrix.Coefficients(a, mat.NewVecDense(len(p.B), p.B))
	case OuterProduct:
		s.Outer, s.Rank, err = matrix.OuterProduct(mat.NewVecDense(len(p.U), p.U), mat.NewVecDense(len(p.V), p.V))
	case Norms:
		if len(p.B) > 0 {
			vn := vector.NormsOf(p.B)
			s.VectorNorms = &vn
		}
		if a != nil {
			var mn matrix.Norms
			mn, err = matrix.NormsOf(a)
			s.MatrixNorms = &mn
		}
	case Cond:
		var cs matrix.Conditions
		cs, err = matrix.Cond(a)
		s.Conditions = &cs
	case Rank:
		if p.Tolerance != nil {
			s.Rank, err = matrix.RankTol(a, *p.Tolerance)
		} else {
			s.Rank, err = matrix.Rank(a)
		}
	}
	if err != nil {
		return nil, errors.Log(fmt.Errorf("problem %q (%s): %w", p.Name, p.Op, err))
	}
	return s, nil
}

// WriteTo writes a readable report of the solution to w.
func (s *Solution) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s (%s)\n", s.Name, s.Op)
	mtx := func(name string, a mat.Matrix) {
		fmt.Fprintf(&b, "  %s =\n%s\n", name, matrix.String(a, "    "))
	}
	switch s.Op {
	case GramSchmidt:
		mtx("Q", s.Basis)
		fmt.Fprintf(&b, "  ‖QᵀQ - I‖ = %.3g\n", matrix.OrthonormalityError(s.Basis))
	case QR:
		mtx("Q", s.Q)
		mtx("R", s.R)
	case SVD:
		mtx("U", s.SVD.U)
		fmt.Fprintf(&b, "  singular values = %.4g\n", s.SVD.Values)
		mtx("Vᵀ", s.SVD.VT)
	case LeastSquares:
		ls := s.LeastSquares
		fmt.Fprintf(&b, "  x = %s\n  projection = %s\n  residual norm = %.4g\n  rank = %d\n",
			matrix.VecString(ls.X), matrix.VecString(ls.Projection), ls.ResidualNorm, ls.Rank)
	case Coefficients:
		fmt.Fprintf(&b, "  coefficients = %s\n  residual norm = %.4g\n", matrix.VecString(s.Coefficients), s.Residual)
	case OuterProduct:
		mtx("A", s.Outer)
		fmt.Fprintf(&b, "  rank = %d\n", s.Rank)
	case Norms:
		if s.VectorNorms != nil {
			fmt.Fprintf(&b, "  vector %s\n", s.VectorNorms)
		}
		if s.MatrixNorms != nil {
			fmt.Fprintf(&b, "  matrix %s\n", s.MatrixNorms)
		}
	case Cond:
		cs := s.Conditions
		for _, k := range []matrix.NormKind{matrix.NormOne, matrix.NormTwo, matrix.NormFrobenius, matrix.NormInf} {
			fmt.Fprintf(&b, "  norm %s: %s\n", k, cs.Get(k))
		}
	case Rank:
		fmt.Fprintf(&b, "  rank = %d\n", s.Rank)
	}
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

// SolveFiles opens and solves the given problem files concurrently,
// returning the solutions in the order of the files. It stops at the
// first error, which names the file.
func SolveFiles(ctx context.Context, files ...string) ([]*Solution, error) {
	return solveAll(ctx, files, Open)
}

// SolveFS is [SolveFiles] for files in the given file system,
// such as [Samples].
func SolveFS(ctx context.Context, fsys fs.FS, files ...string) ([]*Solution, error) {
	return solveAll(ctx, files, func(fn string) (*Problem, error) {
		return OpenFS(fsys, fn)
	})
}

func solveAll(ctx context.Context, files []string, open func(fn string) (*Problem, error)) ([]*Solution, error) {
	sols := make([]*Solution, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, fn := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := open(fn)
			if err != nil {
				return err
			}
			s, err := p.Solve()
			if err != nil {
				return fmt.Errorf("%s: %w", fn, err)
			}
			sols[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slog.Debug("solved problems", "count", len(files))
	return sols, nil
}
