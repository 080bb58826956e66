// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NormKind is a kind of matrix norm.
type NormKind int32

const (
	// NormOne is the induced 1-norm, the maximum absolute column sum.
	NormOne NormKind = iota

	// NormTwo is the induced 2-norm (spectral norm), the largest singular value.
	NormTwo

	// NormFrobenius is the square root of the sum of squared elements.
	NormFrobenius

	// NormInf is the induced ∞-norm, the maximum absolute row sum.
	NormInf
)

var normKindNames = [...]string{"1", "2", "fro", "inf"}

// IsValid returns whether k is one of the defined norm kinds.
func (k NormKind) IsValid() bool {
	return k >= NormOne && k <= NormInf
}

// String returns the conventional short name of the norm: 1, 2, fro, or inf.
func (k NormKind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("NormKind(%d)", int(k))
	}
	return normKindNames[k]
}

// Norms holds the induced 1, 2, and ∞ norms of a matrix.
type Norms struct {
	One float64
	Two float64
	Inf float64
}

func (n Norms) String() string {
	return fmt.Sprintf("1-norm: %g, 2-norm: %g, inf-norm: %g", n.One, n.Two, n.Inf)
}

// NormsOf returns the induced 1, 2, and ∞ norms of the given matrix.
func NormsOf(a mat.Matrix) (Norms, error) {
	two, err := Norm(a, NormTwo)
	if err != nil {
		return Norms{}, err
	}
	return Norms{One: mat.Norm(a, 1), Two: two, Inf: mat.Norm(a, math.Inf(1))}, nil
}

// Norm returns the given kind of norm of the given matrix.
// Note that gonum's mat.Norm(a, 2) is the Frobenius norm, whereas
// [NormTwo] here is the spectral norm.
func Norm(a mat.Matrix, kind NormKind) (float64, error) {
	const op = "Norm"
	if _, _, err := dims(op, a); err != nil {
		return 0, err
	}
	switch kind {
	case NormOne:
		return mat.Norm(a, 1), nil
	case NormTwo:
		s, err := SingularValues(a)
		if err != nil {
			return 0, err
		}
		return s[0], nil
	case NormFrobenius:
		return mat.Norm(a, 2), nil
	case NormInf:
		return mat.Norm(a, math.Inf(1)), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrNormKind, kind)
}

// Frobenius returns the Frobenius norm of the given matrix,
// which is 0 for an empty matrix.
func Frobenius(a mat.Matrix) float64 {
	if m, n := a.Dims(); m == 0 || n == 0 {
		return 0
	}
	return mat.Norm(a, 2)
}
