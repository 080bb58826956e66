// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"
	"math"

	"cogentcore.org/linalg/base/errors"
	"gonum.org/v1/gonum/mat"
)

// CondStatus tags a [CondNumber] value.
type CondStatus int32

const (
	// Finite is a regular, finite condition number.
	Finite CondStatus = iota

	// Singular marks a singular matrix, whose condition number is +Inf.
	Singular

	// NotSquare marks a condition number that is undefined because the norm
	// requires an inverse and the matrix is not square. The value is +Inf.
	NotSquare
)

var condStatusNames = [...]string{"Finite", "Singular", "NotSquare"}

func (s CondStatus) String() string {
	if s < 0 || int(s) >= len(condStatusNames) {
		return fmt.Sprintf("CondStatus(%d)", int(s))
	}
	return condStatusNames[s]
}

// CondNumber is a condition number together with its status.
// Value is +Inf unless Status is [Finite].
type CondNumber struct {
	Value  float64
	Status CondStatus
}

// IsFinite returns whether the condition number is a regular finite value.
func (c CondNumber) IsFinite() bool { return c.Status == Finite }

func (c CondNumber) String() string {
	if c.Status == Finite {
		return fmt.Sprintf("%.4f", c.Value)
	}
	return fmt.Sprintf("+Inf (%s)", c.Status)
}

func infCond(s CondStatus) CondNumber {
	return CondNumber{Value: math.Inf(1), Status: s}
}

// Conditions holds the condition numbers of a matrix for each [NormKind].
type Conditions struct {
	One       CondNumber
	Two       CondNumber
	Frobenius CondNumber
	Inf       CondNumber
}

// Get returns the condition number for the given norm kind,
// and the zero CondNumber for an invalid kind.
func (c *Conditions) Get(kind NormKind) CondNumber {
	switch kind {
	case NormOne:
		return c.One
	case NormTwo:
		return c.Two
	case NormFrobenius:
		return c.Frobenius
	case NormInf:
		return c.Inf
	}
	return CondNumber{}
}

// Cond returns the condition numbers of the given matrix for
// all of the [NormKind] norms. Singular matrices are reported
// with a [Singular] status rather than an error.
func Cond(a mat.Matrix) (Conditions, error) {
	var cs Conditions
	for _, kind := range []NormKind{NormOne, NormTwo, NormFrobenius, NormInf} {
		c, err := CondNorm(a, kind)
		if err != nil {
			return Conditions{}, err
		}
		switch kind {
		case NormOne:
			cs.One = c
		case NormTwo:
			cs.Two = c
		case NormFrobenius:
			cs.Frobenius = c
		case NormInf:
			cs.Inf = c
		}
	}
	return cs, nil
}

// CondNorm returns the condition number of the given matrix for the
// given norm kind. For [NormTwo] it is σmax / σmin, which is defined
// for any shape. The other norms compute ‖A‖ ‖A⁻¹‖ and so require
// a square matrix, reporting [NotSquare] otherwise.
func CondNorm(a mat.Matrix, kind NormKind) (CondNumber, error) {
	const op = "Cond"
	if !kind.IsValid() {
		return CondNumber{}, fmt.Errorf("%w: %v", ErrNormKind, kind)
	}
	m, n, err := dims(op, a)
	if err != nil {
		return CondNumber{}, err
	}
	if err := checkFinite(op, a); err != nil {
		return CondNumber{}, err
	}
	if kind == NormTwo {
		s, err := SingularValues(a)
		if err != nil {
			return CondNumber{}, err
		}
		smin := s[len(s)-1]
		if smin == 0 {
			return infCond(Singular), nil
		}
		return CondNumber{Value: s[0] / smin}, nil
	}
	if m != n {
		return infCond(NotSquare), nil
	}
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		// an ill-conditioned inverse is still used, as long as it is not singular
		var c mat.Condition
		if !errors.As(err, &c) {
			return CondNumber{}, err
		}
		if math.IsInf(float64(c), 1) {
			return infCond(Singular), nil
		}
	}
	an, err := Norm(a, kind)
	if err != nil {
		return CondNumber{}, err
	}
	in, err := Norm(&inv, kind)
	if err != nil {
		return CondNumber{}, err
	}
	v := an * in
	if math.IsInf(v, 1) || math.IsNaN(v) {
		return infCond(Singular), nil
	}
	return CondNumber{Value: v}, nil
}
