// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package matrix provides dense real matrix routines built on
[gonum.org/v1/gonum/mat]: an orthonormal basis via the classical
Gram-Schmidt process, SVD, QR, minimum-norm least squares,
numerical rank, induced norms, and condition numbers.

All functions are pure: inputs are never modified, results are newly
allocated, and there is no package level state, so they are safe to call
concurrently. Shapes are validated before any numeric work, and a
mismatch is reported as an error matching [ErrShape] rather than
a gonum panic.

[GramSchmidt] reports linearly dependent (or zero) columns as an
error matching [ErrDependent] instead of returning a reduced basis.
*/
package matrix
