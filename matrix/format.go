// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// String returns an aligned multi-line representation of the given matrix,
// with 4 significant digits per element. Every line starts with prefix.
func String(a mat.Matrix, prefix string) string {
	return fmt.Sprintf("%s%.4g", prefix, mat.Formatted(a, mat.Prefix(prefix), mat.Squeeze()))
}

// VecString returns a single line representation of the given vector,
// with 4 significant digits per element, such as [0.6667 0.5].
func VecString(v mat.Vector) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range v.Len() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.4g", v.AtVec(i))
	}
	b.WriteByte(']')
	return b.String()
}
