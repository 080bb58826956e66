// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import "gonum.org/v1/gonum/floats/scalar"

// roundTo rounds v to the given number of decimals, mapping -0 to 0.
func roundTo(v float64, decimals int) float64 {
	r := scalar.Round(v, decimals)
	if r == 0 {
		return 0
	}
	return r
}
