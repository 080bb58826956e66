// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import (
	"embed"
	"io/fs"

	"cogentcore.org/linalg/base/errors"
)

//go:embed samples
var samplesFS embed.FS

// Samples contains a sample problem file for each [Op].
var Samples = errors.Must1(fs.Sub(samplesFS, "samples"))

// SampleNames returns the file names in [Samples], in sorted order.
func SampleNames() []string {
	return errors.Must1(fs.Glob(Samples, "*"))
}
