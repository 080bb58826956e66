// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command linalg runs linear algebra demonstrations and solves
// problem files describing Gram-Schmidt, QR, SVD, least squares,
// and other dense matrix operations.
package main

import (
	"os"

	"cogentcore.org/linalg/base/logx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logx.PrintlnError(err)
		os.Exit(1)
	}
}
