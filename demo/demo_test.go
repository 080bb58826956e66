// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, name string) string {
	t.Helper()
	d, ok := Lookup(name)
	require.True(t, ok, name)
	var b bytes.Buffer
	require.NoError(t, d.Run(&b), name)
	return b.String()
}

func TestDemos(t *testing.T) {
	assert.Contains(t, run(t, "coefficients"), "Coefficients: [2 3]")
	assert.Contains(t, run(t, "outer-product"), "Rank of the outer product: 1")
	assert.Contains(t, run(t, "gram-schmidt"), "0.9487")
	assert.Contains(t, run(t, "norms"), "Vector norms: 1-norm: 6, 2-norm: 3.74")
	assert.Contains(t, run(t, "norms"), "Matrix norms: 1-norm: 12,")
	assert.Contains(t, run(t, "norms"), "Unit vector: [0.2673 -0.5345 0.8018] (length 3.742, u·u = 1)")
	assert.Contains(t, run(t, "svd"), "Singular values: [16.85 1.068")
	assert.Contains(t, run(t, "qr"), "Projection of v onto range(A): [1 ")
	assert.Contains(t, run(t, "least-squares"), "Least squares solution x: [0.6667 0.5]")
	assert.Contains(t, run(t, "least-squares"), "Residual norm: 0.4082")
	assert.Contains(t, run(t, "cond"), "Norm 1: 32.5000")
}

func TestGramSchmidtIdentity(t *testing.T) {
	out := run(t, "gram-schmidt")
	i := strings.Index(out, "QᵀQ =")
	require.GreaterOrEqual(t, i, 0)
	assert.NotContains(t, out[i:], "-0")
	assert.NotContains(t, out[i:], "e-")
}

func TestLookup(t *testing.T) {
	_, ok := Lookup("nonexistent")
	assert.False(t, ok)
	for _, d := range All {
		got, ok := Lookup(d.Name)
		assert.True(t, ok)
		assert.Equal(t, d.Name, got.Name)
	}
}

func TestRunAll(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, RunAll(&b))
	for _, d := range All {
		assert.Contains(t, b.String(), "== "+d.Name+": ")
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 1.0, roundTo(0.99999999999, 6))
	assert.Equal(t, 0.0, roundTo(-1e-17, 6))
	assert.Equal(t, 0.123457, roundTo(0.1234567, 6))
}
