// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"cogentcore.org/linalg/base/iox/jsonx"
	"cogentcore.org/linalg/base/iox/tomlx"
	"cogentcore.org/linalg/base/iox/yamlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name   string      `toml:"name" yaml:"name" json:"name"`
	Rows   [][]float64 `toml:"rows" yaml:"rows" json:"rows"`
	Weight float64     `toml:"weight" yaml:"weight" json:"weight"`
}

func sample() *record {
	return &record{Name: "basis", Rows: [][]float64{{3, 2}, {1, 2}}, Weight: 0.5}
}

func TestTOMLRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "rec.toml")
	require.NoError(t, tomlx.Save(sample(), fn))
	got := &record{}
	require.NoError(t, tomlx.Open(got, fn))
	assert.Equal(t, sample(), got)
}

func TestYAMLRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "rec.yaml")
	require.NoError(t, yamlx.Save(sample(), fn))
	got := &record{}
	require.NoError(t, yamlx.Open(got, fn))
	assert.Equal(t, sample(), got)
}

func TestJSONRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "rec.json")
	require.NoError(t, jsonx.Save(sample(), fn))
	got := &record{}
	require.NoError(t, jsonx.Open(got, fn))
	assert.Equal(t, sample(), got)
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{
		"a.toml": {Data: []byte("name = \"basis\"\nrows = [[3.0, 2.0], [1.0, 2.0]]\nweight = 0.5\n")},
		"a.yaml": {Data: []byte("name: basis\nrows: [[3, 2], [1, 2]]\nweight: 0.5\n")},
		"a.json": {Data: []byte(`{"name": "basis", "rows": [[3, 2], [1, 2]], "weight": 0.5}`)},
	}
	opens := map[string]func(v any, name string) error{
		"a.toml": func(v any, name string) error { return tomlx.OpenFS(v, fsys, name) },
		"a.yaml": func(v any, name string) error { return yamlx.OpenFS(v, fsys, name) },
		"a.json": func(v any, name string) error { return jsonx.OpenFS(v, fsys, name) },
	}
	for name, open := range opens {
		got := &record{}
		require.NoError(t, open(got, name), name)
		assert.Equal(t, sample(), got, name)
	}
	assert.Error(t, tomlx.OpenFS(&record{}, fsys, "missing.toml"))
}

func TestOpenMissing(t *testing.T) {
	err := tomlx.Open(&record{}, filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
