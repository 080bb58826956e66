// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package problem defines linear algebra problem files, which name
// one toolkit operation together with its input matrix and vectors,
// and solves them, individually or concurrently in batches.
// Problem files can be TOML, YAML, or JSON, selected by file extension.
package problem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/linalg/base/errors"
	"cogentcore.org/linalg/base/iox/jsonx"
	"cogentcore.org/linalg/base/iox/tomlx"
	"cogentcore.org/linalg/base/iox/yamlx"
	"gonum.org/v1/gonum/mat"
)

// Op is the name of a toolkit operation.
type Op string

const (
	// GramSchmidt computes an orthonormal basis for the columns of A.
	GramSchmidt Op = "gram-schmidt"

	// QR computes the reduced QR factorization of A.
	QR Op = "qr"

	// SVD computes the full singular value decomposition of A.
	SVD Op = "svd"

	// LeastSquares solves min ‖A x - b‖₂.
	LeastSquares Op = "least-squares"

	// Coefficients expresses b in terms of the columns of A.
	Coefficients Op = "coefficients"

	// OuterProduct computes u vᵀ and its rank.
	OuterProduct Op = "outer-product"

	// Norms computes the norms of the vector b and of the matrix A.
	Norms Op = "norms"

	// Cond computes the condition numbers of A for each norm.
	Cond Op = "cond"

	// Rank computes the numerical rank of A.
	Rank Op = "rank"
)

// Ops are all of the supported operations.
var Ops = []Op{GramSchmidt, QR, SVD, LeastSquares, Coefficients, OuterProduct, Norms, Cond, Rank}

// Problem is one operation applied to the given inputs.
type Problem struct {

	// Name identifies the problem in output. It defaults to
	// the file name without extension.
	Name string `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`

	// Op is the operation to perform.
	Op Op `toml:"op" yaml:"op" json:"op"`

	// A is the input matrix, as a list of rows.
	A [][]float64 `toml:"a,omitempty" yaml:"a,omitempty" json:"a,omitempty"`

	// B is the right hand side for least-squares, the target vector
	// for coefficients, or the vector for norms.
	B []float64 `toml:"b,omitempty" yaml:"b,omitempty" json:"b,omitempty"`

	// U and V are the vectors of an outer-product.
	U []float64 `toml:"u,omitempty" yaml:"u,omitempty" json:"u,omitempty"`
	V []float64 `toml:"v,omitempty" yaml:"v,omitempty" json:"v,omitempty"`

	// Tolerance is the relative dependency tolerance for gram-schmidt,
	// or the absolute singular value tolerance for rank.
	// When unset, the package defaults are used.
	Tolerance *float64 `toml:"tolerance,omitempty" yaml:"tolerance,omitempty" json:"tolerance,omitempty"`
}

// needs returns which inputs the given operation requires.
func (op Op) needs() (a, b, uv bool) {
	switch op {
	case LeastSquares, Coefficients:
		return true, true, false
	case OuterProduct:
		return false, false, true
	case Norms:
		return false, false, false
	default:
		return true, false, false
	}
}

// Validate returns an error if the operation is unknown, a required input
// is missing, or the rows of A have different lengths.
func (p *Problem) Validate() error {
	if !slices.Contains(Ops, p.Op) {
		return fmt.Errorf("problem %q: unknown op %q", p.Name, p.Op)
	}
	needA, needB, needUV := p.Op.needs()
	var errs []error
	if needA && len(p.A) == 0 {
		errs = append(errs, errors.New("missing matrix a"))
	}
	if needB && len(p.B) == 0 {
		errs = append(errs, errors.New("missing vector b"))
	}
	if needUV && (len(p.U) == 0 || len(p.V) == 0) {
		errs = append(errs, errors.New("missing vectors u and v"))
	}
	if p.Op == Norms && len(p.A) == 0 && len(p.B) == 0 {
		errs = append(errs, errors.New("norms needs a matrix a or a vector b"))
	}
	for i, row := range p.A {
		if len(row) == 0 || len(row) != len(p.A[0]) {
			errs = append(errs, fmt.Errorf("row %d of a has %d values, want %d", i, len(row), len(p.A[0])))
			break
		}
	}
	if p.Tolerance != nil && *p.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("negative tolerance %g", *p.Tolerance))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("problem %q (%s): %w", p.Name, p.Op, err)
	}
	return nil
}

// Warnings returns a message for each input that is set
// but not used by the problem's operation.
func (p *Problem) Warnings() []string {
	needA, needB, needUV := p.Op.needs()
	if p.Op == Norms {
		needA, needB = true, true
	}
	var ws []string
	if !needA && len(p.A) > 0 {
		ws = append(ws, fmt.Sprintf("matrix a is ignored by %s", p.Op))
	}
	if !needB && len(p.B) > 0 {
		ws = append(ws, fmt.Sprintf("vector b is ignored by %s", p.Op))
	}
	if !needUV && (len(p.U) > 0 || len(p.V) > 0) {
		ws = append(ws, fmt.Sprintf("vectors u and v are ignored by %s", p.Op))
	}
	if p.Tolerance != nil && p.Op != GramSchmidt && p.Op != Rank {
		ws = append(ws, fmt.Sprintf("tolerance is ignored by %s", p.Op))
	}
	return ws
}

// Matrix returns A as a dense matrix, or nil if it is empty.
func (p *Problem) Matrix() *mat.Dense {
	if len(p.A) == 0 || len(p.A[0]) == 0 {
		return nil
	}
	m, n := len(p.A), len(p.A[0])
	a := mat.NewDense(m, n, nil)
	for i, row := range p.A {
		a.SetRow(i, row)
	}
	return a
}

// codec has the functions for reading and writing one file format.
type codec struct {
	open   func(v any, filename string) error
	openFS func(v any, fsys fs.FS, filename string) error
	save   func(v any, filename string) error
}

var codecs = map[string]codec{
	".toml": {tomlx.Open, tomlx.OpenFS, tomlx.Save},
	".yaml": {yamlx.Open, yamlx.OpenFS, yamlx.Save},
	".yml":  {yamlx.Open, yamlx.OpenFS, yamlx.Save},
	".json": {jsonx.Open, jsonx.OpenFS, jsonx.Save},
}

// codecFor returns the codec for the given file name extension.
func codecFor(filename string) (codec, error) {
	ext := strings.ToLower(path.Ext(filename))
	c, ok := codecs[ext]
	if !ok {
		return codec{}, fmt.Errorf("problem: unsupported file extension %q", ext)
	}
	return c, nil
}

// Open reads and validates a problem from the given TOML, YAML, or JSON file.
func Open(filename string) (*Problem, error) {
	c, err := codecFor(filename)
	if err != nil {
		return nil, err
	}
	return decode(filename, func(p *Problem) error { return c.open(p, filename) })
}

// OpenFS is [Open] for a file in the given file system,
// such as [Samples].
func OpenFS(fsys fs.FS, filename string) (*Problem, error) {
	c, err := codecFor(filename)
	if err != nil {
		return nil, err
	}
	return decode(filename, func(p *Problem) error { return c.openFS(p, fsys, filename) })
}

func decode(filename string, read func(p *Problem) error) (*Problem, error) {
	p := &Problem{}
	if err := read(p); err != nil {
		return nil, fmt.Errorf("problem: %s: %w", filename, err)
	}
	if p.Name == "" {
		base := path.Base(filepath.ToSlash(filename))
		p.Name = strings.TrimSuffix(base, path.Ext(base))
	}
	return p, p.Validate()
}

// Save writes the problem to the given file, in the format
// given by its extension.
func (p *Problem) Save(filename string) error {
	c, err := codecFor(filename)
	if err != nil {
		return err
	}
	return c.save(p, filename)
}
