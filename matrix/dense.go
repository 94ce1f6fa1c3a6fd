// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce an optional numeric policy (rejection of NaN/Inf) per instance.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Fill: O(r*c).
package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxFill = "Fill" // method tag used in error wrappers
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices,
// e.g. "Dense.At(3,7): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set.
//   - eps is the tolerance used by IsSymmetric.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
	eps            float64
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Returns ErrInvalidDimensions unless rows>0 && cols>0.
//
// Complexity: O(r*c) time and space.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // zero-filled
		validateNaNInf: o.validateNaNInf,
		eps:            o.eps,
	}, nil
}

// NewSquare creates an n×n zero matrix. It is the usual constructor for cost matrices.
func NewSquare(n int, opts ...Option) (*Dense, error) {
	return NewDense(n, n, opts...)
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). With the numeric policy enabled, NaN and ±Inf
// are rejected with ErrNaNInf.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Fill writes f(i, j) into every cell in row-major order. The first value
// rejected by the numeric policy aborts the fill and is reported with its
// coordinates; cells already written keep their new values.
//
// Complexity: O(r*c) calls of f.
func (m *Dense) Fill(f func(i, j int) float64) error {
	var (
		i, j int
		v    float64
		base int
	)
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			v = f(i, j)
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return denseErrorf(ctxFill, i, j, ErrNaNInf)
			}
			m.data[base+j] = v
		}
	}

	return nil
}

// Values returns a copy of the row-major buffer (len == Rows()*Cols()).
// Hot loops that read every cell many times should prefetch through Values
// instead of calling At.
func (m *Dense) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// IsSymmetric reports whether the matrix is square and symmetric within the
// tolerance set by WithEpsilon (DefaultEpsilon otherwise).
func (m *Dense) IsSymmetric() bool {
	return ValidateSymmetric(m, m.eps) == nil
}

// Clone returns a deep copy (new buffer, same numeric policy and tolerance).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
		eps:            m.eps,
	}
}

// String renders rows as bracketed, comma-separated lines for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
