// SPDX-License-Identifier: MIT

// Package tsp - the annealer's tour state.
//
// Path owns a visiting order and a private row-major copy of the cost
// matrix (w[u*n+v] ~ At(u,v)), prefetched once so the hot loop has no
// interface indirection.
//
// All methods take POSITIONS in the order, not point indices: Swap(i, j)
// exchanges the points visited i-th and j-th, Delta(i, j) prices that swap.
package tsp

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/waypath/matrix"
)

// Path is a permutation of [0, N) over a fixed cost matrix.
// It is not safe for concurrent use.
type Path struct {
	n     int
	order []int
	w     []float64
}

// NewPath prefetches dist and starts from the identity order.
//
// dist must be symmetric within matrix.DefaultEpsilon; Delta prices a swap
// from the undirected edges around it. A NaN entry ends the symmetry scan
// without an error so that malformed costs keep propagating numerically.
//
// Errors: ErrDimensionMismatch wrapping the matrix validator error for a nil
// or non-square matrix; ErrAsymmetric wrapping matrix.ErrAsymmetry; At errors
// from custom implementations.
// Complexity: O(N²).
func NewPath(dist matrix.Matrix) (*Path, error) {
	if err := matrix.ValidateSquareNonNil(dist); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}
	if err := matrix.ValidateSymmetric(dist, matrix.DefaultEpsilon); err != nil && !errors.Is(err, matrix.ErrNaNInf) {
		if errors.Is(err, matrix.ErrAsymmetry) {
			return nil, fmt.Errorf("%w: %w", ErrAsymmetric, err)
		}
		return nil, fmt.Errorf("tsp: symmetry check: %w", err)
	}
	n := dist.Rows()

	var w []float64
	if d, ok := dist.(*matrix.Dense); ok {
		w = d.Values()
	} else {
		w = make([]float64, n*n)

		var (
			i, j int
			x    float64
			err  error
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if x, err = dist.At(i, j); err != nil {
					return nil, fmt.Errorf("tsp: prefetch (%d,%d): %w", i, j, err)
				}
				w[i*n+j] = x
			}
		}
	}

	return &Path{n: n, order: IdentityOrder(n), w: w}, nil
}

// Len returns N.
func (p *Path) Len() int { return p.n }

// Order returns a copy of the current order.
func (p *Path) Order() []int {
	out := make([]int, p.n)
	copy(out, p.order)

	return out
}

// SetOrder replaces the current order with a copy of perm.
// Returns ErrDimensionMismatch unless perm is a permutation of [0, N).
func (p *Path) SetOrder(perm []int) error {
	if err := ValidatePermutation(perm, p.n); err != nil {
		return err
	}
	copy(p.order, perm)

	return nil
}

// index wraps a position cyclically into [0, N).
func (p *Path) index(i int) int {
	return (i + p.n) % p.n
}

// distance is the cost between the points at positions i and j.
func (p *Path) distance(i, j int) float64 {
	return p.w[p.order[i]*p.n+p.order[j]]
}

// Size returns the closed-tour length of the current order.
//
// Complexity: O(N).
func (p *Path) Size() float64 {
	var (
		s float64
		i int
	)
	for i = 0; i < p.n; i++ {
		s += p.distance(i, (i+1)%p.n)
	}

	return s
}

// Swap exchanges the points at positions i and j.
func (p *Path) Swap(i, j int) {
	p.order[i], p.order[j] = p.order[j], p.order[i]
}

// Delta returns Size(after Swap(i, j)) − Size(before) for a symmetric cost
// matrix, reading only the edges incident to positions i and j:
//
//	Δ = d(j−1,i) + d(i,j+1) + d(i−1,j) + d(j,i+1)
//	  − d(i−1,i) − d(i,i+1) − d(j−1,j) − d(j,j+1)
//
// When i and j are cyclic neighbours the shared edge i–j is subtracted twice
// and never re-added by the generic terms, so 2·d(i,j) is added back.
//
// Complexity: O(1).
func (p *Path) Delta(i, j int) float64 {
	var (
		jm1 = p.index(j - 1)
		jp1 = p.index(j + 1)
		im1 = p.index(i - 1)
		ip1 = p.index(i + 1)
	)
	s := p.distance(jm1, i) +
		p.distance(i, jp1) +
		p.distance(im1, j) +
		p.distance(j, ip1) -
		p.distance(im1, i) -
		p.distance(i, ip1) -
		p.distance(jm1, j) -
		p.distance(j, jp1)
	if jm1 == i || jp1 == i {
		s += 2 * p.distance(i, j)
	}

	return s
}

// randomPair draws two positions uniformly from [1, N−1], distinct whenever
// N > 2. For N == 2 only position 1 exists and the pair is (1, 1).
func (p *Path) randomPair(rng *rand.Rand) (int, int) {
	span := p.n - 1
	i := 1 + rng.Intn(span)
	if span < 2 {
		return i, i
	}
	// Offset by 1..span-1 around the ring of movable positions.
	j := 1 + (i-1+1+rng.Intn(span-1))%span

	return i, j
}

// Change performs one annealing step at temperature temp: draw a swap, accept
// it if Δ < 0 or with probability exp(−Δ/temp), and apply it if accepted.
// Reports whether the swap was applied. Requires N ≥ 2.
func (p *Path) Change(temp float64, rng *rand.Rand) bool {
	i, j := p.randomPair(rng)
	delta := p.Delta(i, j)
	if delta < 0 || rng.Float64() < math.Exp(-delta/temp) {
		p.Swap(i, j)
		return true
	}

	return false
}
