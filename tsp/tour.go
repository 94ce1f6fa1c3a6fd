// Package tsp - order utilities shared by the annealer and its callers.
//
// Provided helpers:
//   - IdentityOrder: the initial order [0, 1, …, n−1].
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - TourLength: closed-cycle cost of an order over a matrix.Matrix.
//   - CloseTour: copy of an order with the origin appended.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - O(n) time for every helper.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/waypath/matrix"
)

// IdentityOrder returns [0, 1, …, n−1]; an empty slice for n ≤ 0.
func IdentityOrder(n int) []int {
	if n < 0 {
		n = 0
	}
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}

	return out
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// The empty permutation is valid for n == 0.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n < 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourLength sums dist(order[k], order[(k+1) mod n]) over the whole cycle.
// order must be a permutation of the matrix indices.
//
// Errors: ErrDimensionMismatch (nil/non-square matrix, bad order), or an
// At error wrapped with the failing edge.
// Complexity: O(n).
func TourLength(dist matrix.Matrix, order []int) (float64, error) {
	if err := matrix.ValidateSquareNonNil(dist); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}
	n := dist.Rows()
	if err := ValidatePermutation(order, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		w   float64
		k   int
		err error
	)
	for k = 0; k < n; k++ {
		u, v := order[k], order[(k+1)%n]
		if w, err = dist.At(u, v); err != nil {
			return 0, fmt.Errorf("tsp: edge %d→%d: %w", u, v, err)
		}
		sum += w
	}

	return sum, nil
}

// CloseTour returns a copy of order with order[0] appended, the form used by
// polyline renderers. Empty input yields an empty slice.
func CloseTour(order []int) []int {
	if len(order) == 0 {
		return []int{}
	}
	out := make([]int, len(order)+1)
	copy(out, order)
	out[len(order)] = order[0]

	return out
}
