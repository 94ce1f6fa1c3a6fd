// Package tsp_test provides small helpers shared across the annealer tests.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/waypath/matrix"
	"github.com/katalvlaran/waypath/tsp"
)

const (
	// epsTiny is the tolerance for exact-arithmetic comparisons.
	epsTiny = 1e-9

	// fastCoeff keeps annealing runs short in tests that do not need quality.
	fastCoeff = 0.99

	// seedDet is the deterministic seed used across tests.
	seedDet = int64(7)
)

// testDense is a bounds-checked [][]float64 matrix. It is not a *matrix.Dense,
// so NewPath takes the At-prefetch path for it.
type testDense struct{ a [][]float64 }

var _ matrix.Matrix = testDense{}

func (m testDense) Rows() int { return len(m.a) }
func (m testDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m testDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m testDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m testDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	var i int
	for i = range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return testDense{a: cp}
}

// randomPoints returns n points uniformly in [0, 100)².
func randomPoints(n int, seed int64) []orb.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]orb.Point, n)

	var i int
	for i = 0; i < n; i++ {
		pts[i] = orb.Point{rng.Float64() * 100, rng.Float64() * 100}
	}

	return pts
}

// squarePoints is the 10×10 square visited counter-clockwise.
func squarePoints() []orb.Point {
	return []orb.Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
}

// mustPermutation fails unless order is a permutation of [0, n) starting at 0.
func mustPermutation(t *testing.T, order []int, n int) {
	t.Helper()
	if err := tsp.ValidatePermutation(order, n); err != nil {
		t.Fatalf("order %v is not a permutation of [0,%d): %v", order, n, err)
	}
	if n > 0 && order[0] != 0 {
		t.Fatalf("order[0] = %d, want 0 (order %v)", order[0], order)
	}
}

// mustFloatClose fails unless |got-want| <= eps.
func mustFloatClose(t *testing.T, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Fatalf("got %.12f, want %.12f (eps %.1e)", got, want, eps)
	}
}

// equalInts reports element-wise equality.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
