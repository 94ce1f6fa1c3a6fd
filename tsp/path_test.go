package tsp_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/waypath/geometry"
	"github.com/katalvlaran/waypath/matrix"
	"github.com/katalvlaran/waypath/tsp"
)

// newPathFromPoints builds a Path over the blocked street model so the matrix
// carries both plain and penalised edges.
func newPathFromPoints(t *testing.T, n int, seed int64) *tsp.Path {
	t.Helper()
	model := geometry.NewDistanceModel(
		geometry.WithBlocked(geometry.NewSegment(50, -10, 50, 110)),
	)
	dist, err := geometry.CostMatrix(randomPoints(n, seed), model)
	if err != nil {
		t.Fatalf("CostMatrix: %v", err)
	}
	p, err := tsp.NewPath(dist)
	if err != nil {
		t.Fatalf("NewPath: %v", err)
	}

	return p
}

// checkDelta asserts Delta(i,j) equals the Size difference after Swap(i,j),
// then swaps back.
func checkDelta(t *testing.T, p *tsp.Path, i, j int) {
	t.Helper()
	before := p.Size()
	delta := p.Delta(i, j)
	p.Swap(i, j)
	after := p.Size()
	p.Swap(i, j)

	want := after - before
	tol := epsTiny * (1 + before)
	if d := delta - want; d > tol || d < -tol {
		t.Fatalf("Delta(%d,%d) = %.9f, Size diff = %.9f (order %v)", i, j, delta, want, p.Order())
	}
}

func TestPath_DeltaMatchesSizeDiff_Random(t *testing.T) {
	sizes := []int{3, 4, 5, 8, 17}
	for _, n := range sizes {
		p := newPathFromPoints(t, n, int64(n))
		rng := rand.New(rand.NewSource(int64(100 + n)))

		var k int
		for k = 0; k < 200; k++ {
			perm := rng.Perm(n - 1)
			order := make([]int, n)
			for idx, v := range perm {
				order[idx+1] = v + 1
			}
			if err := p.SetOrder(order); err != nil {
				t.Fatalf("SetOrder: %v", err)
			}
			i := 1 + rng.Intn(n-1)
			j := 1 + rng.Intn(n-1)
			if i == j {
				continue
			}
			checkDelta(t, p, i, j)
		}
	}
}

func TestPath_DeltaMatchesSizeDiff_Adjacent(t *testing.T) {
	p := newPathFromPoints(t, 6, 3)

	// Neighbours in both argument orders, plus (1, N-1): both touch
	// position 0 but share no edge.
	pairs := [][2]int{{1, 2}, {2, 1}, {2, 3}, {3, 2}, {4, 5}, {5, 4}, {1, 5}, {5, 1}}
	for _, pr := range pairs {
		checkDelta(t, p, pr[0], pr[1])
	}
}

func TestPath_DeltaMatchesSizeDiff_N3(t *testing.T) {
	// With N = 3 every movable pair is adjacent both ways round the cycle.
	p := newPathFromPoints(t, 3, 11)
	checkDelta(t, p, 1, 2)
	checkDelta(t, p, 2, 1)
}

func TestPath_SwapIsSelfInverse(t *testing.T) {
	p := newPathFromPoints(t, 5, 1)
	before := p.Order()
	p.Swap(1, 4)
	if equalInts(before, p.Order()) {
		t.Fatalf("Swap(1,4) did not change order %v", before)
	}
	p.Swap(1, 4)
	if !equalInts(before, p.Order()) {
		t.Fatalf("Swap twice: got %v, want %v", p.Order(), before)
	}
}

func TestPath_OrderIsCopy(t *testing.T) {
	p := newPathFromPoints(t, 4, 2)
	o := p.Order()
	o[1] = 99
	if p.Order()[1] != 1 {
		t.Fatalf("Order() aliases internal state")
	}
}

func TestPath_SetOrderRejectsNonPermutation(t *testing.T) {
	p := newPathFromPoints(t, 4, 2)
	bad := [][]int{
		{0, 1, 2},
		{0, 1, 2, 2},
		{0, 1, 2, 4},
		{-1, 1, 2, 3},
	}
	for _, perm := range bad {
		if err := p.SetOrder(perm); !errors.Is(err, tsp.ErrDimensionMismatch) {
			t.Fatalf("SetOrder(%v): got %v, want ErrDimensionMismatch", perm, err)
		}
	}
	if !equalInts(p.Order(), tsp.IdentityOrder(4)) {
		t.Fatalf("failed SetOrder mutated order: %v", p.Order())
	}
}

func TestNewPath_PrefetchMatchesDense(t *testing.T) {
	a := [][]float64{
		{0, 2, 9, 10},
		{2, 0, 6, 4},
		{9, 6, 0, 3},
		{10, 4, 3, 0},
	}
	p, err := tsp.NewPath(testDense{a: a})
	if err != nil {
		t.Fatalf("NewPath: %v", err)
	}
	mustFloatClose(t, p.Size(), 2+6+3+10, epsTiny)
}

func TestNewPath_RejectsBadMatrix(t *testing.T) {
	if _, err := tsp.NewPath(nil); !errors.Is(err, tsp.ErrDimensionMismatch) {
		t.Fatalf("nil matrix: got %v, want ErrDimensionMismatch", err)
	}

	rect, err := matrix.NewDense(2, 3)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	_, err = tsp.NewPath(rect)
	if !errors.Is(err, tsp.ErrDimensionMismatch) {
		t.Fatalf("2x3 matrix: got %v, want ErrDimensionMismatch", err)
	}
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("2x3 matrix: matrix sentinel lost in %v", err)
	}
}

func TestNewPath_RejectsAsymmetric(t *testing.T) {
	// Directed 4-cycle: cheap one way round, expensive the other.
	directed := testDense{a: [][]float64{
		{0, 1, 50, 50},
		{50, 0, 1, 50},
		{50, 50, 0, 1},
		{1, 50, 50, 0},
	}}
	_, err := tsp.NewPath(directed)
	if !errors.Is(err, tsp.ErrAsymmetric) {
		t.Fatalf("directed cycle: got %v, want ErrAsymmetric", err)
	}
	if !errors.Is(err, matrix.ErrAsymmetry) {
		t.Fatalf("directed cycle: matrix sentinel lost in %v", err)
	}
}

func TestNewPath_SymmetryTolerance(t *testing.T) {
	nearly := testDense{a: [][]float64{
		{0, 1, 2},
		{1 + 1e-12, 0, 3},
		{2, 3, 0},
	}}
	if _, err := tsp.NewPath(nearly); err != nil {
		t.Fatalf("asymmetry below epsilon rejected: %v", err)
	}
}

func TestNewPath_NaNPropagates(t *testing.T) {
	nan := math.NaN()
	dist := testDense{a: [][]float64{
		{0, 1, nan},
		{1, 0, 2},
		{nan, 2, 0},
	}}
	p, err := tsp.NewPath(dist)
	if err != nil {
		t.Fatalf("NaN entry rejected: %v", err)
	}
	if s := p.Size(); !math.IsNaN(s) {
		t.Fatalf("Size() = %v, want NaN", s)
	}
}
