package tsp

import "errors"

var (
	// ErrDimensionMismatch reports an order or matrix of the wrong shape:
	// wrong length, out-of-range or duplicated indices, non-square matrix.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrAsymmetric reports a cost matrix with d(i,j) != d(j,i).
	ErrAsymmetric = errors.New("tsp: cost matrix is not symmetric")

	// ErrTempCoeffOutOfRange reports a cooling coefficient outside (0, 1).
	ErrTempCoeffOutOfRange = errors.New("tsp: temperature coefficient must be in (0,1)")
)

const (
	// InitialTemperatureScale multiplies the cost of the first edge of the
	// identity order to produce the starting temperature.
	InitialTemperatureScale = 100.0

	// FinalTemperature ends the annealing loop once T <= FinalTemperature.
	FinalTemperature = 1e-6
)

// IterationFunc observes the live order after each annealing iteration.
// It runs inline and must not modify or retain the slice; copy it if needed.
type IterationFunc func(order []int)

// Options configures one annealing run. The zero value is valid.
type Options struct {
	// TempCoeff is the geometric cooling factor in (0, 1).
	// 0 selects DefaultTempCoeff(N).
	TempCoeff float64

	// Seed selects the random stream; 0 maps to a fixed default seed.
	Seed int64

	// OnIteration, when non-nil, is called after every iteration.
	OnIteration IterationFunc
}

// DefaultOptions returns the zero Options: adaptive cooling, default seed,
// no callback.
func DefaultOptions() Options {
	return Options{}
}

// Result is the outcome of a run.
type Result struct {
	// Order is a permutation of [0, N) with Order[0] == 0. The tour is
	// cyclic: the last point connects back to the first.
	Order []int

	// Length is the closed-tour cost of Order.
	Length float64

	// Iterations is the number of annealing steps performed (0 for N < 2).
	Iterations int
}
