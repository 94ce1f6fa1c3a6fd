// SPDX-License-Identifier: MIT

// Package tsp - entry points.
//
//   - Solve: points + distance model; builds a fresh cost matrix and delegates.
//   - SolveMatrix: validates, anneals, and returns the final order.
//
// Contracts:
//   - N < 2 returns the identity order with zero iterations.
//   - Every call owns its matrix copy, Path and RNG; concurrent calls share nothing.
package tsp

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/waypath/geometry"
	"github.com/katalvlaran/waypath/matrix"
)

// Solve orders points with model (nil ⇒ geometry.Euclidean).
// The cost matrix is rebuilt on every call.
//
// Errors: ErrTempCoeffOutOfRange; wrapped cost-matrix errors.
// Complexity: O(N²) build + O(Steps) annealing.
func Solve(points []orb.Point, model *geometry.DistanceModel, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if len(points) < 2 {
		return Result{Order: IdentityOrder(len(points))}, nil
	}

	dist, err := geometry.CostMatrix(points, model)
	if err != nil {
		return Result{}, fmt.Errorf("tsp: %w", err)
	}

	return SolveMatrix(dist, opts)
}

// SolveMatrix anneals over a square cost matrix, which it never modifies.
//
// Steps:
//  1. Validate options, shape and symmetry; prefetch the matrix into a Path (identity order).
//  2. If N < 2, return the identity order.
//  3. T = InitialTemperatureScale × d(0, 1); coeff = opts.TempCoeff or DefaultTempCoeff(N).
//  4. While T > FinalTemperature: Path.Change(T), call OnIteration, T *= coeff.
//  5. Return the current order and its length.
//
// Errors: ErrTempCoeffOutOfRange, ErrDimensionMismatch, ErrAsymmetric (wrapped).
func SolveMatrix(dist matrix.Matrix, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	path, err := NewPath(dist)
	if err != nil {
		return Result{}, err
	}

	n := path.Len()
	if n < 2 {
		return Result{Order: path.Order(), Length: path.Size()}, nil
	}

	coeff := opts.TempCoeff
	if coeff == 0 {
		coeff = DefaultTempCoeff(n)
	}

	var (
		rng   = rngFromSeed(opts.Seed)
		sched = NewSchedule(InitialTemperatureScale*path.distance(0, 1), coeff)
		iters int
	)
	for ; sched.Active(); sched.Cool() {
		path.Change(sched.Temperature, rng)
		iters++
		if opts.OnIteration != nil {
			opts.OnIteration(path.order)
		}
	}

	return Result{Order: path.Order(), Length: path.Size(), Iterations: iters}, nil
}

// validateOptions checks the cooling coefficient: 0 (adaptive) or within (0, 1).
func validateOptions(opts Options) error {
	c := opts.TempCoeff
	if c == 0 {
		return nil
	}
	if math.IsNaN(c) || c <= 0 || c >= 1 {
		return fmt.Errorf("%w: got %v", ErrTempCoeffOutOfRange, c)
	}

	return nil
}
