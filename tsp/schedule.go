// SPDX-License-Identifier: MIT

package tsp

import "math"

// Schedule is a geometric cooling schedule: T_{k+1} = Coeff · T_k, active
// while T > FinalTemperature. Coeff must lie in (0, 1) for the schedule to
// terminate; SolveMatrix validates it.
type Schedule struct {
	Temperature float64
	Coeff       float64
}

// NewSchedule starts a schedule at t0 with the given coefficient.
func NewSchedule(t0, coeff float64) Schedule {
	return Schedule{Temperature: t0, Coeff: coeff}
}

// DefaultTempCoeff returns 1 − exp(−10 − min(n, 1e6)/1e5).
// Larger instances cool more slowly.
func DefaultTempCoeff(n int) float64 {
	return 1 - math.Exp(-10-math.Min(float64(n), 1e6)/1e5)
}

// Active reports whether another iteration runs at the current temperature.
// An infinite temperature never cools, so it is treated as inactive; NaN
// fails the comparison on its own.
func (s Schedule) Active() bool {
	return s.Temperature > FinalTemperature && !math.IsInf(s.Temperature, 1)
}

// Cool applies one geometric decay step.
func (s *Schedule) Cool() {
	s.Temperature *= s.Coeff
}

// Steps returns how many iterations the schedule runs from its current state.
//
// Complexity: O(Steps).
func (s Schedule) Steps() int {
	var k int
	for cur := s; cur.Active(); cur.Cool() {
		k++
	}

	return k
}
