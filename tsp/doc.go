// Package tsp provides a simulated-annealing heuristic for the Travelling
// Salesman Problem on a precomputed cost matrix.
//
// The solver keeps a visiting order over N points and repeatedly proposes
// swapping two positions, accepting by the Metropolis rule:
//
//   - Moves that shorten the tour (Δ < 0) are always accepted.
//   - Other moves are accepted with probability exp(−Δ/T).
//   - T starts at 100 × cost(order[0], order[1]) and decays geometrically
//     (T *= coeff) until it drops to 1e-6 or below.
//
// Position 0 is never swapped, so every returned order starts at point 0.
// Δ is evaluated from the four edges touched by a swap (O(1) per step);
// Path.Size gives the full O(N) tour length for validation.
//
// Entry points:
//
//   - Solve: points + geometry.DistanceModel → Result.
//   - SolveMatrix: any square matrix.Matrix → Result.
//
// The iteration count depends only on the initial temperature and the
// cooling coefficient, never on the random outcomes. Randomness comes from a
// *rand.Rand seeded with Options.Seed (0 selects a fixed default), so a run is
// reproducible. The solver returns the order it ends on; there is no
// best-so-far tracking.
//
// Limitations: coordinates and costs are not validated. NaN costs make every
// comparison false, so uphill moves with NaN Δ are rejected and the returned
// length is NaN.
package tsp
