// Package waypath plans short closed tours through map markers.
//
// The work is split across small packages:
//
//	geometry/  points, blocked segments, intersection tests, the DistanceModel
//	matrix/    row-major Dense cost matrix, validators, sentinel errors
//	tsp/       simulated-annealing tour optimizer (Solve, SolveMatrix, Path)
//	internal/  config loading, marker filtering, GeoJSON export, MQTT progress
//	cmd/       the waypath CLI
//
// Quick example:
//
//	pts := []orb.Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
//	model := geometry.NewDistanceModel(geometry.WithStreetBlockings())
//	res, err := tsp.Solve(pts, model, tsp.Options{Seed: 1})
//	// res.Order is a permutation of [0,4) starting at 0.
//
// Edges that cross a blocked segment cost PenaltyFactor (100) times their
// Euclidean length, so the annealer routes around them whenever a detour is
// cheaper.
package waypath
