// Package geometry provides the cost model for tour edges.
//
// Points are orb.Point values ([2]float64, x then y). A DistanceModel scores
// an edge p–q by its Euclidean length, multiplied by a penalty factor (100 by
// default) when the edge properly crosses one of the model's blocked segments.
//
// Crossing is decided with the determinant method on the two parametrized
// segments. Only strictly interior intersections count:
//
//   - touching an endpoint (parameter exactly 0 or 1) does not block;
//   - parallel and collinear segments never block, even when they overlap.
//
// Non-finite coordinates are not validated; NaN simply propagates through the
// computed costs.
package geometry
