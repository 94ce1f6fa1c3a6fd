// SPDX-License-Identifier: MIT

// Package matrix stores pairwise costs for tour optimizers.
//
// The package provides:
//
//   - Matrix: a small interface over a two-dimensional float64 table with
//     bounds-checked At/Set and deep Clone.
//   - Dense: a row-major implementation (offset = i*cols + j) used as the
//     canonical cost matrix of an optimization run.
//   - Validators: square/symmetry checks shared by consumers.
//   - Sentinel errors: every failure is one of the values in errors.go,
//     optionally wrapped with call-site context; match them with errors.Is.
//
// A cost matrix for N points has N×N cells and O(N²) memory; it is built once
// per run and treated as read-only afterwards.
package matrix
