// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/waypath/matrix"
)

// PenaltyFactor multiplies the length of an edge that crosses a blocked segment.
const PenaltyFactor = 100.0

const panicPenaltyInvalid = "geometry: WithPenalty: factor must be finite and >= 1"

// streetBlockings is the sample obstacle set of the waypoint map.
var streetBlockings = [...]Segment{
	NewSegment(-75.25, 109.25, -111.5, 109.25),
	NewSegment(-81.3125, 45.625, -93.9375, 72.75),
	NewSegment(-77.6875, 101.75, -76.625, 120.6875),
	NewSegment(-26.5, 94.71875, -21.03125, 144.25),
}

// StreetBlockings returns a fresh copy of the sample blocked segments.
func StreetBlockings() []Segment {
	out := make([]Segment, len(streetBlockings))
	copy(out, streetBlockings[:])

	return out
}

// Option configures a DistanceModel.
type Option func(*DistanceModel)

// WithBlocked appends blocked segments to the model.
func WithBlocked(segs ...Segment) Option {
	return func(m *DistanceModel) { m.blocked = append(m.blocked, segs...) }
}

// WithStreetBlockings appends the sample street blockings.
func WithStreetBlockings() Option {
	return WithBlocked(streetBlockings[:]...)
}

// WithPenalty overrides PenaltyFactor. Panics on factors below 1 or non-finite.
func WithPenalty(factor float64) Option {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 1 {
		panic(panicPenaltyInvalid)
	}

	return func(m *DistanceModel) { m.penalty = factor }
}

// DistanceModel scores edges by Euclidean length with an obstacle penalty.
// It is immutable after construction and safe for concurrent use.
type DistanceModel struct {
	blocked []Segment
	penalty float64
}

// NewDistanceModel builds a model. Without options it has no blocked
// segments and reduces to plain Euclidean distance.
func NewDistanceModel(opts ...Option) *DistanceModel {
	m := &DistanceModel{penalty: PenaltyFactor}
	for _, set := range opts {
		set(m)
	}
	// Own the slice: later appends by the caller must not leak in.
	m.blocked = append([]Segment(nil), m.blocked...)

	return m
}

// Euclidean is the unpenalized model.
var Euclidean = NewDistanceModel()

// Penalty returns the multiplier applied to blocked edges.
func (m *DistanceModel) Penalty() float64 { return m.penalty }

// Segments returns a copy of the blocked segments.
func (m *DistanceModel) Segments() []Segment {
	return append([]Segment(nil), m.blocked...)
}

// Blocked reports whether edge p–q properly crosses any blocked segment.
//
// Complexity: O(len(blocked)).
func (m *DistanceModel) Blocked(p, q orb.Point) bool {
	// Fixed endpoint order keeps the answer bit-identical for p–q and q–p.
	if q[0] < p[0] || (q[0] == p[0] && q[1] < p[1]) {
		p, q = q, p
	}
	for _, s := range m.blocked {
		if Crosses(p, q, s) {
			return true
		}
	}

	return false
}

// Cost returns the edge cost: planar distance, times Penalty() when blocked.
// Cost(p, q) == Cost(q, p) for all inputs.
func (m *DistanceModel) Cost(p, q orb.Point) float64 {
	d := planar.Distance(p, q)
	if m.Blocked(p, q) {
		return d * m.penalty
	}

	return d
}

// CostMatrix evaluates model over all N² ordered pairs of points into a fresh
// N×N matrix. A nil model means Euclidean. The matrix accepts NaN/Inf so that
// malformed coordinates propagate instead of failing the build.
//
// Errors: matrix.ErrInvalidDimensions for an empty point list.
// Complexity: O(N²·B) for B blocked segments.
func CostMatrix(points []orb.Point, model *DistanceModel) (*matrix.Dense, error) {
	if model == nil {
		model = Euclidean
	}
	n := len(points)
	dist, err := matrix.NewSquare(n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("geometry: cost matrix for %d points: %w", n, err)
	}
	if err = dist.Fill(func(i, j int) float64 {
		return model.Cost(points[i], points[j])
	}); err != nil {
		return nil, fmt.Errorf("geometry: cost matrix: %w", err)
	}

	return dist, nil
}
