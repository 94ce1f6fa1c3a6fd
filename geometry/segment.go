// SPDX-License-Identifier: MIT

package geometry

import "github.com/paulmach/orb"

// Segment is a closed line segment between two endpoints.
type Segment struct {
	A orb.Point
	B orb.Point
}

// NewSegment builds a segment from raw coordinates.
func NewSegment(ax, ay, bx, by float64) Segment {
	return Segment{A: orb.Point{ax, ay}, B: orb.Point{bx, by}}
}

// LineString returns the segment as a two-vertex orb.LineString.
func (s Segment) LineString() orb.LineString {
	return orb.LineString{s.A, s.B}
}

// Intersection describes where the infinite lines through two segments meet.
type Intersection struct {
	// Point is the meeting point of the two infinite lines. Zero when Parallel.
	Point orb.Point

	// OnFirst reports that Point lies strictly inside the first segment.
	OnFirst bool

	// OnSecond reports that Point lies strictly inside the second segment.
	OnSecond bool

	// Parallel reports a zero determinant (parallel or collinear lines).
	Parallel bool
}

// Crosses reports a proper crossing: the meeting point is interior to both segments.
func (x Intersection) Crosses() bool {
	return x.OnFirst && x.OnSecond
}

// Intersect intersects segment p→q with segment s.
//
// With d1 = q−p and d2 = s.B−s.A, the denominator is the cross product
// d2.y·d1.x − d2.x·d1.y. Zero means parallel or collinear and yields
// Intersection{Parallel: true}. Otherwise a is the position along p→q and b
// the position along s; each flag is set only for a value in the open
// interval (0, 1).
//
// Complexity: O(1).
func Intersect(p, q orb.Point, s Segment) Intersection {
	var (
		d1x = q[0] - p[0]
		d1y = q[1] - p[1]
		d2x = s.B[0] - s.A[0]
		d2y = s.B[1] - s.A[1]
	)

	den := d2y*d1x - d2x*d1y
	if den == 0 {
		return Intersection{Parallel: true}
	}

	var (
		oy = p[1] - s.A[1]
		ox = p[0] - s.A[0]
		a  = (d2x*oy - d2y*ox) / den
		b  = (d1x*oy - d1y*ox) / den
	)

	return Intersection{
		Point:    orb.Point{p[0] + a*d1x, p[1] + a*d1y},
		OnFirst:  a > 0 && a < 1,
		OnSecond: b > 0 && b < 1,
	}
}

// Crosses reports whether segment p→q properly crosses s.
func Crosses(p, q orb.Point, s Segment) bool {
	return Intersect(p, q, s).Crosses()
}
