package labyrinth

import (
	"fmt"
	"math"
)

// Point is a position in the plane. Points compare with ==, without tolerance:
// every vertex the planner works with is a literal wall endpoint, origin or
// destination, never a computed intersection.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Distance calculates Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Distance is the edge weight used by the search.
func Distance(p, q Point) float64 {
	return p.Distance(q)
}

// Segment is a straight line between two points. Walls and path legs are both
// segments; the order of the endpoints carries no meaning for walls.
type Segment struct {
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
}

// Seg builds a segment from raw coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{P1: Point{X: x1, Y: y1}, P2: Point{X: x2, Y: y2}}
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.P1, s.P2)
}

func (s Segment) Length() float64 {
	return s.P1.Distance(s.P2)
}

// IsDegenerate reports whether both endpoints coincide.
func (s Segment) IsDegenerate() bool {
	return s.P1 == s.P2
}

func (s Segment) Reversed() Segment {
	return Segment{P1: s.P2, P2: s.P1}
}

// HasEndpoint reports whether p is one of the segment's own endpoints.
func (s Segment) HasEndpoint(p Point) bool {
	return s.P1 == p || s.P2 == p
}

// BBox represents a bounding box
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Bounds returns the axis-aligned bounding box of the segment
func (s Segment) Bounds() BBox {
	return BBox{
		MinX: math.Min(s.P1.X, s.P2.X),
		MinY: math.Min(s.P1.Y, s.P2.Y),
		MaxX: math.Max(s.P1.X, s.P2.X),
		MaxY: math.Max(s.P1.Y, s.P2.Y),
	}
}

// SegmentsIntersect checks if two line segments share at least one point.
// Touching at an endpoint and collinear overlap both count. A zero-length
// segment has no extent and intersects nothing.
func SegmentsIntersect(seg1, seg2 Segment) bool {
	if seg1.IsDegenerate() || seg2.IsDegenerate() {
		return false
	}

	p1, p2 := seg1.P1, seg1.P2
	p3, p4 := seg2.P1, seg2.P2

	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Check for collinear and touching cases
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}

	return false
}

// direction calculates the cross product to determine orientation
func direction(p1, p2, p3 Point) float64 {
	return (p3.X-p1.X)*(p2.Y-p1.Y) - (p2.X-p1.X)*(p3.Y-p1.Y)
}

// onSegment checks if point q, already known to be collinear, lies within the
// bounding box of segment pr
func onSegment(p, r, q Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}
