package labyrinth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Point{0, 0}, Point{3, 4}))
	assert.Equal(t, 0.0, Distance(Point{3, 3}, Point{3, 3}))
	assert.InDelta(t, 10*math.Sqrt2, Point{0, 0}.Distance(Point{10, 10}), 1e-12)
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Segment
		want bool
	}{
		{"proper crossing", Seg(0, 0, 10, 10), Seg(0, 10, 10, 0), true},
		{"disjoint", Seg(0, 0, 1, 1), Seg(5, 5, 6, 7), false},
		{"parallel", Seg(0, 0, 10, 0), Seg(0, 1, 10, 1), false},
		{"shared endpoint", Seg(0, 0, 5, 5), Seg(5, 5, 10, 0), true},
		{"endpoint touches interior", Seg(0, 0, 5, 0), Seg(5, -5, 5, 5), true},
		{"collinear overlap", Seg(0, 0, 10, 0), Seg(5, 0, 15, 0), true},
		{"collinear apart", Seg(0, 0, 4, 0), Seg(5, 0, 15, 0), false},
		{"would cross if extended", Seg(0, 0, 4, 4), Seg(10, 0, 6, 4), false},
		{"zero-length on the other segment", Seg(0, 0, 10, 0), Seg(5, 0, 5, 0), false},
		{"both zero-length and equal", Seg(1, 1, 1, 1), Seg(1, 1, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SegmentsIntersect(tt.a, tt.b))
			assert.Equal(t, tt.want, SegmentsIntersect(tt.b, tt.a), "argument order")
			assert.Equal(t, tt.want, SegmentsIntersect(tt.a.Reversed(), tt.b.Reversed()), "endpoint order")
		})
	}
}

func TestSegmentHelpers(t *testing.T) {
	s := Seg(3, -1, -2, 4)

	assert.Equal(t, BBox{MinX: -2, MinY: -1, MaxX: 3, MaxY: 4}, s.Bounds())
	assert.True(t, s.HasEndpoint(Point{-2, 4}))
	assert.False(t, s.HasEndpoint(Point{0, 0}))
	assert.False(t, s.IsDegenerate())
	assert.True(t, Seg(1, 1, 1, 1).IsDegenerate())
	assert.Equal(t, Seg(-2, 4, 3, -1), s.Reversed())
	assert.Equal(t, "(3, -1)-(-2, 4)", s.String())
}
