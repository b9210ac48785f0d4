package labyrinth

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"
)

var errNonFinite = errors.New("non-finite bounding box")

// wallEntry wraps a wall for R-tree storage
type wallEntry struct {
	Index int
	Wall  Segment
	BBox  rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (w *wallEntry) Bounds() rtreego.Rect {
	return w.BBox
}

// SpatialIndex answers "which walls could touch this segment" queries. It is
// a prefilter only: every wall it returns still goes through the exact
// intersection test.
type SpatialIndex struct {
	tree  *rtreego.Rtree
	walls []Segment

	// walls whose box cannot be represented in the tree (non-finite
	// coordinates); they are returned by every query
	unindexed []int
}

// NewSpatialIndex creates a new spatial index over walls. Zero-length walls
// never block and are left out.
func NewSpatialIndex(walls []Segment) *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	si := &SpatialIndex{tree: tree, walls: walls}

	for i, wall := range walls {
		if wall.IsDegenerate() {
			continue
		}
		bbox, err := boundsRect(wall.Bounds())
		if err != nil {
			si.unindexed = append(si.unindexed, i)
			continue
		}
		tree.Insert(&wallEntry{
			Index: i,
			Wall:  wall,
			BBox:  bbox,
		})
	}

	return si
}

// Size is the number of walls that can block a path.
func (si *SpatialIndex) Size() int {
	return si.tree.Size() + len(si.unindexed)
}

// Query returns the walls whose bounding box overlaps the bounding box of seg,
// in input order.
func (si *SpatialIndex) Query(seg Segment) []Segment {
	bbox, err := boundsRect(seg.Bounds())
	if err != nil {
		return si.blocking()
	}

	results := si.tree.SearchIntersect(bbox)
	indexes := make([]int, 0, len(results)+len(si.unindexed))
	for _, item := range results {
		indexes = append(indexes, item.(*wallEntry).Index)
	}
	indexes = append(indexes, si.unindexed...)
	sort.Ints(indexes)

	walls := make([]Segment, len(indexes))
	for i, idx := range indexes {
		walls[i] = si.walls[idx]
	}
	return walls
}

// blocking returns every non-degenerate wall.
func (si *SpatialIndex) blocking() []Segment {
	walls := make([]Segment, 0, len(si.walls))
	for _, wall := range si.walls {
		if !wall.IsDegenerate() {
			walls = append(walls, wall)
		}
	}
	return walls
}

// boundsRect converts a bounding box into an R-tree rectangle. The box is
// grown by a small margin so that axis-aligned and touching segments still
// overlap after rounding; rtreego also rejects zero side lengths.
func boundsRect(b BBox) (rtreego.Rect, error) {
	if !isFinite(b.MinX) || !isFinite(b.MinY) || !isFinite(b.MaxX) || !isFinite(b.MaxY) {
		return rtreego.Rect{}, errNonFinite
	}

	pad := boxPadding(b)
	return rtreego.NewRect(
		rtreego.Point{b.MinX - pad, b.MinY - pad},
		[]float64{b.MaxX - b.MinX + 2*pad, b.MaxY - b.MinY + 2*pad},
	)
}

func boxPadding(b BBox) float64 {
	magnitude := math.Max(
		math.Max(math.Abs(b.MinX), math.Abs(b.MaxX)),
		math.Max(math.Abs(b.MinY), math.Abs(b.MaxY)),
	)
	return math.Max(1, magnitude) * 1e-9
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
