package labyrinth

import "slices"

// reconstruct follows parent links from terminal back to the root and returns
// one segment per link, origin first. A root terminal yields an empty slice.
func reconstruct(arena []Step, terminal int) []Segment {
	if terminal == NoParent {
		return nil
	}

	segments := []Segment{}
	for i := terminal; arena[i].Parent != NoParent; i = arena[i].Parent {
		back := arena[arena[i].Parent]
		segments = append(segments, Segment{P1: back.Point, P2: arena[i].Point})
	}
	slices.Reverse(segments)
	return segments
}

// Waypoints converts a chain of legs into the points it visits, starting with
// origin.
func Waypoints(segments []Segment, origin Point) []Point {
	points := make([]Point, 0, len(segments)+1)
	points = append(points, origin)
	for _, seg := range segments {
		points = append(points, seg.P2)
	}
	return points
}

// PathLength sums the lengths of the legs.
func PathLength(segments []Segment) float64 {
	total := 0.0
	for _, seg := range segments {
		total += seg.Length()
	}
	return total
}
