package labyrinth

// IsClear reports whether the straight segment from-to crosses no wall.
//
// A wall that shares one of its own endpoints with from or to never blocks:
// waypoints are wall endpoints, and a leg that ends on a wall's corner
// necessarily touches that wall. Every other contact blocks, including
// grazing a different wall's endpoint mid-leg.
func IsClear(from, to Point, walls []Segment) bool {
	candidate := Segment{P1: from, P2: to}
	for _, wall := range walls {
		if SegmentsIntersect(candidate, wall) &&
			// Not on a wall's end
			!wall.HasEndpoint(from) && !wall.HasEndpoint(to) {
			return false
		}
	}
	return true
}

// IsClear applies the same rule as the package-level IsClear, testing only
// the walls whose bounding boxes overlap the leg.
func (p *Planner) IsClear(from, to Point) bool {
	return IsClear(from, to, p.index.Query(Segment{P1: from, P2: to}))
}
