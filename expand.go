package labyrinth

import "iter"

// Expand yields the steps reachable from `from` in one straight leg: first
// the destination itself, then both endpoints of every wall in wall order.
// parent is the arena index of `from` and is copied into each yielded step.
// The same point may be yielded more than once when walls share endpoints.
func (p *Planner) Expand(parent int, from Step, to Point) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		if !p.tryStep(parent, from, to, yield) {
			return
		}
		for _, wall := range p.walls {
			if !p.tryStep(parent, from, wall.P1, yield) {
				return
			}
			if !p.tryStep(parent, from, wall.P2, yield) {
				return
			}
		}
	}
}

// tryStep yields the step to target when the leg is clear. It returns false
// once the consumer stops iterating.
func (p *Planner) tryStep(parent int, from Step, target Point, yield func(Step) bool) bool {
	if !p.IsClear(from.Point, target) {
		return true
	}
	return yield(Step{
		Parent:     parent,
		Point:      target,
		PathLength: from.PathLength + from.Point.Distance(target),
	})
}
