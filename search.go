package labyrinth

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// NoParent marks the root step of a search.
const NoParent = -1

// ErrCancelled is returned when the search context ends before the queue
// drains. The context's own error is wrapped alongside it.
var ErrCancelled = errors.New("search cancelled")

// Step is a node of the search tree: a point, the arena index of the step it
// was reached from, and the length of the chain from the origin.
type Step struct {
	Parent     int
	Point      Point
	PathLength float64
}

// Stats counts the work done by one search.
type Stats struct {
	Expansions  int `json:"expansions"`  // steps taken off the queue and expanded
	Candidates  int `json:"candidates"`  // clear legs produced by those expansions
	Relaxations int `json:"relaxations"` // candidates that improved a point's best length
}

// Result is the outcome of a search. Found is false when no chain of clear
// legs connects origin and destination; that is an ordinary outcome, not an
// error. When origin and destination coincide Found is true and Segments is
// empty.
type Result struct {
	Found    bool          `json:"found"`
	Segments []Segment     `json:"segments"`
	Length   float64       `json:"length"`
	Stats    Stats         `json:"stats"`
	Elapsed  time.Duration `json:"-"`
}

// Waypoints lists the points visited by the route, origin first. Nil when no
// route was found.
func (r *Result) Waypoints(origin Point) []Point {
	if !r.Found {
		return nil
	}
	return Waypoints(r.Segments, origin)
}

// search is the state of one Search call. Nothing in it outlives the call.
type search struct {
	planner *Planner
	to      Point
	arena   []Step
	best    map[Point]int // point -> arena index of the shortest step reaching it
	queue   workQueue
	stats   Stats
}

// Search finds the shortest chain of clear legs from origin to destination.
//
// Best lengths are corrected whenever a strictly shorter chain to a point
// shows up, and the improved step goes back on the queue; the search ends
// when the queue is empty (or, for BestFirst, when the destination leaves
// the queue). A step whose point has since been reached more cheaply is
// dropped unexpanded.
func (p *Planner) Search(ctx context.Context, from, to Point) (*Result, error) {
	start := time.Now()

	s := &search{
		planner: p,
		to:      to,
		best:    make(map[Point]int),
		queue:   newWorkQueue(p.strategy),
	}
	s.arena = append(s.arena, Step{Parent: NoParent, Point: from})
	s.best[from] = 0
	s.queue.Push(0, from.Distance(to))

	for s.queue.Len() > 0 {
		if err := ctx.Err(); err != nil {
			p.logf("⚠️  Search %v -> %v cancelled after %d expansions", from, to, s.stats.Expansions)
			return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		here := s.queue.Pop()
		step := s.arena[here]
		if s.best[step.Point] != here {
			continue // superseded while queued
		}
		if p.strategy == BestFirst && step.Point == to {
			break
		}

		s.stats.Expansions++
		for next := range p.Expand(here, step, to) {
			s.stats.Candidates++
			s.relax(next)
		}
	}

	result := s.result()
	result.Elapsed = time.Since(start)

	if result.Found {
		p.logf("✅ Search %v -> %v (%s): %d legs, length %.3f, %d expansions, %d relaxations",
			from, to, p.strategy, len(result.Segments), result.Length, s.stats.Expansions, s.stats.Relaxations)
	} else {
		p.logf("❌ Search %v -> %v (%s): no path, %d expansions, %d relaxations",
			from, to, p.strategy, s.stats.Expansions, s.stats.Relaxations)
	}

	return result, nil
}

// relax records next if it is the first or a strictly shorter way to its point.
func (s *search) relax(next Step) {
	if saved, ok := s.best[next.Point]; ok && s.arena[saved].PathLength <= next.PathLength {
		return
	}

	s.arena = append(s.arena, next)
	idx := len(s.arena) - 1
	s.best[next.Point] = idx
	s.queue.Push(idx, next.PathLength+next.Point.Distance(s.to))
	s.stats.Relaxations++
}

func (s *search) result() *Result {
	terminal, ok := s.best[s.to]
	if !ok {
		return &Result{Stats: s.stats}
	}

	return &Result{
		Found:    true,
		Segments: reconstruct(s.arena, terminal),
		Length:   s.arena[terminal].PathLength,
		Stats:    s.stats,
	}
}

// FindPath runs an uncancellable search and returns the route's legs in
// travel order, or false if the destination cannot be reached.
func (p *Planner) FindPath(from, to Point) ([]Segment, bool) {
	result, err := p.Search(context.Background(), from, to)
	if err != nil || !result.Found {
		return nil, false
	}
	return result.Segments, true
}

// FindPath is a one-shot search over walls.
func FindPath(walls []Segment, from, to Point) ([]Segment, bool) {
	return NewPlanner(walls).FindPath(from, to)
}
