// Package board holds the state of the interactive viewer: the wall list
// being edited, the origin and destination markers and the routes drawn
// between them. It knows nothing about windows or input devices.
package board

import (
	"log"

	"labyrinth"
)

const (
	DefaultTitle = "Shortest path"
	NoPathTitle  = "No path"
)

// Board is not safe for concurrent use; the viewer drives it from its
// update loop only.
type Board struct {
	walls []labyrinth.Segment

	from, to  *labyrinth.Point
	wallStart *labyrinth.Point

	routes [][]labyrinth.Segment // found routes, kept until cleared
	misses []labyrinth.Segment   // straight origin-destination lines with no route

	showGraph bool
	graph     []labyrinth.Segment

	title  string
	opts   []labyrinth.Option
	logger *log.Logger
}

func New(walls []labyrinth.Segment, logger *log.Logger, opts ...labyrinth.Option) *Board {
	b := &Board{
		walls:  append([]labyrinth.Segment(nil), walls...),
		title:  DefaultTitle,
		opts:   opts,
		logger: logger,
	}
	return b
}

func (b *Board) Walls() []labyrinth.Segment {
	return append([]labyrinth.Segment(nil), b.walls...)
}

func (b *Board) Routes() [][]labyrinth.Segment { return b.routes }
func (b *Board) Misses() []labyrinth.Segment   { return b.misses }
func (b *Board) Title() string                 { return b.title }
func (b *Board) Origin() *labyrinth.Point      { return b.from }
func (b *Board) Destination() *labyrinth.Point { return b.to }
func (b *Board) WallStart() *labyrinth.Point   { return b.wallStart }

// Graph is the visibility graph overlay, nil while the overlay is off.
func (b *Board) Graph() []labyrinth.Segment {
	if !b.showGraph {
		return nil
	}
	return b.graph
}

// SetOrigin places the origin marker and solves if a destination is set.
func (b *Board) SetOrigin(p labyrinth.Point) {
	b.from = &p
	b.solve()
}

// SetDestination places the destination marker and solves if an origin is
// set.
func (b *Board) SetDestination(p labyrinth.Point) {
	b.to = &p
	b.solve()
}

// Clear drops the markers, any half-drawn wall and every drawn route.
func (b *Board) Clear() {
	b.from, b.to, b.wallStart = nil, nil, nil
	b.clean()
}

// WallClick handles one corner of a new wall: the first click remembers the
// point, the second adds the wall. Adding a wall wipes the drawn routes since
// they may no longer be valid.
func (b *Board) WallClick(p labyrinth.Point) {
	if b.wallStart == nil {
		b.wallStart = &p
		return
	}

	wall := labyrinth.Segment{P1: *b.wallStart, P2: p}
	b.wallStart = nil
	b.walls = append(b.walls, wall)
	b.logf("🧱 Added wall %v (%d total)", wall, len(b.walls))
	b.clean()
}

func (b *Board) ToggleGraph() {
	b.showGraph = !b.showGraph
	b.refreshGraph()
}

// Save writes the wall list to path.
func (b *Board) Save(path string) error {
	if err := labyrinth.SaveWallsAuto(path, b.walls); err != nil {
		return err
	}
	b.logf("💾 Saved %d walls to %s", len(b.walls), path)
	return nil
}

func (b *Board) clean() {
	b.routes = nil
	b.misses = nil
	b.title = DefaultTitle
	b.refreshGraph()
}

func (b *Board) planner() *labyrinth.Planner {
	return labyrinth.NewPlanner(b.walls, b.opts...)
}

// solve searches from origin to destination over a snapshot of the walls.
func (b *Board) solve() {
	b.refreshGraph()
	if b.from == nil || b.to == nil {
		return
	}

	route, ok := b.planner().FindPath(*b.from, *b.to)
	if !ok {
		b.title = NoPathTitle
		b.misses = append(b.misses, labyrinth.Segment{P1: *b.from, P2: *b.to})
		return
	}
	b.title = DefaultTitle
	b.routes = append(b.routes, route)
}

func (b *Board) refreshGraph() {
	b.graph = nil
	if !b.showGraph {
		return
	}

	from, to := b.markers()
	graph, err := b.planner().VisibilityGraph(from, to)
	if err != nil {
		b.logf("⚠️  %v", err)
		return
	}
	b.graph = graph.Lines()
}

// markers returns the two graph terminals. A missing marker stands in with
// the other one, or with a wall endpoint on an empty board.
func (b *Board) markers() (labyrinth.Point, labyrinth.Point) {
	switch {
	case b.from != nil && b.to != nil:
		return *b.from, *b.to
	case b.from != nil:
		return *b.from, *b.from
	case b.to != nil:
		return *b.to, *b.to
	case len(b.walls) > 0:
		return b.walls[0].P1, b.walls[0].P1
	}
	return labyrinth.Point{}, labyrinth.Point{}
}

func (b *Board) logf(format string, args ...interface{}) {
	if b.logger != nil {
		b.logger.Printf(format, args...)
	}
}
