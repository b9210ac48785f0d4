package labyrinth

import (
	"log"
	"strings"

	"github.com/pkg/errors"
)

// Strategy selects the order in which the search works through its queue.
type Strategy int

const (
	// FIFO is label-correcting search over a plain work queue. A point may be
	// expanded several times before its best length settles.
	FIFO Strategy = iota

	// BestFirst orders the queue by path length plus straight-line distance
	// to the destination and stops once the destination is taken from the
	// queue. Same optimal length as FIFO, fewer expansions.
	BestFirst
)

func (s Strategy) String() string {
	switch s {
	case FIFO:
		return "fifo"
	case BestFirst:
		return "best-first"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a flag value to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fifo":
		return FIFO, nil
	case "best-first", "bestfirst", "astar":
		return BestFirst, nil
	}
	return FIFO, errors.Errorf("unknown strategy %q (want fifo or best-first)", name)
}

// Option configures a Planner.
type Option func(*Planner)

func WithStrategy(s Strategy) Option {
	return func(p *Planner) {
		p.strategy = s
	}
}

// WithLogger makes the planner log one summary line per search.
func WithLogger(l *log.Logger) Option {
	return func(p *Planner) {
		p.logger = l
	}
}

// Planner finds shortest paths around a fixed set of walls. The walls are
// copied on construction, so a Planner is immutable and may serve concurrent
// searches.
type Planner struct {
	walls    []Segment
	index    *SpatialIndex
	strategy Strategy
	logger   *log.Logger
}

// NewPlanner snapshots walls and builds the spatial index over them.
func NewPlanner(walls []Segment, opts ...Option) *Planner {
	snapshot := make([]Segment, len(walls))
	copy(snapshot, walls)

	p := &Planner{
		walls:    snapshot,
		index:    NewSpatialIndex(snapshot),
		strategy: FIFO,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Walls returns a copy of the planner's wall snapshot.
func (p *Planner) Walls() []Segment {
	walls := make([]Segment, len(p.walls))
	copy(walls, p.walls)
	return walls
}

func (p *Planner) Strategy() Strategy {
	return p.strategy
}

func (p *Planner) logf(format string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}
