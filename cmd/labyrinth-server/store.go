package main

import (
	"sync"

	"labyrinth"
)

// wallStore is the server's mutable wall list. Searches never see it
// directly: each one plans over a snapshot taken under the read lock.
type wallStore struct {
	mu    sync.RWMutex
	walls []labyrinth.Segment
}

func newWallStore(walls []labyrinth.Segment) *wallStore {
	s := &wallStore{}
	s.Replace(walls)
	return s
}

// Snapshot returns a copy of the current walls.
func (s *wallStore) Snapshot() []labyrinth.Segment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	walls := make([]labyrinth.Segment, len(s.walls))
	copy(walls, s.walls)
	return walls
}

func (s *wallStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.walls)
}

// Add appends walls and returns the new count.
func (s *wallStore) Add(walls ...labyrinth.Segment) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.walls = append(s.walls, walls...)
	return len(s.walls)
}

func (s *wallStore) Replace(walls []labyrinth.Segment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.walls = make([]labyrinth.Segment, len(walls))
	copy(s.walls, walls)
}

func (s *wallStore) Clear() {
	s.Replace(nil)
}
