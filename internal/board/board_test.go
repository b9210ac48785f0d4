package board

import (
	"bytes"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labyrinth"
)

var (
	origin      = labyrinth.Point{X: 0, Y: 0}
	destination = labyrinth.Point{X: 10, Y: 0}
)

func TestSolveOnceBothMarkersSet(t *testing.T) {
	b := New([]labyrinth.Segment{labyrinth.Seg(5, -5, 5, 5)}, nil)

	b.SetOrigin(origin)
	assert.Empty(t, b.Routes())

	b.SetDestination(destination)
	require.Len(t, b.Routes(), 1)
	assert.Len(t, b.Routes()[0], 2)
	assert.Equal(t, DefaultTitle, b.Title())

	// moving a marker draws another route next to the first
	b.SetOrigin(labyrinth.Point{X: 0, Y: 12})
	require.Len(t, b.Routes(), 2)
	assert.Equal(t, []labyrinth.Segment{labyrinth.Seg(0, 12, 10, 0)}, b.Routes()[1])
}

func TestNoPath(t *testing.T) {
	ring := []labyrinth.Segment{
		labyrinth.Seg(-1, 0, 11, 0),
		labyrinth.Seg(10, -1, 10, 11),
		labyrinth.Seg(11, 10, -1, 10),
		labyrinth.Seg(0, 11, 0, -1),
	}
	b := New(ring, nil)

	b.SetOrigin(labyrinth.Point{X: 5, Y: 5})
	b.SetDestination(labyrinth.Point{X: 20, Y: 5})

	assert.Empty(t, b.Routes())
	assert.Equal(t, []labyrinth.Segment{labyrinth.Seg(5, 5, 20, 5)}, b.Misses())
	assert.Equal(t, NoPathTitle, b.Title())

	b.Clear()
	assert.Nil(t, b.Origin())
	assert.Nil(t, b.Destination())
	assert.Empty(t, b.Misses())
	assert.Equal(t, DefaultTitle, b.Title())
}

func TestWallClicks(t *testing.T) {
	var logs bytes.Buffer
	b := New(nil, log.New(&logs, "", 0))
	b.SetOrigin(origin)
	b.SetDestination(destination)
	require.Len(t, b.Routes(), 1)

	b.WallClick(labyrinth.Point{X: 5, Y: -5})
	assert.Equal(t, &labyrinth.Point{X: 5, Y: -5}, b.WallStart())
	assert.Empty(t, b.Walls())

	b.WallClick(labyrinth.Point{X: 5, Y: 5})
	assert.Nil(t, b.WallStart())
	assert.Equal(t, []labyrinth.Segment{labyrinth.Seg(5, -5, 5, 5)}, b.Walls())
	assert.Empty(t, b.Routes(), "routes are wiped by a new wall")
	assert.Contains(t, logs.String(), "Added wall")

	// markers survive, so the next marker click routes around the new wall
	b.SetDestination(destination)
	require.Len(t, b.Routes(), 1)
	assert.Len(t, b.Routes()[0], 2)
}

func TestClearDropsHalfDrawnWall(t *testing.T) {
	b := New(nil, nil)
	b.WallClick(labyrinth.Point{X: 1, Y: 1})

	b.Clear()

	assert.Nil(t, b.WallStart())
	b.WallClick(labyrinth.Point{X: 2, Y: 2})
	assert.Empty(t, b.Walls())
}

func TestNewCopiesWalls(t *testing.T) {
	walls := []labyrinth.Segment{labyrinth.Seg(5, -5, 5, 5)}
	b := New(walls, nil)

	walls[0] = labyrinth.Seg(100, 100, 101, 101)
	b.SetOrigin(origin)
	b.SetDestination(destination)

	assert.Len(t, b.Routes()[0], 2)
}

func TestGraphOverlay(t *testing.T) {
	b := New([]labyrinth.Segment{labyrinth.Seg(5, -5, 5, 5)}, nil)
	b.SetOrigin(origin)
	b.SetDestination(destination)
	assert.Nil(t, b.Graph())

	b.ToggleGraph()
	assert.Len(t, b.Graph(), 5)

	b.WallClick(labyrinth.Point{X: 20, Y: 20})
	b.WallClick(labyrinth.Point{X: 30, Y: 20})
	assert.Len(t, b.Graph(), 12, "overlay follows wall edits")

	b.ToggleGraph()
	assert.Nil(t, b.Graph())
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), labyrinth.DefaultWallsFile)
	b := New([]labyrinth.Segment{labyrinth.Seg(1, 2, 3, 4)}, nil)
	b.WallClick(labyrinth.Point{X: 5, Y: 6})
	b.WallClick(labyrinth.Point{X: 7, Y: 8})

	require.NoError(t, b.Save(path))

	walls, err := labyrinth.LoadWallsFile(path)
	require.NoError(t, err)
	assert.Equal(t, b.Walls(), walls)

	assert.Error(t, b.Save(filepath.Join(t.TempDir(), "nope", "walls.txt")))
}
