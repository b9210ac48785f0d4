package labyrinth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wallsGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"geometry": {"type": "LineString", "coordinates": [[0, 0], [10, 0], [10, 10]]},
			"properties": {"name": "corridor"}
		},
		{
			"type": "Feature",
			"geometry": {"type": "Polygon", "coordinates": [[[20, 20], [30, 20], [30, 30], [20, 20]]]},
			"properties": {}
		},
		{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [5, 5]},
			"properties": {}
		},
		{
			"type": "Feature",
			"geometry": {"type": "MultiLineString", "coordinates": [[[0, 50], [5, 50]], [[7, 50], [9, 50]]]},
			"properties": {}
		}
	]
}`

func TestLoadWallsGeoJSON(t *testing.T) {
	walls, err := LoadWallsGeoJSON([]byte(wallsGeoJSON))

	require.NoError(t, err)
	assert.Equal(t, []Segment{
		Seg(0, 0, 10, 0),
		Seg(10, 0, 10, 10),
		Seg(20, 20, 30, 20),
		Seg(30, 20, 30, 30),
		Seg(30, 30, 20, 20),
		Seg(0, 50, 5, 50),
		Seg(7, 50, 9, 50),
	}, walls)
}

func TestLoadWallsGeoJSONInvalid(t *testing.T) {
	_, err := LoadWallsGeoJSON([]byte(`{"type": "FeatureCollection", "features": [`))
	assert.Error(t, err)
}

func TestRingWallsClosesOpenRing(t *testing.T) {
	walls := ringWalls(orb.Ring{{0, 0}, {1, 0}, {1, 1}})

	assert.Equal(t, []Segment{Seg(0, 0, 1, 0), Seg(1, 0, 1, 1), Seg(1, 1, 0, 0)}, walls)
}

func TestLoadWallsAutoGeoJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walls.geojson")
	require.NoError(t, os.WriteFile(path, []byte(wallsGeoJSON), 0644))

	walls, err := LoadWallsAuto(path)

	require.NoError(t, err)
	assert.Len(t, walls, 7)
}

func TestRouteGeoJSON(t *testing.T) {
	walls := []Segment{Seg(5, -5, 5, 5)}
	route, ok := FindPath(walls, Point{0, 0}, Point{10, 0})
	require.True(t, ok)

	fc := RouteGeoJSON(walls, Point{0, 0}, route)

	require.Len(t, fc.Features, 2)
	assert.Equal(t, KindWall, fc.Features[0].Properties["kind"])
	assert.Equal(t, orb.LineString{{5, -5}, {5, 5}}, fc.Features[0].Geometry)

	last := fc.Features[1]
	assert.Equal(t, KindRoute, last.Properties["kind"])
	assert.Equal(t, 2, last.Properties["legs"])
	assert.InDelta(t, PathLength(route), last.Properties["length"], 1e-9)
	require.IsType(t, orb.LineString{}, last.Geometry)
	assert.Len(t, last.Geometry.(orb.LineString), 3)

	data, err := json.Marshal(fc)
	require.NoError(t, err)

	// walls written out load back in, the route line included
	back, err := LoadWallsGeoJSON(data)
	require.NoError(t, err)
	assert.Equal(t, append([]Segment{walls[0]}, route...), back)
}

func TestRouteGeoJSONWithoutRoute(t *testing.T) {
	fc := RouteGeoJSON([]Segment{Seg(0, 0, 1, 1)}, Point{}, nil)
	assert.Len(t, fc.Features, 1)
}
