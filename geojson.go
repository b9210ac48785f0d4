package labyrinth

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// Feature "kind" property values written by RouteGeoJSON.
const (
	KindWall  = "wall"
	KindRoute = "route"
)

// LoadWallsGeoJSON converts a GeoJSON FeatureCollection into walls.
// LineStrings contribute one wall per pair of consecutive vertices, polygon
// rings one wall per edge. Point geometries carry no walls and are skipped.
func LoadWallsGeoJSON(data []byte) ([]Segment, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse GeoJSON")
	}

	walls := make([]Segment, 0)
	for _, feature := range fc.Features {
		walls = append(walls, geometryWalls(feature.Geometry)...)
	}
	return walls, nil
}

// geometryWalls converts GeoJSON geometry to walls
func geometryWalls(geometry orb.Geometry) []Segment {
	var walls []Segment

	switch g := geometry.(type) {
	case orb.LineString:
		walls = append(walls, lineWalls(g)...)
	case orb.MultiLineString:
		for _, ls := range g {
			walls = append(walls, lineWalls(ls)...)
		}
	case orb.Ring:
		walls = append(walls, ringWalls(g)...)
	case orb.Polygon:
		for _, ring := range g {
			walls = append(walls, ringWalls(ring)...)
		}
	case orb.MultiPolygon:
		for _, polygon := range g {
			for _, ring := range polygon {
				walls = append(walls, ringWalls(ring)...)
			}
		}
	case orb.Collection:
		for _, inner := range g {
			walls = append(walls, geometryWalls(inner)...)
		}
	}

	return walls
}

func lineWalls(ls orb.LineString) []Segment {
	walls := make([]Segment, 0, len(ls))
	for i := 0; i+1 < len(ls); i++ {
		walls = append(walls, Segment{P1: fromOrb(ls[i]), P2: fromOrb(ls[i+1])})
	}
	return walls
}

// ringWalls walks the ring's edges, closing it if the last vertex does not
// repeat the first
func ringWalls(ring orb.Ring) []Segment {
	walls := lineWalls(orb.LineString(ring))
	if n := len(ring); n > 2 && ring[0] != ring[n-1] {
		walls = append(walls, Segment{P1: fromOrb(ring[n-1]), P2: fromOrb(ring[0])})
	}
	return walls
}

// RouteGeoJSON builds a FeatureCollection with every wall as a LineString
// feature and, when route is non-nil, the route as one more LineString
// carrying its length.
func RouteGeoJSON(walls []Segment, origin Point, route []Segment) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i, wall := range walls {
		f := geojson.NewFeature(orb.LineString{wall.P1.Orb(), wall.P2.Orb()})
		f.Properties["kind"] = KindWall
		f.Properties["index"] = i
		fc.Append(f)
	}

	if route != nil {
		ls := make(orb.LineString, 0, len(route)+1)
		for _, p := range Waypoints(route, origin) {
			ls = append(ls, p.Orb())
		}
		f := geojson.NewFeature(ls)
		f.Properties["kind"] = KindRoute
		f.Properties["legs"] = len(route)
		f.Properties["length"] = planar.Length(ls)
		fc.Append(f)
	}

	return fc
}

// Orb converts the point for use with paulmach/orb.
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

func fromOrb(p orb.Point) Point {
	return Point{X: p.X(), Y: p.Y()}
}
