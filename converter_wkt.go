package osm2lanes

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

func toOrbPoint(pt GeoPoint) orb.Point {
	return orb.Point{pt.Lon, pt.Lat}
}

func toOrbLineString(pts []GeoPoint) orb.LineString {
	line := make(orb.LineString, len(pts))
	for i := range pts {
		line[i] = toOrbPoint(pts[i])
	}
	return line
}

func toOrbRing(pts []GeoPoint) orb.Ring {
	return orb.Ring(toOrbLineString(closeRing(copyLine(pts))))
}

// PrepareWKTLinestring returns WKT representation of LineString
func PrepareWKTLinestring(pts []GeoPoint) string {
	return wkt.MarshalString(toOrbLineString(pts))
}

// PrepareWKTPolygon returns WKT representation of Polygon with single (outer) ring
func PrepareWKTPolygon(ring []GeoPoint) string {
	return wkt.MarshalString(orb.Polygon{toOrbRing(ring)})
}

// PrepareWKTPoint returns WKT representation of Point
func PrepareWKTPoint(pt GeoPoint) string {
	return wkt.MarshalString(toOrbPoint(pt))
}
