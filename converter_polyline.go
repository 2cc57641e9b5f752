package osm2lanes

import (
	polyline "github.com/twpayne/go-polyline"
)

// PreparePolyline returns encoded polyline (precision 5) representation of LineString
func PreparePolyline(pts []GeoPoint) string {
	coords := make([][]float64, len(pts))
	for i := range pts {
		coords[i] = []float64{pts[i].Lat, pts[i].Lon}
	}
	return string(polyline.EncodeCoords(coords))
}
