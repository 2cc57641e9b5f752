package osm2lanes

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

const (
	// earthRadius is the mean Earth radius used for the spherical model (meters)
	earthRadius = 6371010.0
	pi180       = math.Pi / 180.0
	pi180Rev    = 180.0 / math.Pi
)

var (
	// ErrParallelLines is returned by LineIntersection when two lines have no unique intersection point
	ErrParallelLines = errors.New("The lines are parallel")
)

// GeoPoint representation of point on Earth
type GeoPoint struct {
	Lat float64
	Lon float64
}

// String returns pretty printed value for for GeoPoint
func (gp GeoPoint) String() string {
	return fmt.Sprintf("Lon: %f | Lat: %f", gp.Lon, gp.Lat)
}

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// radiansTodegrees r = deg  * 180 / pi
func radiansTodegrees(d float64) float64 {
	return d * pi180Rev
}

// GreatCircleDistance returns distance between two geo-points (meters)
func GreatCircleDistance(p, q GeoPoint) float64 {
	lat1 := degreesToRadians(p.Lat)
	lon1 := degreesToRadians(p.Lon)
	lat2 := degreesToRadians(q.Lat)
	lon2 := degreesToRadians(q.Lon)
	diffLat := lat2 - lat1
	diffLon := lon2 - lon1
	a := math.Pow(math.Sin(diffLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(diffLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return c * earthRadius
}

// Bearing returns initial compass bearing from p to q in degrees within [0, 360)
func Bearing(p, q GeoPoint) float64 {
	lat1 := degreesToRadians(p.Lat)
	lat2 := degreesToRadians(q.Lat)
	diffLon := degreesToRadians(q.Lon - p.Lon)
	y := math.Sin(diffLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(diffLon)
	return math.Mod(radiansTodegrees(math.Atan2(y, x))+360, 360)
}

// RadialPoint returns the point reached by travelling given distance (meters) from p along given bearing (degrees).
// Negative distance moves backwards along the bearing.
func RadialPoint(p GeoPoint, bearing, distance float64) GeoPoint {
	lat1 := degreesToRadians(p.Lat)
	lon1 := degreesToRadians(p.Lon)
	theta := degreesToRadians(bearing)
	delta := distance / earthRadius

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) + math.Cos(lat1)*math.Sin(delta)*math.Cos(theta))
	lon2 := lon1 + math.Atan2(math.Sin(theta)*math.Sin(delta)*math.Cos(lat1), math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2))
	return GeoPoint{
		Lat: radiansTodegrees(lat2),
		Lon: radiansTodegrees(lon2),
	}
}

// LineIntersection returns intersection point of two lines (not segments)
// p1, p2 - first line
// p3, p4 - second line
// Note: coordinates are treated as Euclidean (Lon == X, Lat == Y)
func LineIntersection(p1, p2, p3, p4 GeoPoint) (GeoPoint, error) {
	// Coefficients of the linear equations
	a1 := p2.Lat - p1.Lat
	b1 := p1.Lon - p2.Lon
	c1 := a1*p1.Lon + b1*p1.Lat
	a2 := p4.Lat - p3.Lat
	b2 := p3.Lon - p4.Lon
	c2 := a2*p3.Lon + b2*p3.Lat

	det := a1*b2 - a2*b1
	if det == 0 {
		return GeoPoint{}, ErrParallelLines
	}
	return GeoPoint{
		Lon: (b2*c1 - b1*c2) / det,
		Lat: (a1*c2 - a2*c1) / det,
	}, nil
}

// getSphericalLength returns length for given line (meters)
func getSphericalLength(line []GeoPoint) float64 {
	totalLength := 0.0
	if len(line) < 2 {
		return totalLength
	}
	for i := 1; i < len(line); i++ {
		totalLength += GreatCircleDistance(line[i-1], line[i])
	}
	return totalLength
}

// reverseLine reverses order of points in given line. Returns new slice
func reverseLine(pts []GeoPoint) []GeoPoint {
	inputLen := len(pts)
	output := make([]GeoPoint, inputLen)
	for i, n := range pts {
		j := inputLen - i - 1
		output[j] = n
	}
	return output
}

// copyLine returns copy of given line
func copyLine(pts []GeoPoint) []GeoPoint {
	output := make([]GeoPoint, len(pts))
	copy(output, pts)
	return output
}

// closeRing appends first point of the ring to its end if ring is not closed yet
func closeRing(ring []GeoPoint) []GeoPoint {
	if len(ring) == 0 {
		return ring
	}
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring
}
