package osm2lanes

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func Round(x, unit float64) float64 {
	if x > 0 {
		return float64(int64(x/unit+0.5)) * unit
	}
	return float64(int64(x/unit-0.5)) * unit
}

func TestGreatCircleDistance(t *testing.T) {
	p1 := GeoPoint{
		Lon: 37.6417350769043,
		Lat: 55.751849391735284,
	}
	p2 := GeoPoint{
		Lon: 37.668514251708984,
		Lat: 55.73261980350401,
	}
	res := 2716.93 // meters
	gcd := GreatCircleDistance(p1, p2)
	if math.Abs(gcd-res)/res > 0.001 {
		t.Errorf("Great circle dist must be %f, but got %f", res, gcd)
	}
	if GreatCircleDistance(p1, p1) != 0 {
		t.Errorf("Distance between same points must be 0, but got %f", GreatCircleDistance(p1, p1))
	}
}

func TestBearing(t *testing.T) {
	origin := GeoPoint{Lat: 0, Lon: 0}
	cases := []struct {
		to      GeoPoint
		bearing float64
	}{
		{GeoPoint{Lat: 1, Lon: 0}, 0},
		{GeoPoint{Lat: 0, Lon: 1}, 90},
		{GeoPoint{Lat: -1, Lon: 0}, 180},
		{GeoPoint{Lat: 0, Lon: -1}, 270},
	}
	for _, c := range cases {
		b := Bearing(origin, c.to)
		if Round(b, 0.0001) != Round(c.bearing, 0.0001) {
			t.Errorf("Bearing to %v must be %f, but got %f", c.to, c.bearing, b)
		}
	}
}

func TestRadialPoint(t *testing.T) {
	origin := GeoPoint{Lat: 53.8655, Lon: 10.6866}
	for _, bearing := range []float64{0, 45, 90, 135, 180, 270, 359} {
		pt := RadialPoint(origin, bearing, 100)
		dist := GreatCircleDistance(origin, pt)
		if math.Abs(dist-100) > 1e-6 {
			t.Errorf("Radial point for bearing %f must be 100m away, but got %f", bearing, dist)
		}
		back := Bearing(origin, pt)
		diff := math.Mod(math.Abs(back-bearing), 360)
		if diff > 180 {
			diff = 360 - diff
		}
		if diff > 0.01 {
			t.Errorf("Radial point for bearing %f has bearing %f", bearing, back)
		}
	}
	// Negative distance moves backwards
	forward := RadialPoint(origin, 90, 10)
	backward := RadialPoint(origin, 90, -10)
	if !(forward.Lon > origin.Lon && backward.Lon < origin.Lon) {
		t.Errorf("Forward %v and backward %v points are not on opposite sides of %v", forward, backward, origin)
	}
}

func TestLineIntersection(t *testing.T) {
	pt, err := LineIntersection(
		GeoPoint{Lon: 0, Lat: 0}, GeoPoint{Lon: 2, Lat: 2},
		GeoPoint{Lon: 0, Lat: 2}, GeoPoint{Lon: 2, Lat: 0},
	)
	if err != nil {
		t.Error(err)
		return
	}
	if pt != (GeoPoint{Lon: 1, Lat: 1}) {
		t.Errorf("Intersection must be %v, but got %v", GeoPoint{Lon: 1, Lat: 1}, pt)
	}

	_, err = LineIntersection(
		GeoPoint{Lon: 0, Lat: 0}, GeoPoint{Lon: 1, Lat: 1},
		GeoPoint{Lon: 0, Lat: 1}, GeoPoint{Lon: 1, Lat: 2},
	)
	if !errors.Is(err, ErrParallelLines) {
		t.Errorf("Parallel lines must produce ErrParallelLines, but got %v", err)
	}
}

func TestSphericalLengthAdditive(t *testing.T) {
	line := []GeoPoint{
		{Lon: 37.396747, Lat: 55.8321},
		{Lon: 37.397111, Lat: 55.831987},
		{Lon: 37.397222, Lat: 55.831927},
		{Lon: 37.397322, Lat: 55.831851},
		{Lon: 37.397384, Lat: 55.83177},
		{Lon: 37.397415, Lat: 55.831684},
	}
	total := getSphericalLength(line)
	for i := 1; i < len(line)-1; i++ {
		parts := getSphericalLength(line[:i+1]) + getSphericalLength(line[i:])
		if math.Abs(parts-total) > 1e-9 {
			t.Errorf("Split at %d gives %f, but whole line is %f", i, parts, total)
		}
	}
	if getSphericalLength(line[:1]) != 0 {
		t.Errorf("Length of single point line must be 0")
	}
}

func TestReverseLine(t *testing.T) {
	line := []GeoPoint{{Lon: 1}, {Lon: 2}, {Lon: 3}}
	reversed := reverseLine(line)
	if reversed[0] != line[2] || reversed[2] != line[0] {
		t.Errorf("Reversed line must be %v, but got %v", []GeoPoint{{Lon: 3}, {Lon: 2}, {Lon: 1}}, reversed)
	}
	if line[0].Lon != 1 {
		t.Errorf("Source line must not be modified")
	}
}

func TestCloseRing(t *testing.T) {
	ring := closeRing([]GeoPoint{{Lon: 1}, {Lon: 2}, {Lon: 3}})
	if len(ring) != 4 || ring[0] != ring[3] {
		t.Errorf("Ring must be closed, but got %v", ring)
	}
	closed := closeRing(ring)
	if len(closed) != 4 {
		t.Errorf("Closed ring must not be extended, but got %v", closed)
	}
}
