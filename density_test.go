package osm2lanes

import (
	"testing"
)

func TestClassifyDensity(t *testing.T) {
	cases := []struct {
		vehicles int
		length   float64
		expected DensityClass
	}{
		{0, 100, DENSITY_LOW},
		{0, 0, DENSITY_LOW},
		{1, 0, DENSITY_LOW},
		{5, -1, DENSITY_LOW},
		{1, 100, DENSITY_LOW},
		{1, 40, DENSITY_MEDIUM},
		{2, 40, DENSITY_MEDIUM},
		{3, 100, DENSITY_MEDIUM},
		{3, 40, DENSITY_HIGH},
		{1, 10, DENSITY_HIGH},
	}
	for _, c := range cases {
		got := ClassifyDensity(c.vehicles, c.length)
		if got != c.expected {
			t.Errorf("Density for %d vehicles on %f meters must be %s, but got %s", c.vehicles, c.length, c.expected, got)
		}
	}
}
