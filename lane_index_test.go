package osm2lanes

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaneIndexLocate(t *testing.T) {
	nodes := lineNodes(2)
	graph := newTestGraph(nodes, &Way{ID: 1, Nodes: []osm.NodeID{1, 2}})
	table, err := SegmentGraph(graph, true)
	require.NoError(t, err)

	index, err := NewLaneIndex(table, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, index.Size())

	found := index.Locate(GeoPoint{Lat: 0.00001, Lon: 0.0005})
	require.Len(t, found, 1)
	assert.Equal(t, "1-1-1", found[0].ID)

	found = index.Locate(GeoPoint{Lat: -0.00001, Lon: 0.0005})
	require.Len(t, found, 1)
	assert.Equal(t, "1-1-2", found[0].ID)

	assert.Empty(t, index.Locate(GeoPoint{Lat: 0.001, Lon: 0.0005}))
	assert.Empty(t, index.Locate(GeoPoint{Lat: 0.00001, Lon: 0.002}))
}

func TestLaneIndexDensities(t *testing.T) {
	nodes := lineNodes(2)
	graph := newTestGraph(nodes, &Way{ID: 1, Nodes: []osm.NodeID{1, 2}})
	table, err := SegmentGraph(graph, true)
	require.NoError(t, err)
	index, err := NewLaneIndex(table, 1)
	require.NoError(t, err)

	// Lane is ~111 meters long: 3 vehicles give ratio ~1.08
	vehicles := []GeoPoint{
		{Lat: 0.00001, Lon: 0.0002},
		{Lat: 0.00001, Lon: 0.0005},
		{Lat: 0.00002, Lon: 0.0008},
		{Lat: 0.01, Lon: 0.01},
	}
	densities := index.Densities(vehicles)
	assert.Equal(t, map[string]DensityClass{
		"1-1-1": DENSITY_MEDIUM,
		"1-1-2": DENSITY_LOW,
	}, densities)
}
