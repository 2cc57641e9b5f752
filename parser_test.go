package osm2lanes

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	parser := NewParser(
		WithFilename("testdata/sample.osm"),
		WithSkipIncompleteWays(true),
	)
	table, err := parser.Parse()
	require.NoError(t, err)

	assert.Equal(t, []osm.WayID{100, 200, 300}, table.WayIDs())
	assert.Equal(t, 5, table.SectionsNum())
	assert.Equal(t, 7, table.LanesNum())

	metadata, ok := table.Metadata(100)
	require.True(t, ok)
	assert.Equal(t, Metadata{Country: "DE", PostalCode: "23562", City: "Lübeck", StreetName: "Hauptstraße"}, metadata)

	sections := table.Sections(100)
	require.Len(t, sections, 2)
	assert.Equal(t, osm.NodeID(3), sections[0].TargetNodeID())
	assert.False(t, sections[0].IsOneWay())

	sections = table.Sections(200)
	require.Len(t, sections, 2)
	assert.True(t, sections[1].IsOneWay())
	assert.Equal(t, osm.NodeID(6), sections[1].TargetNodeID())

	// oneway=-1 reverses drawing order
	sections = table.Sections(300)
	require.Len(t, sections, 1)
	assert.Equal(t, osm.NodeID(8), sections[0].SourceNodeID())
	assert.Equal(t, osm.NodeID(4), sections[0].TargetNodeID())
	assert.Equal(t, GeoPoint{Lat: 53.861, Lon: 10.683}, sections[0].Begin())
}

func TestParseWithoutSplit(t *testing.T) {
	parser := NewParser(
		WithFilename("testdata/sample.osm"),
		WithSplitWays(false),
		WithSkipIncompleteWays(true),
	)
	table, err := parser.Parse()
	require.NoError(t, err)
	assert.Equal(t, 3, table.SectionsNum())
	assert.Equal(t, 4, table.LanesNum())
}

func TestParseHighwaysPreset(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.Preset = PRESET_HIGHWAYS
	cfg.Tags = presetTags(PRESET_HIGHWAYS)
	cfg.SkipIncompleteWays = true
	parser := NewParser(
		WithFilename("testdata/sample.osm"),
		WithConfiguration(cfg),
	)
	graph, err := parser.ReadGraph()
	require.NoError(t, err)
	// Way 500 is too short and way 600 references absent node
	assert.Equal(t, 4, graph.WaysNum())
	_, ok := graph.Way(600)
	assert.False(t, ok)
	assert.Equal(t, 2, graph.IntersectionDegree(5))

	table, err := SegmentGraph(graph, true)
	require.NoError(t, err)
	assert.Equal(t, 6, table.SectionsNum())
	assert.Equal(t, 9, table.LanesNum())
}

func TestParseIncompleteWays(t *testing.T) {
	// Way 500 has a single node
	_, err := NewParser(WithFilename("testdata/sample.osm")).Parse()
	assert.ErrorIs(t, err, ErrShortWay)

	// Way 200 references node 4 which is absent from the file
	_, err = NewParser(WithFilename("testdata/clipped.osm")).Parse()
	assert.ErrorIs(t, err, ErrMissingNode)

	graph, err := NewParser(WithFilename("testdata/clipped.osm")).ReadGraph()
	require.NoError(t, err)
	_, ok := graph.Way(200)
	assert.True(t, ok, "Incomplete way must be kept by default")

	table, err := NewParser(
		WithFilename("testdata/clipped.osm"),
		WithSkipIncompleteWays(true),
	).Parse()
	require.NoError(t, err)
	assert.Equal(t, []osm.WayID{100}, table.WayIDs())
	assert.Equal(t, 1, table.SectionsNum())

	cfg := DefaultConfiguration()
	cfg.SkipIncompleteWays = true
	table, err = NewParser(WithFilename("testdata/sample.osm"), WithConfiguration(cfg)).Parse()
	require.NoError(t, err)
	assert.Equal(t, []osm.WayID{100, 200, 300}, table.WayIDs())
}

func TestParserOverrides(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.SkipIncompleteWays = true

	parser := NewParser(
		WithFilename("testdata/sample.osm"),
		WithConfiguration(cfg),
		WithSplitWays(false),
	)
	assert.True(t, cfg.SplitWays, "Given configuration must not be modified")
	assert.False(t, parser.Configuration().SplitWays)
	table, err := parser.Parse()
	require.NoError(t, err)
	assert.Equal(t, 3, table.SectionsNum())

	// Order of options does not matter
	parser = NewParser(
		WithSplitWays(false),
		WithFilename("testdata/sample.osm"),
		WithConfiguration(cfg),
	)
	assert.False(t, parser.Configuration().SplitWays)
	table, err = parser.Parse()
	require.NoError(t, err)
	assert.Equal(t, 3, table.SectionsNum())
	assert.Contains(t, parser.String(), "split_ways: false")

	parser = NewParser(WithConfiguration(cfg), WithSkipIncompleteWays(false))
	assert.True(t, cfg.SkipIncompleteWays)
	assert.False(t, parser.Configuration().SkipIncompleteWays)
}

func TestParseErrors(t *testing.T) {
	_, err := NewParser(WithFilename("testdata/absent.osm")).Parse()
	assert.Error(t, err)

	cfg := DefaultConfiguration()
	cfg.GeomFormat = "svg"
	_, err = NewParser(WithFilename("testdata/sample.osm"), WithConfiguration(cfg)).Parse()
	assert.Error(t, err)
}
