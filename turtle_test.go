package osm2lanes

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTurtleWay(t *testing.T) {
	table, err := SegmentGraph(sampleGraph(), true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.WriteTurtleWay(&buf, 10))
	doc := buf.String()

	assert.True(t, strings.HasPrefix(doc, "@prefix geo: <http://www.opengis.net/ont/geosparql#> ."))
	assert.Contains(t, doc, "osm:Way-10 a osm:Way ;")
	assert.Contains(t, doc, `osm:hasName "Main \"Street\""^^xsd:string ;`)
	assert.Contains(t, doc, `osm:inCity "Lübeck"^^xsd:string ;`)
	assert.Contains(t, doc, "osm:hasPart osm:WaySection-10-1 ;\n\tosm:hasPart osm:WaySection-10-2 .")
	assert.Contains(t, doc, "osm:WaySection-10-2 a osm:WaySection ;")
	assert.Contains(t, doc, "osm:hasWaySectionLane osm:WaySectionLane-10-1-1 ;\n\tosm:hasWaySectionLane osm:WaySectionLane-10-1-2 .")
	assert.Equal(t, 4, strings.Count(doc, "a osm:WaySectionLane ;"))
	assert.Equal(t, 4, strings.Count(doc, "a sf:Polygon ;"))
	assert.Contains(t, doc, "_:boundary10-2-2 a sf:Polygon ;\n\tgeo:asWKT \""+CRS84+"POLYGON((")
	assert.Contains(t, doc, "_:centerline10-1-1 a sf:LineString ;\n\tgeo:asWKT \""+CRS84+"LINESTRING(")

	section, _ := table.Get(10, 1)
	assert.Contains(t, doc, fmt.Sprintf("osm:hasLengthInMeter \"%.3f\"^^xsd:double", section.Length()))
}

func TestWriteTurtleWayOneway(t *testing.T) {
	table, err := SegmentGraph(sampleGraph(), true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.WriteTurtleWay(&buf, 20))
	doc := buf.String()
	assert.Contains(t, doc, `osm:hasName "unknown"^^xsd:string ;`)
	assert.Equal(t, 2, strings.Count(doc, "a osm:WaySectionLane ;"))
	assert.NotContains(t, doc, "WaySectionLane-20-1-2")

	err = table.WriteTurtleWay(&buf, 30)
	assert.Error(t, err)
}

func TestExportTurtle(t *testing.T) {
	table, err := SegmentGraph(sampleGraph(), true)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "turtle")
	written := []osm.WayID{}
	err = table.ExportTurtle(dir, func(wayID osm.WayID) {
		written = append(written, wayID)
	})
	require.NoError(t, err)
	assert.Equal(t, []osm.WayID{10, 20}, written)

	for _, name := range []string{"way-10.ttl", "way-20.ttl"} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.NotEmpty(t, content)
	}
}
