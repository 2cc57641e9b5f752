package osm2lanes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.SplitWays)
	assert.False(t, cfg.SkipIncompleteWays)
	assert.True(t, cfg.CheckTag("residential"))
	assert.False(t, cfg.CheckTag("footway"))
}

func TestLoadConfiguration(t *testing.T) {
	cfg, err := LoadConfiguration(writeConfig(t, "preset: highways\nsplit_ways: false\ngeom_format: polyline\nworkers: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, "highway", cfg.EntityName)
	assert.False(t, cfg.SplitWays)
	assert.Equal(t, GEOM_POLYLINE, cfg.GeomFormat)
	assert.Equal(t, 4, cfg.Workers)
	assert.Len(t, cfg.Tags, len(highwaysTypes))
	assert.True(t, cfg.CheckTag("footway"))

	cfg, err = LoadConfiguration(writeConfig(t, "tags:\n  - primary\n  - secondary\ntaper: true\nskip_incomplete_ways: true\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"primary", "secondary"}, cfg.Tags)
	assert.True(t, cfg.Taper)
	assert.True(t, cfg.SkipIncompleteWays)
	assert.True(t, cfg.SplitWays, "Absent fields must keep default values")
}

func TestLoadConfigurationInvalid(t *testing.T) {
	_, err := LoadConfiguration(writeConfig(t, "geom_format: svg\n"))
	assert.Error(t, err)

	_, err = LoadConfiguration(writeConfig(t, "entity_name: railway\n"))
	assert.Error(t, err)

	_, err = LoadConfiguration(writeConfig(t, "preset: unknown\n"))
	assert.Error(t, err)

	_, err = LoadConfiguration(writeConfig(t, "workers: [1\n"))
	assert.Error(t, err)

	_, err = LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestParseOneway(t *testing.T) {
	cases := []struct {
		tags     osm.Tags
		expected onewayKind
	}{
		{osm.Tags{}, ONEWAY_NO},
		{osm.Tags{{Key: "oneway", Value: "yes"}}, ONEWAY_FORWARD},
		{osm.Tags{{Key: "oneway", Value: "1"}}, ONEWAY_FORWARD},
		{osm.Tags{{Key: "oneway", Value: "no"}}, ONEWAY_NO},
		{osm.Tags{{Key: "oneway", Value: "-1"}}, ONEWAY_BACKWARD},
		{osm.Tags{{Key: "oneway", Value: "reversible"}}, ONEWAY_NO},
		{osm.Tags{{Key: "oneway", Value: "maybe"}}, ONEWAY_UNHANDLED},
		{osm.Tags{{Key: "junction", Value: "roundabout"}}, ONEWAY_FORWARD},
		{osm.Tags{{Key: "junction", Value: "roundabout"}, {Key: "oneway", Value: "no"}}, ONEWAY_NO},
	}
	for _, c := range cases {
		got := parseOneway(c.tags)
		if got != c.expected {
			t.Errorf("Oneway kind for tags %v must be %s, but got %s", c.tags, c.expected, got)
		}
	}
}
