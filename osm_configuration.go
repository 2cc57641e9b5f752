package osm2lanes

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Geometry formats of exported lines
const (
	GEOM_WKT      = "wkt"
	GEOM_GEOJSON  = "geojson"
	GEOM_POLYLINE = "polyline"
)

// OsmConfiguration Allows to filter ways by certain tags from OSM data and tunes sections export
type OsmConfiguration struct {
	EntityName string   `yaml:"entity_name" validate:"required,eq=highway"` // Currrently we support 'highway' only
	Preset     string   `yaml:"preset" validate:"omitempty,oneof=streets highways"`
	Tags       []string `yaml:"tags" validate:"required,min=1,dive,required"`
	SplitWays  bool     `yaml:"split_ways"`
	Taper      bool     `yaml:"taper"`
	Workers    int      `yaml:"workers" validate:"gte=0"`
	GeomFormat string   `yaml:"geom_format" validate:"oneof=wkt geojson polyline"`

	// SkipIncompleteWays drops ways with less than 2 nodes or with nodes absent from the file instead of failing the run
	SkipIncompleteWays bool `yaml:"skip_incomplete_ways"`
}

// DefaultConfiguration returns configuration for streets split at intersections
func DefaultConfiguration() *OsmConfiguration {
	return &OsmConfiguration{
		EntityName: "highway",
		Preset:     PRESET_STREETS,
		Tags:       presetTags(PRESET_STREETS),
		SplitWays:  true,
		Taper:      false,
		Workers:    0,
		GeomFormat: GEOM_WKT,

		SkipIncompleteWays: false,
	}
}

// LoadConfiguration reads YAML configuration file. Absent fields keep default values.
// If preset is given and tags are not, tags are taken from the preset.
func LoadConfiguration(path string) (*OsmConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read configuration file")
	}
	cfg := DefaultConfiguration()
	cfg.Tags = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "Can't parse configuration file")
	}
	if len(cfg.Tags) == 0 {
		cfg.Tags = presetTags(cfg.Preset)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration values
func (cfg *OsmConfiguration) Validate() error {
	err := validator.New().Struct(cfg)
	if err != nil {
		return errors.Wrap(err, "Invalid configuration")
	}
	return nil
}

// CheckTag Checks if incoming tag is represented in configuration
func (cfg *OsmConfiguration) CheckTag(tag string) bool {
	for i := range cfg.Tags {
		if cfg.Tags[i] == tag {
			return true
		}
	}
	return false
}
