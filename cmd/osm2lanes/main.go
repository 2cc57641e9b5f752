package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LdDl/osm2lanes"
	"github.com/jessevdk/go-flags"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	FORMAT_TURTLE  = "turtle"
	FORMAT_SENSORS = "sensors"
	FORMAT_GEOJSON = "geojson"
	FORMAT_CSV     = "csv"
)

type Options struct {
	Logger LoggerOptions `group:"Logger options"`

	File       string `short:"f" long:"file"     description:"Filename of *.osm, *.osm.xml or *.osm.pbf file" required:"true"`
	ConfigFile string `short:"c" long:"config"   env:"CONFIG_FILE" description:"Path to YAML configuration file. Default configuration (streets preset) is used if not set"`
	Out        string `short:"o" long:"out"      description:"Output directory for 'turtle' and 'sensors' formats, output file for 'geojson' and 'csv' formats" default:"lanes"`
	Format     string `long:"format"             description:"Output format" choice:"turtle" choice:"sensors" choice:"geojson" choice:"csv" default:"turtle"`
	GeomFormat string `long:"geomf"              description:"Format of geometry in CSV output. Overrides configuration" choice:"wkt" choice:"geojson" choice:"polyline"`
	NoSplit    bool   `long:"no-split"           description:"Do not split ways at intersections. Overrides configuration"`
	Taper      bool   `long:"taper"              description:"Narrow lane boundaries and give them pointed end-caps. Overrides configuration"`
	SkipBroken bool   `long:"skip-incomplete"    description:"Drop ways with less than 2 nodes or with nodes absent from the file instead of failing. Overrides configuration"`
	Workers    int    `short:"w" long:"workers"  description:"Number of workers computing lane geometry. Overrides configuration if positive" default:"0"`
	Contract   bool   `long:"contract"           description:"Prepare contraction hierarchies over sections graph"`
	ChOut      string `long:"ch-out"             description:"Prefix of contraction hierarchies files: '{prefix}_vertices.csv' and '{prefix}_shortcuts.csv'" default:"sections"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := prepareConfiguration(&opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare configuration")
	}

	sectionsParser := osm2lanes.NewParser(
		osm2lanes.WithFilename(opts.File),
		osm2lanes.WithConfiguration(cfg),
		osm2lanes.WithLogger(log.Logger),
	)
	log.Debug().Msg(sectionsParser.String())

	st := time.Now()
	table, err := sectionsParser.Parse()
	if err != nil {
		log.Fatal().Err(err).Str("file", opts.File).Msg("Failed to parse OSM file")
	}

	formatter, err := osm2lanes.NewGeometryFormatter(cfg.GeomFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare geometry formatter")
	}

	err = export(table, &opts, cfg, formatter)
	if err != nil {
		log.Fatal().Err(err).Str("format", opts.Format).Str("out", opts.Out).Msg("Failed to export")
	}

	if opts.Contract {
		err = contractSections(table, opts.ChOut, formatter)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare contraction hierarchies")
		}
	}

	log.Info().
		Int("ways", table.WaysNum()).
		Int("sections", table.SectionsNum()).
		Int("lanes", table.LanesNum()).
		Dur("duration", time.Since(st)).
		Msg("Done")
}

func prepareConfiguration(opts *Options) (*osm2lanes.OsmConfiguration, error) {
	cfg := osm2lanes.DefaultConfiguration()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = osm2lanes.LoadConfiguration(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
	}
	if opts.NoSplit {
		cfg.SplitWays = false
	}
	if opts.Taper {
		cfg.Taper = true
	}
	if opts.SkipBroken {
		cfg.SkipIncompleteWays = true
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.GeomFormat != "" {
		cfg.GeomFormat = opts.GeomFormat
	}
	return cfg, cfg.Validate()
}

func export(table *osm2lanes.SectionTable, opts *Options, cfg *osm2lanes.OsmConfiguration, formatter osm2lanes.GeometryFormatter) error {
	switch opts.Format {
	case FORMAT_TURTLE:
		bar := newProgressBar(table.WaysNum(), "[cyan]Writing Turtle files...[reset]")
		defer bar.Finish()
		return table.ExportTurtle(opts.Out, func(osm.WayID) {
			bar.Add(1)
		})
	case FORMAT_SENSORS:
		return table.ExportVirtualSensors(opts.Out)
	case FORMAT_GEOJSON:
		fc := table.ToGeoJSON(cfg.Workers, cfg.Taper)
		b, err := fc.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "Can't marshal GeoJSON")
		}
		return os.WriteFile(opts.Out, b, 0644)
	case FORMAT_CSV:
		return exportCSV(table, opts.Out, cfg, formatter)
	default:
		return errors.Errorf("Unknown output format '%s'", opts.Format)
	}
}

// exportCSV writes lanes into 'out' and sections into '{out}_sections.csv'
func exportCSV(table *osm2lanes.SectionTable, out string, cfg *osm2lanes.OsmConfiguration, formatter osm2lanes.GeometryFormatter) error {
	base := strings.TrimSuffix(out, filepath.Ext(out))
	fnameLanes := base + ".csv"
	fnameSections := base + "_sections.csv"

	fileLanes, err := os.Create(fnameLanes)
	if err != nil {
		return errors.Wrap(err, "Can't create lanes file")
	}
	defer fileLanes.Close()
	if err = table.WriteLanesCSV(fileLanes, formatter, cfg.Workers, cfg.Taper); err != nil {
		return err
	}

	fileSections, err := os.Create(fnameSections)
	if err != nil {
		return errors.Wrap(err, "Can't create sections file")
	}
	defer fileSections.Close()
	return table.WriteSectionsCSV(fileSections, formatter)
}
