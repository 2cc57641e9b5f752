package osm2lanes

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type Parser struct {
	filename string
	cfg      *OsmConfiguration
	logger   zerolog.Logger

	// Overrides of configuration fields. Applied on top of cfg regardless of options order
	splitWays          *bool
	skipIncompleteWays *bool
}

func (parser *Parser) String() string {
	cfg := parser.Configuration()
	return fmt.Sprintf(`
Sections parser parameters:
	filename: '%s'
	entity_name: '%s'
	tags: '%s'
	split_ways: %t
	skip_incomplete_ways: %t
	taper: %t
	workers: %d
	geom_format: '%s'
	`,
		parser.filename,
		cfg.EntityName,
		strings.Join(cfg.Tags, ","),
		cfg.SplitWays,
		cfg.SkipIncompleteWays,
		cfg.Taper,
		cfg.Workers,
		cfg.GeomFormat,
	)
}

// NewParser returns parser with default configuration and disabled logging unless options override them
func NewParser(options ...func(*Parser)) *Parser {
	parser := &Parser{
		cfg:    DefaultConfiguration(),
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

func WithFilename(fileName string) func(*Parser) {
	return func(parser *Parser) {
		parser.filename = fileName
	}
}

func WithConfiguration(cfg *OsmConfiguration) func(*Parser) {
	return func(parser *Parser) {
		parser.cfg = cfg
	}
}

// WithSplitWays overrides 'split_ways' of configuration. Given configuration itself is not modified
func WithSplitWays(splitWays bool) func(*Parser) {
	return func(parser *Parser) {
		parser.splitWays = &splitWays
	}
}

// WithSkipIncompleteWays overrides 'skip_incomplete_ways' of configuration.
// When enabled, ways with less than 2 nodes or with absent nodes are dropped with warning instead of failing Parse
func WithSkipIncompleteWays(skip bool) func(*Parser) {
	return func(parser *Parser) {
		parser.skipIncompleteWays = &skip
	}
}

func WithLogger(logger zerolog.Logger) func(*Parser) {
	return func(parser *Parser) {
		parser.logger = logger
	}
}

// Configuration returns configuration used by parser: copy of the given one with overrides applied
func (parser *Parser) Configuration() *OsmConfiguration {
	cfg := *parser.cfg
	cfg.Tags = append([]string(nil), parser.cfg.Tags...)
	if parser.splitWays != nil {
		cfg.SplitWays = *parser.splitWays
	}
	if parser.skipIncompleteWays != nil {
		cfg.SkipIncompleteWays = *parser.skipIncompleteWays
	}
	return &cfg
}
