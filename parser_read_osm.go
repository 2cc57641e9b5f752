package osm2lanes

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ReadGraph loads way/node graph from the file
func (parser *Parser) ReadGraph() (*Graph, error) {
	cfg := parser.Configuration()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	graph, err := readOSM(context.Background(), parser.filename, cfg, parser.logger)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse OSM data")
	}
	return graph, nil
}

// Parse loads the file and splits its ways into sections.
// Ways with less than 2 nodes or with nodes absent from the file fail it with ErrShortWay or ErrMissingNode
// unless skipping of incomplete ways is enabled
func (parser *Parser) Parse() (*SectionTable, error) {
	graph, err := parser.ReadGraph()
	if err != nil {
		return nil, err
	}
	st := time.Now()
	table, err := SegmentGraph(graph, parser.Configuration().SplitWays)
	if err != nil {
		return nil, errors.Wrap(err, "Can't prepare way sections")
	}
	parser.logger.Info().
		Int("ways", table.WaysNum()).
		Int("sections", table.SectionsNum()).
		Int("lanes", table.LanesNum()).
		Dur("duration", time.Since(st)).
		Msg("Way sections created")
	return table, nil
}
