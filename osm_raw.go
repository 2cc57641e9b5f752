package osm2lanes

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// OSMScanner is the common part of osmxml and osmpbf scanners
type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// newScanner guesses file format by extension and prepares scanner for it
func newScanner(ctx context.Context, filename string, reader io.Reader) (OSMScanner, error) {
	ext := filepath.Ext(filename)
	switch ext {
	case ".osm", ".xml":
		return osmxml.New(ctx, reader), nil
	case ".pbf":
		return osmpbf.New(ctx, reader, 4), nil
	default:
		return nil, errors.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
	}
}

// readOSM loads ways matching configuration and their nodes into graph.
// File is scanned twice: ways first, then nodes referenced by accepted ways.
func readOSM(ctx context.Context, filename string, cfg *OsmConfiguration, logger zerolog.Logger) (*Graph, error) {
	logger.Info().Str("file", filename).Msg("Opening file")
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open file")
	}
	defer file.Close()

	/* Process ways */
	st := time.Now()
	ways := []*Way{}
	nodesSeen := make(map[osm.NodeID]struct{})
	{
		scannerWays, err := newScanner(ctx, filename, file)
		if err != nil {
			return nil, err
		}
		defer scannerWays.Close()

		for scannerWays.Scan() {
			obj := scannerWays.Object()
			if obj.ObjectID().Type() != osm.TypeWay {
				continue
			}
			way := obj.(*osm.Way)
			preparedWay, ok := prepareWay(way, cfg, logger)
			if !ok {
				continue
			}
			for _, nodeID := range preparedWay.Nodes {
				nodesSeen[nodeID] = struct{}{}
			}
			ways = append(ways, preparedWay)
		}
		if err := scannerWays.Err(); err != nil {
			return nil, errors.Wrap(err, "Scanner error on Ways")
		}
	}
	logger.Info().Int("ways", len(ways)).Dur("duration", time.Since(st)).Msg("Ways processed")

	// Seek file to start
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking after ways scanning")
	}

	/* Process nodes */
	st = time.Now()
	graph := NewGraph()
	{
		scannerNodes, err := newScanner(ctx, filename, file)
		if err != nil {
			return nil, err
		}
		defer scannerNodes.Close()

		for scannerNodes.Scan() {
			obj := scannerNodes.Object()
			if obj.ObjectID().Type() != osm.TypeNode {
				continue
			}
			node := obj.(*osm.Node)
			if _, ok := nodesSeen[node.ID]; ok {
				delete(nodesSeen, node.ID)
				graph.AddNode(Node{ID: node.ID, Point: GeoPoint{Lat: node.Lat, Lon: node.Lon}})
			}
		}
		if err := scannerNodes.Err(); err != nil {
			return nil, errors.Wrap(err, "Scanner error on Nodes")
		}
	}
	logger.Info().Int("nodes", graph.NodesNum()).Int("missing_nodes", len(nodesSeen)).Dur("duration", time.Since(st)).Msg("Nodes processed")

	// Ways clipped by extract bounds reference nodes absent from the file.
	// Unless skipping is enabled they are kept and rejected by segmentation.
	skipped := 0
	for _, way := range ways {
		if cfg.SkipIncompleteWays && !hasAllNodes(way, nodesSeen) {
			logger.Warn().Int64("way_id", int64(way.ID)).Msg("Way references missing nodes. Skipping it")
			skipped++
			continue
		}
		graph.AddWay(way)
	}
	logger.Info().Int("ways", graph.WaysNum()).Int("skipped_ways", skipped).Msg("Graph prepared")
	return graph, nil
}

// prepareWay converts OSM way into graph way. Returns false if way does not pass configuration filter
func prepareWay(way *osm.Way, cfg *OsmConfiguration, logger zerolog.Logger) (*Way, bool) {
	tag := way.Tags.Find(cfg.EntityName)
	if tag == "" || !cfg.CheckTag(tag) {
		return nil, false
	}
	if len(way.Nodes) < 2 && cfg.SkipIncompleteWays {
		logger.Warn().Int64("way_id", int64(way.ID)).Int("nodes", len(way.Nodes)).Msg("Way has less than 2 nodes. Skipping it")
		return nil, false
	}
	if getHighwayType(tag) == 0 {
		logger.Warn().Str("highway", tag).Int64("way_id", int64(way.ID)).Msg("Unhandled `highway` tag value has been met")
	}
	preparedWay := &Way{
		ID:     way.ID,
		Nodes:  make([]osm.NodeID, 0, len(way.Nodes)),
		TagMap: make(osm.Tags, len(way.Tags)),
	}
	copy(preparedWay.TagMap, way.Tags)
	for _, node := range way.Nodes {
		preparedWay.Nodes = append(preparedWay.Nodes, node.ID)
	}
	switch kind := parseOneway(way.Tags); kind {
	case ONEWAY_FORWARD:
		preparedWay.Oneway = true
	case ONEWAY_BACKWARD:
		// Traffic goes against drawing direction: keep direction of points equal to direction of traffic
		preparedWay.Oneway = true
		for i, j := 0, len(preparedWay.Nodes)-1; i < j; i, j = i+1, j-1 {
			preparedWay.Nodes[i], preparedWay.Nodes[j] = preparedWay.Nodes[j], preparedWay.Nodes[i]
		}
	case ONEWAY_UNHANDLED:
		logger.Warn().Str("oneway", way.Tags.Find("oneway")).Int64("way_id", int64(way.ID)).Msg("Unhandled `oneway` tag value has been met")
	}
	return preparedWay, true
}

func hasAllNodes(way *Way, missing map[osm.NodeID]struct{}) bool {
	if len(missing) == 0 {
		return true
	}
	for _, nodeID := range way.Nodes {
		if _, ok := missing[nodeID]; ok {
			return false
		}
	}
	return true
}
