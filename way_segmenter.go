package osm2lanes

import (
	"github.com/pkg/errors"
)

var (
	// ErrMissingNode is returned when way references node which is not in the network
	ErrMissingNode = errors.New("No such node")
	// ErrShortWay is returned for ways with less than 2 node references
	ErrShortWay = errors.New("Way has less than 2 nodes")
)

// Segment splits way into sections.
//
// A section is closed at the last node of the way and, if split is true, at every node shared with another way.
// Closing node is the first point of the next section. Sections with less than 2 points are dropped.
func Segment(way *Way, network Network, split bool) ([]*WaySection, error) {
	if len(way.Nodes) < 2 {
		return nil, errors.Wrapf(ErrShortWay, "Way ID: '%d', nodes: %d", way.ID, len(way.Nodes))
	}
	name := way.Name()
	sections := []*WaySection{}
	points := make([]GeoPoint, 0, len(way.Nodes))
	sourceNodeID := way.Nodes[0]
	lastIdx := len(way.Nodes) - 1
	for i, nodeID := range way.Nodes {
		pt, ok := network.Coordinate(nodeID)
		if !ok {
			return nil, errors.Wrapf(ErrMissingNode, "Node ID: '%d', way ID: '%d'", nodeID, way.ID)
		}
		points = append(points, pt)
		isLast := i == lastIdx
		if !isLast && !(split && network.IntersectionDegree(nodeID) > 1) {
			continue
		}
		if len(points) > 1 {
			sections = append(sections, newWaySection(way.ID, len(sections)+1, name, way.Oneway, points, sourceNodeID, nodeID))
		}
		if !isLast {
			points = make([]GeoPoint, 0, lastIdx-i+1)
			points = append(points, pt)
			sourceNodeID = nodeID
		}
	}
	return sections, nil
}

// SegmentGraph splits every way of the graph into sections.
// Any structural fault of the graph aborts the whole run.
func SegmentGraph(graph *Graph, split bool) (*SectionTable, error) {
	builder := newSectionTableBuilder(graph.WaysNum())
	for _, way := range graph.Ways() {
		sections, err := Segment(way, graph, split)
		if err != nil {
			return nil, errors.Wrap(err, "Can't segment way")
		}
		builder.add(way.ID, NewMetadata(way.TagMap), sections)
	}
	return builder.build(), nil
}
