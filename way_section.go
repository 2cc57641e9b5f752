package osm2lanes

import (
	"fmt"

	"github.com/paulmach/osm"
)

const (
	// NO_NAME is the name of sections whose way has no `name` tag
	NO_NAME = "no-name"
)

// WaySection is a contiguous part of a way between two split points.
//
// WaySection is created by the segmenter and never modified afterwards: accessors return copies.
type WaySection struct {
	wayID        osm.WayID
	index        int
	name         string
	points       []GeoPoint
	sourceNodeID osm.NodeID
	targetNodeID osm.NodeID
	oneway       bool
}

func newWaySection(wayID osm.WayID, index int, name string, oneway bool, points []GeoPoint, sourceNodeID, targetNodeID osm.NodeID) *WaySection {
	if name == "" {
		name = NO_NAME
	}
	return &WaySection{
		wayID:        wayID,
		index:        index,
		name:         name,
		points:       points,
		sourceNodeID: sourceNodeID,
		targetNodeID: targetNodeID,
		oneway:       oneway,
	}
}

// WayID returns ID of parent way
func (section *WaySection) WayID() osm.WayID {
	return section.wayID
}

// Index returns 1-based sequential number of the section within its way
func (section *WaySection) Index() int {
	return section.index
}

// ID returns "{wayID}-{index}" identifier of the section
func (section *WaySection) ID() string {
	return fmt.Sprintf("%d-%d", section.wayID, section.index)
}

// Name returns name of the section
func (section *WaySection) Name() string {
	return section.name
}

// IsOneWay returns true if parent way is one-way
func (section *WaySection) IsOneWay() bool {
	return section.oneway
}

// Points returns copy of section points
func (section *WaySection) Points() []GeoPoint {
	return copyLine(section.points)
}

// Begin returns first point of the section
func (section *WaySection) Begin() GeoPoint {
	return section.points[0]
}

// End returns last point of the section
func (section *WaySection) End() GeoPoint {
	return section.points[len(section.points)-1]
}

// SourceNodeID returns OSM ID of first node of the section
func (section *WaySection) SourceNodeID() osm.NodeID {
	return section.sourceNodeID
}

// TargetNodeID returns OSM ID of last node of the section
func (section *WaySection) TargetNodeID() osm.NodeID {
	return section.targetNodeID
}

// LanesNum returns 1 for one-way sections and 2 otherwise
func (section *WaySection) LanesNum() int {
	if section.oneway {
		return 1
	}
	return 2
}

// Length returns length of the section (meters)
func (section *WaySection) Length() float64 {
	return getSphericalLength(section.points)
}
