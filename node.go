package osm2lanes

import (
	"github.com/paulmach/osm"
)

// Node is a single road network point
type Node struct {
	ID    osm.NodeID
	Point GeoPoint
}
