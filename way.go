package osm2lanes

import (
	"github.com/paulmach/osm"
)

const (
	TAG_NAME        = "name"
	TAG_COUNTRY     = "addr:country"
	TAG_POSTAL_CODE = "addr:postcode"
	TAG_CITY        = "addr:city"
)

// Way is an ordered path through road network nodes
type Way struct {
	ID     osm.WayID
	Nodes  []osm.NodeID
	Oneway bool
	TagMap osm.Tags
}

// Name returns value of `name` tag (empty string if absent)
func (way *Way) Name() string {
	return way.TagMap.Find(TAG_NAME)
}
