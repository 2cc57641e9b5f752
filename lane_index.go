package osm2lanes

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// minimal side of lane bounding box (degrees)
const boundsTolerance = 1e-9

type laneRect struct {
	lane   *Lane
	ring   orb.Ring
	bounds rtreego.Rect
}

func (lr *laneRect) Bounds() rtreego.Rect {
	return lr.bounds
}

// LaneIndex is a spatial index over lane boundaries
type LaneIndex struct {
	tree  *rtreego.Rtree
	lanes []Lane
}

// NewLaneIndex builds index over untapered boundaries of every lane of the table
func NewLaneIndex(table *SectionTable, workers int) (*LaneIndex, error) {
	lanes := table.Lanes(workers, false)
	index := &LaneIndex{
		tree:  rtreego.NewTree(2, 25, 50),
		lanes: lanes,
	}
	for i := range index.lanes {
		lane := &index.lanes[i]
		ring := toOrbRing(lane.Boundary)
		bound := ring.Bound()
		rect, err := rtreego.NewRect(
			rtreego.Point{bound.Min.Lat(), bound.Min.Lon()},
			[]float64{math.Max(bound.Max.Lat()-bound.Min.Lat(), boundsTolerance), math.Max(bound.Max.Lon()-bound.Min.Lon(), boundsTolerance)},
		)
		if err != nil {
			return nil, err
		}
		index.tree.Insert(&laneRect{lane: lane, ring: ring, bounds: rect})
	}
	return index, nil
}

// Locate returns lanes whose boundaries contain the point
func (index *LaneIndex) Locate(pt GeoPoint) []*Lane {
	query := rtreego.Point{pt.Lat, pt.Lon}.ToRect(boundsTolerance)
	candidates := index.tree.SearchIntersect(query)
	found := make([]*Lane, 0, len(candidates))
	orbPt := toOrbPoint(pt)
	for _, candidate := range candidates {
		lr := candidate.(*laneRect)
		if planar.RingContains(lr.ring, orbPt) {
			found = append(found, lr.lane)
		}
	}
	return found
}

// Densities classifies traffic density of every lane given vehicle positions.
// Vehicle located inside several overlapping lanes is counted for each of them.
func (index *LaneIndex) Densities(vehicles []GeoPoint) map[string]DensityClass {
	counts := make(map[string]int, len(index.lanes))
	for _, vehicle := range vehicles {
		for _, lane := range index.Locate(vehicle) {
			counts[lane.ID]++
		}
	}
	result := make(map[string]DensityClass, len(index.lanes))
	for _, lane := range index.lanes {
		result[lane.ID] = ClassifyDensity(counts[lane.ID], lane.Length)
	}
	return result
}

// Size returns number of indexed lanes
func (index *LaneIndex) Size() int {
	return len(index.lanes)
}
