package osm2lanes

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/paulmach/osm"
)

// Lane is a single directional lane of a way section
type Lane struct {
	// "{wayID}-{sectionIndex}-{laneIndex}"
	ID           string
	WayID        osm.WayID
	SectionIndex int
	// 1 is the left (or the only) lane, 2 is the right one
	Index      int
	Oneway     bool
	Length     float64
	CenterLine []GeoPoint
	Boundary   []GeoPoint
}

// LaneID returns identifier of the lane
func LaneID(wayID osm.WayID, sectionIndex, laneIndex int) string {
	return fmt.Sprintf("%d-%d-%d", wayID, sectionIndex, laneIndex)
}

// Lanes returns lanes of the section. Every lane has length of the section
func (section *WaySection) Lanes(taper bool) []Lane {
	centerLines := section.LaneCenterLines()
	boundaries := section.LaneBoundaryPolygons(taper)
	length := section.Length()
	lanes := make([]Lane, len(centerLines))
	for i := range centerLines {
		lanes[i] = Lane{
			ID:           LaneID(section.wayID, section.index, i+1),
			WayID:        section.wayID,
			SectionIndex: section.index,
			Index:        i + 1,
			Oneway:       section.oneway,
			Length:       length,
			CenterLine:   centerLines[i],
			Boundary:     boundaries[i],
		}
	}
	return lanes
}

type sectionLanes struct {
	order int
	lanes []Lane
}

// Lanes computes lanes of every section using given number of workers (0 means number of CPUs).
// Lanes are returned in (way, section, lane) order.
func (table *SectionTable) Lanes(workers int, taper bool) []Lane {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	type job struct {
		order   int
		section *WaySection
	}
	pool := newWorkerPool[job, sectionLanes](workers, table.SectionsNum())
	pool.start(func(j job) sectionLanes {
		return sectionLanes{order: j.order, lanes: j.section.Lanes(taper)}
	})
	order := 0
	table.Each(func(section *WaySection) bool {
		pool.addJob(job{order: order, section: section})
		order++
		return true
	})
	pool.closeJobs()
	pool.wait()

	collected := make([]sectionLanes, 0, table.SectionsNum())
	for res := range pool.collectResults() {
		collected = append(collected, res)
	}
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].order < collected[j].order
	})
	lanes := make([]Lane, 0, table.LanesNum())
	for _, res := range collected {
		lanes = append(lanes, res.lanes...)
	}
	return lanes
}
