package osm2lanes

import (
	"github.com/paulmach/osm"
)

const (
	// UNKNOWN is the value of metadata fields whose tags are absent
	UNKNOWN = "unknown"
)

// Metadata is per-way information taken from tags
type Metadata struct {
	Country    string
	PostalCode string
	City       string
	StreetName string
}

// NewMetadata extracts metadata from way tags
func NewMetadata(tags osm.Tags) Metadata {
	return Metadata{
		Country:    tagOrUnknown(tags, TAG_COUNTRY),
		PostalCode: tagOrUnknown(tags, TAG_POSTAL_CODE),
		City:       tagOrUnknown(tags, TAG_CITY),
		StreetName: tagOrUnknown(tags, TAG_NAME),
	}
}

func tagOrUnknown(tags osm.Tags, key string) string {
	if value := tags.Find(key); value != "" {
		return value
	}
	return UNKNOWN
}

// SectionTable is the result of a segmentation run: sections of every way keyed by way ID and section index,
// plus metadata of every way.
//
// SectionTable is never modified after SegmentGraph returns it, so it is safe for concurrent readers.
type SectionTable struct {
	wayIDs   []osm.WayID
	sections map[osm.WayID][]*WaySection
	metadata map[osm.WayID]Metadata
	total    int
	lanes    int
}

type sectionTableBuilder struct {
	table *SectionTable
}

func newSectionTableBuilder(waysNum int) *sectionTableBuilder {
	return &sectionTableBuilder{
		table: &SectionTable{
			wayIDs:   make([]osm.WayID, 0, waysNum),
			sections: make(map[osm.WayID][]*WaySection, waysNum),
			metadata: make(map[osm.WayID]Metadata, waysNum),
		},
	}
}

func (builder *sectionTableBuilder) add(wayID osm.WayID, metadata Metadata, sections []*WaySection) {
	table := builder.table
	if _, ok := table.metadata[wayID]; !ok {
		table.wayIDs = append(table.wayIDs, wayID)
	}
	for _, section := range table.sections[wayID] {
		table.total--
		table.lanes -= section.LanesNum()
	}
	table.metadata[wayID] = metadata
	table.sections[wayID] = sections
	for _, section := range sections {
		table.total++
		table.lanes += section.LanesNum()
	}
}

func (builder *sectionTableBuilder) build() *SectionTable {
	table := builder.table
	builder.table = nil
	return table
}

// WayIDs returns IDs of ways in segmentation order
func (table *SectionTable) WayIDs() []osm.WayID {
	ids := make([]osm.WayID, len(table.wayIDs))
	copy(ids, table.wayIDs)
	return ids
}

// Sections returns sections of the way ordered by index
func (table *SectionTable) Sections(wayID osm.WayID) []*WaySection {
	sections := table.sections[wayID]
	result := make([]*WaySection, len(sections))
	copy(result, sections)
	return result
}

// Get returns section by way ID and 1-based section index
func (table *SectionTable) Get(wayID osm.WayID, index int) (*WaySection, bool) {
	sections := table.sections[wayID]
	if index < 1 || index > len(sections) {
		return nil, false
	}
	return sections[index-1], true
}

// Metadata returns metadata of the way
func (table *SectionTable) Metadata(wayID osm.WayID) (Metadata, bool) {
	metadata, ok := table.metadata[wayID]
	return metadata, ok
}

// Each calls fn for every section in (way, index) order until fn returns false
func (table *SectionTable) Each(fn func(section *WaySection) bool) {
	for _, wayID := range table.wayIDs {
		for _, section := range table.sections[wayID] {
			if !fn(section) {
				return
			}
		}
	}
}

// WaysNum returns number of ways
func (table *SectionTable) WaysNum() int {
	return len(table.wayIDs)
}

// SectionsNum returns total number of sections
func (table *SectionTable) SectionsNum() int {
	return table.total
}

// LanesNum returns total number of lanes
func (table *SectionTable) LanesNum() int {
	return table.lanes
}
