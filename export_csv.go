package osm2lanes

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownFormat = errors.New("Unknown geometry format")
)

// GeometryFormatter converts lines and rings to text of certain format
type GeometryFormatter struct {
	Line    func(pts []GeoPoint) string
	Polygon func(ring []GeoPoint) string
	Point   func(pt GeoPoint) string
}

// NewGeometryFormatter returns formatter for 'wkt', 'geojson' or 'polyline' (case insensitive)
func NewGeometryFormatter(format string) (GeometryFormatter, error) {
	switch strings.ToLower(format) {
	case GEOM_WKT:
		return GeometryFormatter{
			Line:    PrepareWKTLinestring,
			Polygon: PrepareWKTPolygon,
			Point:   PrepareWKTPoint,
		}, nil
	case GEOM_GEOJSON:
		return GeometryFormatter{
			Line:    PrepareGeoJSONLinestring,
			Polygon: PrepareGeoJSONPolygon,
			Point:   PrepareGeoJSONPoint,
		}, nil
	case GEOM_POLYLINE:
		return GeometryFormatter{
			Line: PreparePolyline,
			Polygon: func(ring []GeoPoint) string {
				return PreparePolyline(closeRing(copyLine(ring)))
			},
			Point: func(pt GeoPoint) string {
				return PreparePolyline([]GeoPoint{pt})
			},
		}, nil
	default:
		return GeometryFormatter{}, errors.Wrapf(ErrUnknownFormat, "Format '%s'", format)
	}
}

// WriteSectionsCSV writes every section of the table as a row (';' separated)
func (table *SectionTable) WriteSectionsCSV(w io.Writer, formatter GeometryFormatter) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'
	// 		section_id - string, "{way_id}-{index}"
	// 		way_id - int64, ID of OSM Way
	// 		section_index - int, 1-based number of section within the way
	// 		source_node - int64, ID of first OSM Node of the section
	// 		target_node - int64, ID of last OSM Node of the section
	// 		was_one_way - if parent way was one way
	// 		lanes_num - int, 1 or 2
	// 		length_meters - float64
	// 		name - string, street name or "no-name"
	// 		geom - geometry of the section
	err := writer.Write([]string{"section_id", "way_id", "section_index", "source_node", "target_node", "was_one_way", "lanes_num", "length_meters", "name", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	table.Each(func(section *WaySection) bool {
		err = writer.Write([]string{
			section.ID(),
			fmt.Sprintf("%d", section.wayID),
			fmt.Sprintf("%d", section.index),
			fmt.Sprintf("%d", section.sourceNodeID),
			fmt.Sprintf("%d", section.targetNodeID),
			fmt.Sprintf("%t", section.oneway),
			fmt.Sprintf("%d", section.LanesNum()),
			fmt.Sprintf("%.3f", section.Length()),
			section.name,
			formatter.Line(section.points),
		})
		return err == nil
	})
	if err != nil {
		return errors.Wrap(err, "Can't write section")
	}
	writer.Flush()
	return writer.Error()
}

// WriteLanesCSV writes every lane of the table as a row (';' separated)
func (table *SectionTable) WriteLanesCSV(w io.Writer, formatter GeometryFormatter, workers int, taper bool) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'
	// 		lane_id - string, "{way_id}-{section_index}-{lane_index}"
	// 		way_id - int64, ID of OSM Way
	// 		section_index - int
	// 		lane_index - int, 1 is left (or the only) lane, 2 is right one
	// 		source_node - int64, ID of first OSM Node of the section
	// 		target_node - int64, ID of last OSM Node of the section
	// 		was_one_way - if parent way was one way
	// 		length_meters - float64
	// 		name, city, postal_code, country - way metadata
	// 		center_line - geometry of lane center line
	// 		boundary - geometry of lane boundary polygon
	err := writer.Write([]string{"lane_id", "way_id", "section_index", "lane_index", "source_node", "target_node", "was_one_way", "length_meters", "name", "city", "postal_code", "country", "center_line", "boundary"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	for _, lane := range table.Lanes(workers, taper) {
		metadata, _ := table.Metadata(lane.WayID)
		section, _ := table.Get(lane.WayID, lane.SectionIndex)
		err = writer.Write([]string{
			lane.ID,
			fmt.Sprintf("%d", lane.WayID),
			fmt.Sprintf("%d", lane.SectionIndex),
			fmt.Sprintf("%d", lane.Index),
			fmt.Sprintf("%d", section.sourceNodeID),
			fmt.Sprintf("%d", section.targetNodeID),
			fmt.Sprintf("%t", lane.Oneway),
			fmt.Sprintf("%.3f", lane.Length),
			metadata.StreetName,
			metadata.City,
			metadata.PostalCode,
			metadata.Country,
			formatter.Line(lane.CenterLine),
			formatter.Polygon(lane.Boundary),
		})
		if err != nil {
			return errors.Wrapf(err, "Can't write lane '%s'", lane.ID)
		}
	}
	writer.Flush()
	return writer.Error()
}
