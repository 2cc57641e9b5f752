package osm2lanes

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

const (
	// CRS84 is IRI of WGS84 reference system with lon/lat axis order. It prefixes WKT literals
	CRS84 = "<http://www.opengis.net/def/crs/OGC/1.3/CRS84>"

	turtlePrefixes = "@prefix geo: <http://www.opengis.net/ont/geosparql#> .\n" +
		"@prefix osm: <http://example.org/osm#> .\n" +
		"@prefix sf: <http://www.opengis.net/ont/sf#> .\n" +
		"@prefix xsd: <http://www.w3.org/2001/XMLSchema#> ."

	turtleWayTemplate = "osm:Way-%d a osm:Way ;\n\t" +
		"osm:hasName \"%s\"^^xsd:string ;\n\t" +
		"osm:inAreaWithPostalCode \"%s\"^^xsd:string ;\n\t" +
		"osm:inCity \"%s\"^^xsd:string ;\n\t" +
		"osm:inCountry \"%s\"^^xsd:string"

	turtleWayHasSectionTemplate = " ;\n\tosm:hasPart osm:WaySection-%s"

	turtleSectionTemplate = "osm:WaySection-%s a osm:WaySection ;\n\t" +
		"osm:hasLengthInMeter \"%.3f\"^^xsd:double"

	turtleSectionHasLaneTemplate = " ;\n\tosm:hasWaySectionLane osm:WaySectionLane-%s"

	turtleLaneTemplate = "osm:WaySectionLane-%[1]s a osm:WaySectionLane ;\n\t" +
		"osm:hasLengthInMeter \"%.3[2]f\"^^xsd:double ;\n\t" +
		"osm:boundary _:boundary%[1]s ;\n\t" +
		"osm:centerLine _:centerline%[1]s .\n\n" +
		"_:boundary%[1]s a sf:Polygon ;\n\t" +
		"geo:asWKT \"%[3]s\"^^geo:wktLiteral .\n\n" +
		"_:centerline%[1]s a sf:LineString ;\n\t" +
		"geo:asWKT \"%[4]s\"^^geo:wktLiteral ."
)

var turtleEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)

func turtleComment(comment string) string {
	return "##################################################\n" +
		"# " + comment + "\n" +
		"##################################################"
}

// WriteTurtleWay writes RDF (Turtle) description of the way, its sections and their lanes
func (table *SectionTable) WriteTurtleWay(w io.Writer, wayID osm.WayID) error {
	metadata, ok := table.Metadata(wayID)
	if !ok {
		return errors.Errorf("No such way '%d'", wayID)
	}
	sections := table.Sections(wayID)

	var sb strings.Builder
	sb.WriteString(turtlePrefixes)
	sb.WriteString("\n\n")
	sb.WriteString(turtleComment(fmt.Sprintf("Way %d", wayID)))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, turtleWayTemplate, wayID,
		turtleEscaper.Replace(metadata.StreetName),
		turtleEscaper.Replace(metadata.PostalCode),
		turtleEscaper.Replace(metadata.City),
		turtleEscaper.Replace(metadata.Country),
	)
	for _, section := range sections {
		fmt.Fprintf(&sb, turtleWayHasSectionTemplate, section.ID())
	}
	sb.WriteString(" .\n\n")

	for _, section := range sections {
		lanes := section.Lanes(false)
		sb.WriteString(turtleComment("Way Section " + section.ID()))
		sb.WriteString("\n\n")
		fmt.Fprintf(&sb, turtleSectionTemplate, section.ID(), section.Length())
		for _, lane := range lanes {
			fmt.Fprintf(&sb, turtleSectionHasLaneTemplate, lane.ID)
		}
		sb.WriteString(" .")
		for _, lane := range lanes {
			sb.WriteString("\n\n")
			sb.WriteString(turtleComment("Section Lane " + lane.ID))
			sb.WriteString("\n\n")
			fmt.Fprintf(&sb, turtleLaneTemplate, lane.ID, lane.Length,
				CRS84+PrepareWKTPolygon(lane.Boundary),
				CRS84+PrepareWKTLinestring(lane.CenterLine),
			)
		}
		sb.WriteString("\n\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// ExportTurtle writes one `way-{id}.ttl` file per way into directory (created if needed).
// onWay (if not nil) is called after every written file.
func (table *SectionTable) ExportTurtle(directory string, onWay func(wayID osm.WayID)) error {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return errors.Wrap(err, "Can't create directory")
	}
	for _, wayID := range table.wayIDs {
		fname := filepath.Join(directory, fmt.Sprintf("way-%d.ttl", wayID))
		err := writeFile(fname, func(w io.Writer) error {
			return table.WriteTurtleWay(w, wayID)
		})
		if err != nil {
			return errors.Wrapf(err, "Can't write file '%s'", fname)
		}
		if onWay != nil {
			onWay(wayID)
		}
	}
	return nil
}
