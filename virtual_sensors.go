package osm2lanes

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	VIRTUAL_SENSORS_FILE = "virtual-traffic-density-sensors.xml"
	VS_ONTOLOGY_FILE     = "vs-ontology.ttl"

	virtualTrafficDensitySensor     = "VirtualTrafficDensitySensor"
	virtualTrafficDensitySensorType = "http://example.org/vs#" + virtualTrafficDensitySensor
	laneFeatureOfInterestTemplate   = "http://example.org/osm#WaySectionLane-%s"
	trafficDensityProperty          = "http://example.org/osm#trafficDensity"

	vsOntology = "@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .\n" +
		"@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .\n" +
		"@prefix vs: <http://example.org/vs#> .\n" +
		"@prefix ssn: <http://purl.oclc.org/NET/ssnx/ssn#> .\n\n" +
		"vs:VirtualTrafficDensitySensor a rdfs:Class ;\n\t" +
		"rdfs:subClassOf ssn:Sensor .\n\n" +
		"vs:trafficDensity a rdfs:Class ;\n\t" +
		"rdfs:subClassOf ssn:Property ."

	// Breakpoints are the same as in ClassifyDensity
	densityQueryTemplate = "PREFIX veh: <http://example.org/vehicles#>\n" +
		"PREFIX osm: <http://example.org/osm#>\n" +
		"PREFIX geo: <http://www.opengis.net/ont/geosparql#>\n" +
		"PREFIX geof: <http://www.opengis.net/def/function/geosparql/>\n" +
		"PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>\n\n" +
		"SELECT (xsd:string(IF(COUNT(?veh) = 0, \"low\", IF(COUNT(?veh) / (?length / 40) < 1, \"low\",\n\t" +
		"IF(COUNT(?veh) / (?length / 40) > 2, \"high\", \"medium\")))) AS ?val) WHERE {\n\t" +
		"  ?veh a veh:Vehicle .\n\t" +
		"  ?veh veh:hasLocation ?loc .\n\t" +
		"  ?loc geo:asWKT ?point .\n\t" +
		"  osm:WaySectionLane-%[1]s osm:boundary ?bound .\n\t" +
		"  osm:WaySectionLane-%[1]s osm:hasLengthInMeter ?length .\n\t" +
		"  ?bound geo:asWKT ?polygon\n\t" +
		"  FILTER (geof:sfWithin(?point, ?polygon))\n" +
		"} GROUP BY ?length"
)

// VirtualSensor describes a traffic density sensor attached to a single lane
type VirtualSensor struct {
	SensorName        string `xml:"sensor-name"`
	SensorType        string `xml:"sensor-type"`
	FeatureOfInterest string `xml:"feature-of-interest"`
	ObservedProperty  string `xml:"observed-property"`
	SparqlQuery       string `xml:"sparql-query"`
}

// VirtualSensors is a list of virtual sensors
type VirtualSensors struct {
	XMLName xml.Name        `xml:"virtual-sensors"`
	Sensors []VirtualSensor `xml:"virtual-sensor"`
}

// NewVirtualSensor creates traffic density sensor for the lane with given ID
func NewVirtualSensor(laneID string) VirtualSensor {
	return VirtualSensor{
		SensorName:        virtualTrafficDensitySensor + "-" + laneID,
		SensorType:        virtualTrafficDensitySensorType,
		FeatureOfInterest: fmt.Sprintf(laneFeatureOfInterestTemplate, laneID),
		ObservedProperty:  trafficDensityProperty,
		SparqlQuery:       fmt.Sprintf(densityQueryTemplate, laneID),
	}
}

// VirtualSensors returns one sensor per lane of every section.
// Lane geometry is not needed, so lane IDs are derived from sections directly.
func (table *SectionTable) VirtualSensors() *VirtualSensors {
	sensors := &VirtualSensors{
		Sensors: make([]VirtualSensor, 0, table.LanesNum()),
	}
	table.Each(func(section *WaySection) bool {
		for laneIdx := 1; laneIdx <= section.LanesNum(); laneIdx++ {
			sensors.Sensors = append(sensors.Sensors, NewVirtualSensor(LaneID(section.wayID, section.index, laneIdx)))
		}
		return true
	})
	return sensors
}

// WriteXML writes indented XML document with sensors
func (sensors *VirtualSensors) WriteXML(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "    ")
	if err := encoder.Encode(sensors); err != nil {
		return errors.Wrap(err, "Can't encode virtual sensors")
	}
	return encoder.Flush()
}

// WriteOntology writes Turtle vocabulary of virtual sensors
func WriteOntology(w io.Writer) error {
	_, err := io.WriteString(w, vsOntology)
	return err
}

// ExportVirtualSensors writes sensors file and the ontology file into directory (created if needed)
func (table *SectionTable) ExportVirtualSensors(directory string) error {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return errors.Wrap(err, "Can't create directory")
	}
	sensorsFile := filepath.Join(directory, VIRTUAL_SENSORS_FILE)
	if err := writeFile(sensorsFile, table.VirtualSensors().WriteXML); err != nil {
		return errors.Wrapf(err, "Can't write file '%s'", sensorsFile)
	}
	ontologyFile := filepath.Join(directory, VS_ONTOLOGY_FILE)
	if err := writeFile(ontologyFile, WriteOntology); err != nil {
		return errors.Wrapf(err, "Can't write file '%s'", ontologyFile)
	}
	return nil
}

func writeFile(fname string, write func(w io.Writer) error) error {
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := write(file); err != nil {
		return err
	}
	return file.Close()
}
