package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/LdDl/ch"
	"github.com/LdDl/osm2lanes"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// contractSections builds graph of sections (vertices are OSM nodes at section ends, weights are lengths in meters),
// prepares contraction hierarchies and writes '{basename}_vertices.csv' and '{basename}_shortcuts.csv'
func contractSections(table *osm2lanes.SectionTable, basename string, formatter osm2lanes.GeometryFormatter) error {
	graph := ch.Graph{}
	verticesGeoms := make(map[int64]osm2lanes.GeoPoint)

	var err error
	edges := 0
	table.Each(func(section *osm2lanes.WaySection) bool {
		source := int64(section.SourceNodeID())
		target := int64(section.TargetNodeID())
		if _, ok := verticesGeoms[source]; !ok {
			verticesGeoms[source] = section.Begin()
		}
		if _, ok := verticesGeoms[target]; !ok {
			verticesGeoms[target] = section.End()
		}
		err = graph.CreateVertex(source)
		if err != nil {
			err = errors.Wrap(err, "Can not create source vertex")
			return false
		}
		err = graph.CreateVertex(target)
		if err != nil {
			err = errors.Wrap(err, "Can not create target vertex")
			return false
		}
		// Loops do not shorten any path
		if source == target {
			return true
		}
		cost := section.Length()
		err = graph.AddEdge(source, target, cost)
		if err != nil {
			err = errors.Wrapf(err, "Can not add edge for section '%s'", section.ID())
			return false
		}
		edges++
		if !section.IsOneWay() {
			err = graph.AddEdge(target, source, cost)
			if err != nil {
				err = errors.Wrapf(err, "Can not add reversed edge for section '%s'", section.ID())
				return false
			}
			edges++
		}
		return true
	})
	if err != nil {
		return err
	}

	log.Info().Int("vertices", len(graph.Vertices)).Int("edges", edges).Msg("Starting contraction process")
	st := time.Now()
	graph.PrepareContractionHierarchies()
	log.Info().Dur("duration", time.Since(st)).Msg("Done contraction process")

	fnameVertices := basename + "_vertices.csv"
	fileVertices, err := os.Create(fnameVertices)
	if err != nil {
		return errors.Wrap(err, "Can't create vertices file")
	}
	defer fileVertices.Close()
	writerVertices := csv.NewWriter(fileVertices)
	writerVertices.Comma = ';'
	// 		vertex_id - int64, ID of OSM Node
	// 		order_pos - int, Position of vertex in hierarchies (evaluted by library)
	// 		importance - int, Importance of vertex in graph (evaluted by library)
	//      geom - geometry of vertex
	err = writerVertices.Write([]string{"vertex_id", "order_pos", "importance", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write vertices header")
	}
	for i := range graph.Vertices {
		label := graph.Vertices[i].Label
		err = writerVertices.Write([]string{
			fmt.Sprintf("%d", label),
			fmt.Sprintf("%d", graph.Vertices[i].OrderPos()),
			fmt.Sprintf("%d", graph.Vertices[i].Importance()),
			formatter.Point(verticesGeoms[label]),
		})
		if err != nil {
			return errors.Wrapf(err, "Can't write vertex '%d'", label)
		}
	}
	writerVertices.Flush()
	if err = writerVertices.Error(); err != nil {
		return errors.Wrap(err, "Can't flush vertices")
	}

	// 	from_vertex_id - int64, ID of source vertex
	// 	to_vertex_id - int64, ID of target vertex
	// 	weight - float64, Weight of an edge (meters)
	// 	via_vertex_id - int64, ID of vertex through which the shortcut exists
	err = graph.ExportShortcutsToFile(basename + "_shortcuts.csv")
	if err != nil {
		return errors.Wrap(err, "Can't export shortcuts")
	}
	return nil
}
