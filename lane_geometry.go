package osm2lanes

import (
	"math"
)

const (
	// Lateral distance between section axis and lane center line (meters)
	laneCenterOffset = 1.5
	// Offset points closer than this (meters) are not mitered
	miterThreshold = 0.5
	// Boundary half-widths (meters)
	onewayBoundaryWidth        = 2.0
	bidirectionalBoundaryWidth = 4.0
	// Upper limit of end-cap pull-in for tapered boundaries (meters)
	maxTaper = 4.0

	// Bearing shifts of the sides relative to travel direction
	leftSide  = 270.0
	rightSide = 90.0
)

// LaneCenterLines returns center lines of the section lanes.
//
// One-way section has a single lane which is the section itself.
// Otherwise two lanes are returned: left one first, then right one. Left and right
// refer to direction of the section given by order of its points.
func (section *WaySection) LaneCenterLines() [][]GeoPoint {
	if section.oneway {
		return [][]GeoPoint{copyLine(section.points)}
	}
	return [][]GeoPoint{
		offsetSide(section.points, leftSide, laneCenterOffset, false),
		offsetSide(section.points, rightSide, laneCenterOffset, false),
	}
}

// LaneBoundaryPolygons returns closed rings of lane boundaries: one ring for one-way section, otherwise two
// rings (left side, then right side).
//
// If taper is true boundaries are narrowed and get pointed end-caps.
func (section *WaySection) LaneBoundaryPolygons(taper bool) [][]GeoPoint {
	width := bidirectionalBoundaryWidth
	if section.oneway {
		width = onewayBoundaryWidth
	}
	if taper {
		width /= 2
	}

	leftPoints := offsetSide(section.points, leftSide, width, taper)
	rightPoints := offsetSide(section.points, rightSide, width, taper)

	if section.oneway {
		polygon := make([]GeoPoint, 0, len(leftPoints)+len(rightPoints)+3)
		if taper {
			polygon = append(polygon, section.Begin())
		}
		polygon = append(polygon, rightPoints...)
		if taper {
			polygon = append(polygon, section.End())
		}
		polygon = append(polygon, reverseLine(leftPoints)...)
		return [][]GeoPoint{closeRing(polygon)}
	}

	leftPolygon := append(copyLine(section.points), reverseLine(leftPoints)...)
	rightPolygon := append(copyLine(section.points), reverseLine(rightPoints)...)
	return [][]GeoPoint{closeRing(leftPolygon), closeRing(rightPolygon)}
}

// offsetSide shifts every segment of the line perpendicular to its bearing by width (meters) and joins
// consecutive shifted segments by miter joints.
// side is added to segment bearing: 90 for the right side, 270 for the left one.
func offsetSide(line []GeoPoint, side, width float64, taper bool) []GeoPoint {
	result := make([]GeoPoint, 0, len(line))
	lastSegment := len(line) - 2
	for i := 0; i <= lastSegment; i++ {
		segmentStart := line[i]
		segmentEnd := line[i+1]
		segmentBearing := Bearing(segmentStart, segmentEnd)

		if taper && (i == 0 || i == lastSegment) {
			tapering := math.Min(GreatCircleDistance(segmentStart, segmentEnd)/2, maxTaper)
			if i == 0 {
				segmentStart = RadialPoint(segmentStart, segmentBearing, tapering)
			}
			if i == lastSegment {
				segmentEnd = RadialPoint(segmentEnd, segmentBearing, -tapering)
			}
		}

		direction := math.Mod(segmentBearing+side, 360)
		offsetStart := RadialPoint(segmentStart, direction, width)
		offsetEnd := RadialPoint(segmentEnd, direction, width)

		if i == 0 {
			result = append(result, offsetStart, offsetEnd)
			continue
		}
		prevStart := result[len(result)-2]
		prevEnd := result[len(result)-1]
		result[len(result)-1] = miterJoint(prevStart, prevEnd, offsetStart, offsetEnd, line[i])
		result = append(result, offsetEnd)
	}
	return result
}

// miterJoint collapses end of the first offset segment (p1, p2) and start of the second one (p3, p4) into a
// single point. vertex is the original point both offsets were built from.
//
// Points closer than miterThreshold are kept as is (p2). If offset lines are parallel the candidate closer to
// the vertex is used.
func miterJoint(p1, p2, p3, p4, vertex GeoPoint) GeoPoint {
	if GreatCircleDistance(p2, p3) < miterThreshold {
		return p2
	}
	intersection, err := LineIntersection(p1, p2, p3, p4)
	if err != nil {
		if GreatCircleDistance(vertex, p3) < GreatCircleDistance(vertex, p2) {
			return p3
		}
		return p2
	}
	return intersection
}
