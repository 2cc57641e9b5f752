package osm2lanes

import (
	"github.com/paulmach/osm"
)

// Network resolves node coordinates and tells how many ways share a node
type Network interface {
	// Coordinate returns point of the node and false if there is no such node
	Coordinate(nodeID osm.NodeID) (GeoPoint, bool)
	// IntersectionDegree returns number of distinct ways referencing the node
	IntersectionDegree(nodeID osm.NodeID) int
}

// Graph is an in-memory way/node road network.
//
// Graph is populated once (by Parser or by hand) and is read-only afterwards.
type Graph struct {
	ways   []*Way
	wayIdx map[osm.WayID]int
	nodes  map[osm.NodeID]GeoPoint
	degree map[osm.NodeID]int
}

// NewGraph returns empty graph
func NewGraph() *Graph {
	return &Graph{
		ways:   []*Way{},
		wayIdx: make(map[osm.WayID]int),
		nodes:  make(map[osm.NodeID]GeoPoint),
		degree: make(map[osm.NodeID]int),
	}
}

// AddNode registers node coordinates. Adding the same ID again overrides its point
func (graph *Graph) AddNode(node Node) {
	graph.nodes[node.ID] = node.Point
}

// AddWay appends way to the graph and updates intersection degrees of its nodes.
// Ways keep insertion order, adding way with existing ID replaces it in place.
func (graph *Graph) AddWay(way *Way) {
	if idx, ok := graph.wayIdx[way.ID]; ok {
		graph.unreference(graph.ways[idx])
		graph.ways[idx] = way
	} else {
		graph.wayIdx[way.ID] = len(graph.ways)
		graph.ways = append(graph.ways, way)
	}
	for nodeID := range distinctNodes(way) {
		graph.degree[nodeID]++
	}
}

func (graph *Graph) unreference(way *Way) {
	for nodeID := range distinctNodes(way) {
		graph.degree[nodeID]--
		if graph.degree[nodeID] <= 0 {
			delete(graph.degree, nodeID)
		}
	}
}

func distinctNodes(way *Way) map[osm.NodeID]struct{} {
	seen := make(map[osm.NodeID]struct{}, len(way.Nodes))
	for _, nodeID := range way.Nodes {
		seen[nodeID] = struct{}{}
	}
	return seen
}

// Coordinate implements Network
func (graph *Graph) Coordinate(nodeID osm.NodeID) (GeoPoint, bool) {
	pt, ok := graph.nodes[nodeID]
	return pt, ok
}

// IntersectionDegree implements Network
func (graph *Graph) IntersectionDegree(nodeID osm.NodeID) int {
	return graph.degree[nodeID]
}

// Ways returns ways in insertion order
func (graph *Graph) Ways() []*Way {
	ways := make([]*Way, len(graph.ways))
	copy(ways, graph.ways)
	return ways
}

// Way returns way by its ID
func (graph *Graph) Way(wayID osm.WayID) (*Way, bool) {
	idx, ok := graph.wayIdx[wayID]
	if !ok {
		return nil, false
	}
	return graph.ways[idx], true
}

// WaysNum returns number of ways
func (graph *Graph) WaysNum() int {
	return len(graph.ways)
}

// NodesNum returns number of nodes
func (graph *Graph) NodesNum() int {
	return len(graph.nodes)
}
