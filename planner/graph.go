package planner

import (
	"github.com/LSUDOKO/GlobalRoute-Navigator/models"
)

// Node represents a location in the transport network.
type Node struct {
	ID        string
	Country   string
	Latitude  float64
	Longitude float64
}

// Edge is a directed transport leg. Index identifies the edge within its
// graph; two legs between the same pair of nodes (e.g. a sea lane and an air
// corridor) are distinct edges.
type Edge struct {
	Index    int
	From     string
	To       string
	Mode     models.Mode
	Time     float64 // hours
	Price    float64 // currency units
	Distance float64 // km
}

// Graph is the immutable transport graph. It is built once by the loader and
// shared across concurrent searches without locking.
type Graph struct {
	nodes     map[string]Node
	adjacency map[string][]Edge
	countries map[string]bool
	edgeCount int

	// Dataset-wide maxima, used to bring time and price onto a common
	// 0..100 scale during search.
	maxTime  float64
	maxPrice float64
}

func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) NodeCount() int { return len(g.nodes) }
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, &models.UnknownNodeError{Node: id}
	}
	return n, nil
}

// Country returns the country code of the given node.
func (g *Graph) Country(id string) (string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return "", &models.UnknownNodeError{Node: id}
	}
	return n.Country, nil
}

// Neighbors returns the outgoing edges of a node. A node with no outgoing
// edges yields an empty slice; existence should be checked with HasNode.
func (g *Graph) Neighbors(id string) []Edge {
	return g.adjacency[id]
}

// HasCountry reports whether any node in the dataset belongs to the country.
func (g *Graph) HasCountry(code string) bool {
	return g.countries[code]
}

// EdgeCO2 derives the emission of a leg from its distance and mode.
func (g *Graph) EdgeCO2(e Edge) float64 {
	return e.Distance * models.EmissionFactor[e.Mode]
}

// normTime and normPrice scale raw attributes onto 0..100 against the
// dataset maximum. Pure scaling keeps a path's normalized cost equal to the
// normalization of its summed cost, so ranking is never inverted.
func (g *Graph) normTime(t float64) float64 {
	if g.maxTime <= 0 {
		return 0
	}
	return t / g.maxTime * normScale
}

func (g *Graph) normPrice(p float64) float64 {
	if g.maxPrice <= 0 {
		return 0
	}
	return p / g.maxPrice * normScale
}
