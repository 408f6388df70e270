package planner

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/LSUDOKO/GlobalRoute-Navigator/models"
)

type datasetNode struct {
	ID        string  `json:"id"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type datasetEdge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Mode     string  `json:"mode"`
	Time     float64 `json:"time"`
	Price    float64 `json:"price"`
	Distance float64 `json:"distance"`
}

type dataset struct {
	Nodes []datasetNode `json:"nodes"`
	Edges []datasetEdge `json:"edges"`
}

// LoadFromFile reads and validates a graph dataset from disk.
func LoadFromFile(path string) (*Graph, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.LoadError{Reason: fmt.Sprintf("could not read %s: %v", path, err)}
	}
	return LoadFromJSON(bytes)
}

// LoadFromJSON parses a dataset and builds an immutable graph. Any dangling
// edge reference, negative attribute, or unrecognized mode is a LoadError.
func LoadFromJSON(data []byte) (*Graph, error) {
	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, &models.LoadError{Reason: fmt.Sprintf("could not parse dataset JSON: %v", err)}
	}
	if len(ds.Nodes) == 0 {
		return nil, &models.LoadError{Reason: "dataset contains no nodes"}
	}

	g := &Graph{
		nodes:     make(map[string]Node, len(ds.Nodes)),
		adjacency: make(map[string][]Edge),
		countries: make(map[string]bool),
	}

	for _, n := range ds.Nodes {
		if n.ID == "" {
			return nil, &models.LoadError{Reason: "node with empty id"}
		}
		if n.Country == "" {
			return nil, &models.LoadError{Reason: fmt.Sprintf("node %q has no country", n.ID)}
		}
		if _, exists := g.nodes[n.ID]; exists {
			return nil, &models.LoadError{Reason: fmt.Sprintf("duplicate node id %q", n.ID)}
		}
		country := strings.ToUpper(n.Country)
		g.nodes[n.ID] = Node{
			ID:        n.ID,
			Country:   country,
			Latitude:  n.Latitude,
			Longitude: n.Longitude,
		}
		g.countries[country] = true
	}

	for i, e := range ds.Edges {
		if _, ok := g.nodes[e.From]; !ok {
			return nil, &models.LoadError{Reason: fmt.Sprintf("edge %d references unknown node %q", i, e.From)}
		}
		if _, ok := g.nodes[e.To]; !ok {
			return nil, &models.LoadError{Reason: fmt.Sprintf("edge %d references unknown node %q", i, e.To)}
		}
		mode, ok := models.ParseMode(e.Mode)
		if !ok {
			return nil, &models.LoadError{Reason: fmt.Sprintf("edge %d has unrecognized mode %q", i, e.Mode)}
		}
		if e.Time < 0 || e.Price < 0 || e.Distance < 0 {
			return nil, &models.LoadError{Reason: fmt.Sprintf("edge %d has a negative attribute", i)}
		}
		edge := Edge{
			Index:    i,
			From:     e.From,
			To:       e.To,
			Mode:     mode,
			Time:     e.Time,
			Price:    e.Price,
			Distance: e.Distance,
		}
		g.adjacency[e.From] = append(g.adjacency[e.From], edge)
		g.edgeCount++
		if e.Time > g.maxTime {
			g.maxTime = e.Time
		}
		if e.Price > g.maxPrice {
			g.maxPrice = e.Price
		}
	}

	return g, nil
}
