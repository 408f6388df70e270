package planner

import (
	"github.com/LSUDOKO/GlobalRoute-Navigator/models"
)

// BuildResponse converts search candidates into the public response shape.
// The per-path sums are the physical totals of the traversed edges; search
// penalties never appear in them.
func BuildResponse(g *Graph, f *Filter, candidates []*Candidate) models.RouteResponse {
	paths := make([]models.RoutePath, 0, len(candidates))
	for _, c := range candidates {
		paths = append(paths, buildPath(g, c))
	}
	return models.RouteResponse{
		AvoidedCountries: f.StrictCountries(),
		PenaltyCountries: f.PenalizedCountries(),
		Paths:            paths,
	}
}

// BuildNoRouteResponse carries the soft no-route outcome with the resolved
// country lists intact.
func BuildNoRouteResponse(f *Filter, reason string) models.RouteResponse {
	return models.RouteResponse{
		AvoidedCountries: f.StrictCountries(),
		PenaltyCountries: f.PenalizedCountries(),
		Paths:            models.PathsError{Error: reason},
	}
}

func buildPath(g *Graph, c *Candidate) models.RoutePath {
	p := models.RoutePath{
		Path:        append([]string(nil), c.nodes...),
		Coordinates: make([]models.Coordinate, 0, len(c.nodes)),
		Edges:       make([]models.PathEdge, 0, len(c.edges)),
	}
	for _, id := range c.nodes {
		if n, ok := g.nodes[id]; ok {
			p.Coordinates = append(p.Coordinates, models.Coordinate{
				Node:      id,
				Latitude:  n.Latitude,
				Longitude: n.Longitude,
			})
		}
	}
	for _, e := range c.edges {
		p.Edges = append(p.Edges, models.PathEdge{
			From:     e.From,
			To:       e.To,
			Mode:     e.Mode,
			Time:     e.Time,
			Price:    e.Price,
			Distance: e.Distance,
		})
		p.TimeSum += e.Time
		p.PriceSum += e.Price
		p.DistanceSum += e.Distance
		p.CO2Sum += g.EdgeCO2(e)
	}
	return p
}
