package planner

import (
	"context"
	"fmt"

	"github.com/LSUDOKO/GlobalRoute-Navigator/models"
)

// TopPaths finds up to topN distinct paths from start to goal, ranked by
// non-decreasing score, using Yen's algorithm: the best path comes from a
// plain Dijkstra run, and each further path is the cheapest deviation from
// an already-accepted path. For every spur node on the previous path, the
// deviating edge of each accepted path sharing the same root prefix is
// banned and the root's interior nodes are blocked, guaranteeing the spur
// produces a new simple path. Candidates are deduplicated by edge sequence.
//
// Returns NoRouteError when the constraints eliminate every path; fewer
// than topN results is not an error.
func TopPaths(ctx context.Context, g *Graph, f *Filter, req *models.PathRequest, start, goal string) ([]*Candidate, error) {
	w := weights{time: *req.TimeWeight, price: *req.PriceWeight}

	if start == goal {
		return []*Candidate{trivialPath(start)}, nil
	}

	startCountry, err := g.Country(start)
	if err != nil {
		return nil, err
	}
	goalCountry, err := g.Country(goal)
	if err != nil {
		return nil, err
	}
	if f.NodeHardExcluded(startCountry) || f.NodeHardExcluded(goalCountry) {
		return nil, &models.NoRouteError{
			Reason: fmt.Sprintf("no valid route: start (%s) or goal (%s) is in an excluded country", start, goal),
		}
	}

	best, err := shortestPath(ctx, g, f, w, start, goal, nil, nil)
	if err != nil {
		return nil, err
	}
	if best == nil {
		return nil, &models.NoRouteError{
			Reason: fmt.Sprintf("no paths found between %s and %s with selected parameters", start, goal),
		}
	}

	accepted := []*Candidate{best}
	seen := map[string]bool{best.key(): true}
	var pool []*Candidate

	for len(accepted) < req.TopN {
		prev := accepted[len(accepted)-1]

		for i := 0; i < len(prev.edges); i++ {
			spurNode := prev.nodes[i]
			rootEdges := prev.edges[:i]

			banned := make(map[int]bool)
			for _, p := range accepted {
				if sharesRoot(p, rootEdges) && len(p.edges) > i {
					banned[p.edges[i].Index] = true
				}
			}

			blocked := make(map[string]bool, i)
			for _, n := range prev.nodes[:i] {
				blocked[n] = true
			}

			spur, err := shortestPath(ctx, g, f, w, spurNode, goal, banned, blocked)
			if err != nil {
				return nil, err
			}
			if spur == nil {
				continue
			}

			total := joinPaths(g, f, w, rootEdges, spur)
			if !seen[total.key()] {
				seen[total.key()] = true
				pool = append(pool, total)
			}
		}

		next := popBest(&pool)
		if next == nil {
			break
		}
		accepted = append(accepted, next)
	}

	return accepted, nil
}

// sharesRoot reports whether p's first len(root) edges equal root.
func sharesRoot(p *Candidate, root []Edge) bool {
	if len(p.edges) < len(root) {
		return false
	}
	for i := range root {
		if p.edges[i].Index != root[i].Index {
			return false
		}
	}
	return true
}

// joinPaths concatenates a root edge prefix with a spur path, recomputing
// the total scalar cost from scratch.
func joinPaths(g *Graph, f *Filter, w weights, root []Edge, spur *Candidate) *Candidate {
	edges := make([]Edge, 0, len(root)+len(spur.edges))
	edges = append(edges, root...)
	edges = append(edges, spur.edges...)

	var start string
	if len(root) > 0 {
		start = root[0].From
	} else {
		start = spur.nodes[0]
	}
	nodes := make([]string, 0, len(edges)+1)
	nodes = append(nodes, start)
	cost := 0.0
	for _, e := range edges {
		nodes = append(nodes, e.To)
		cost += edgeWeight(g, f, w, e)
	}
	return &Candidate{nodes: nodes, edges: edges, cost: cost}
}

// popBest removes and returns the best Candidate from the pool, or nil when
// the pool is empty.
func popBest(pool *[]*Candidate) *Candidate {
	if len(*pool) == 0 {
		return nil
	}
	bestIdx := 0
	for i := 1; i < len(*pool); i++ {
		if (*pool)[i].better((*pool)[bestIdx]) {
			bestIdx = i
		}
	}
	best := (*pool)[bestIdx]
	*pool = append((*pool)[:bestIdx], (*pool)[bestIdx+1:]...)
	return best
}
