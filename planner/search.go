package planner

import (
	"container/heap"
	"context"
)

// weights carries the normalized time/price weighting of one request.
type weights struct {
	time  float64
	price float64
}

// edgeWeight is the scalar cost of traversing an edge: the weighted sum of
// the normalized time and price, a border-crossing penalty when the edge
// changes country, and the filter's avoid penalty. All terms are
// nonnegative, which keeps Dijkstra valid.
func edgeWeight(g *Graph, f *Filter, w weights, e Edge) float64 {
	cost := w.time*g.normTime(e.Time) + w.price*g.normPrice(e.Price)
	from, okFrom := g.nodes[e.From]
	to, okTo := g.nodes[e.To]
	if okFrom && okTo && from.Country != to.Country {
		cost += borderPenalty
	}
	return cost + f.PenaltyFor(e)
}

// Candidate is one complete path found by the search, with its scalar score.
type Candidate struct {
	nodes []string
	edges []Edge
	cost  float64
}

// key identifies a Candidate by its edge sequence for distinctness checks.
func (c *Candidate) key() string {
	buf := make([]byte, 0, len(c.edges)*4)
	for _, e := range c.edges {
		buf = append(buf, byte(e.Index), byte(e.Index>>8), byte(e.Index>>16), byte(e.Index>>24))
	}
	return string(buf)
}

// better orders candidates by (score, segment count, lexicographic node
// sequence) so equal-score results are deterministic.
func (c *Candidate) better(other *Candidate) bool {
	if c.cost != other.cost {
		return c.cost < other.cost
	}
	if len(c.edges) != len(other.edges) {
		return len(c.edges) < len(other.edges)
	}
	for i := range c.nodes {
		if i >= len(other.nodes) {
			return false
		}
		if c.nodes[i] != other.nodes[i] {
			return c.nodes[i] < other.nodes[i]
		}
	}
	return len(c.nodes) < len(other.nodes)
}

type pqItem struct {
	node     string
	priority float64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

// shortestPath runs Dijkstra from start to goal over the filtered graph,
// skipping bannedEdges (by edge index) and blockedNodes entirely. It returns
// nil when the goal is unreachable. The context is checked between queue
// pops so a disconnected caller stops consuming search work promptly.
func shortestPath(ctx context.Context, g *Graph, f *Filter, w weights, start, goal string, bannedEdges map[int]bool, blockedNodes map[string]bool) (*Candidate, error) {
	dist := map[string]float64{start: 0}
	prevEdge := make(map[string]Edge)
	hasPrev := make(map[string]bool)
	closed := make(map[string]bool)

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{node: start, priority: 0})

	for pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		item := heap.Pop(pq).(*pqItem)
		current := item.node
		if closed[current] {
			continue
		}
		closed[current] = true

		if current == goal {
			return reconstruct(start, goal, dist[goal], prevEdge, hasPrev), nil
		}

		for _, e := range g.Neighbors(current) {
			if bannedEdges[e.Index] || blockedNodes[e.To] || closed[e.To] {
				continue
			}
			if f.EdgeHardExcluded(e) {
				continue
			}
			tentative := dist[current] + edgeWeight(g, f, w, e)
			if old, seen := dist[e.To]; !seen || tentative < old {
				dist[e.To] = tentative
				prevEdge[e.To] = e
				hasPrev[e.To] = true
				heap.Push(pq, &pqItem{node: e.To, priority: tentative})
			}
		}
	}

	return nil, nil
}

func reconstruct(start, goal string, cost float64, prevEdge map[string]Edge, hasPrev map[string]bool) *Candidate {
	var edges []Edge
	current := goal
	for current != start {
		if !hasPrev[current] {
			return nil
		}
		e := prevEdge[current]
		edges = append([]Edge{e}, edges...)
		current = e.From
	}
	nodes := make([]string, 0, len(edges)+1)
	nodes = append(nodes, start)
	for _, e := range edges {
		nodes = append(nodes, e.To)
	}
	return &Candidate{nodes: nodes, edges: edges, cost: cost}
}

// trivialPath is the start == goal result: one node, no edges, zero cost.
func trivialPath(start string) *Candidate {
	return &Candidate{nodes: []string{start}, edges: []Edge{}, cost: 0}
}
