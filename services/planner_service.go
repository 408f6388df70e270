package services

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/LSUDOKO/GlobalRoute-Navigator/metrics"
	"github.com/LSUDOKO/GlobalRoute-Navigator/models"
	"github.com/LSUDOKO/GlobalRoute-Navigator/planner"
)

// PlannerService owns the active transport graph and runs bounded-time
// searches against it. The graph is held behind an atomic pointer: a reload
// builds a complete new snapshot and swaps it in, so concurrent requests
// always see either the old graph or the new one, never a partial state.
type PlannerService struct {
	graph         atomic.Pointer[planner.Graph]
	searchTimeout time.Duration
}

func NewPlannerService(g *planner.Graph, searchTimeout time.Duration) *PlannerService {
	s := &PlannerService{searchTimeout: searchTimeout}
	s.install(g)
	return s
}

func (s *PlannerService) install(g *planner.Graph) {
	s.graph.Store(g)
	metrics.GraphNodes.Set(float64(g.NodeCount()))
	metrics.GraphEdges.Set(float64(g.EdgeCount()))
}

// Graph returns the currently served snapshot.
func (s *PlannerService) Graph() *planner.Graph {
	return s.graph.Load()
}

// Reload loads a dataset from disk and swaps it in atomically. On a
// LoadError the current graph keeps serving.
func (s *PlannerService) Reload(path string) error {
	g, err := planner.LoadFromFile(path)
	if err != nil {
		return err
	}
	s.install(g)
	return nil
}

// FindPaths validates the request, runs the top-N search under the
// configured time budget, and assembles the response. The no-route outcome
// is returned as a well-formed response, not an error.
func (s *PlannerService) FindPaths(ctx context.Context, req *models.PathRequest) (models.RouteResponse, error) {
	if err := req.Validate(); err != nil {
		metrics.RequestsTotal.WithLabelValues("invalid").Inc()
		return models.RouteResponse{}, err
	}

	g := s.graph.Load()
	if !g.HasNode(req.Start) {
		metrics.RequestsTotal.WithLabelValues("unknown_node").Inc()
		return models.RouteResponse{}, &models.UnknownNodeError{Node: req.Start}
	}
	if !g.HasNode(req.Goal) {
		metrics.RequestsTotal.WithLabelValues("unknown_node").Inc()
		return models.RouteResponse{}, &models.UnknownNodeError{Node: req.Goal}
	}

	filter, err := planner.BuildFilter(g, req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues("invalid").Inc()
		return models.RouteResponse{}, err
	}

	searchCtx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()

	started := time.Now()
	candidates, err := planner.TopPaths(searchCtx, g, filter, req, req.Start, req.Goal)
	metrics.SearchDuration.Observe(time.Since(started).Seconds())

	if err != nil {
		var noRoute *models.NoRouteError
		if errors.As(err, &noRoute) {
			metrics.RequestsTotal.WithLabelValues("no_route").Inc()
			return planner.BuildNoRouteResponse(filter, noRoute.Reason), nil
		}
		if errors.Is(err, context.DeadlineExceeded) {
			metrics.RequestsTotal.WithLabelValues("timeout").Inc()
			return models.RouteResponse{}, &models.SearchTimeoutError{Budget: s.searchTimeout.String()}
		}
		return models.RouteResponse{}, err
	}

	metrics.RequestsTotal.WithLabelValues("ok").Inc()
	return planner.BuildResponse(g, filter, candidates), nil
}
